package period

import (
	"context"
	"errors"
	"time"
)

// Period is one administrator-defined grading window, e.g. HK1_2024.
// Nil dates leave that side of the window open.
type Period struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsDefault bool       `json:"isDefault,omitempty"`
}

var ErrNotFound = errors.New("period not found")

type Store interface {
	Get(ctx context.Context, id string) (Period, error)
	List(ctx context.Context) ([]Period, error)
	Put(ctx context.Context, p Period) error
	Delete(ctx context.Context, id string) error
}
