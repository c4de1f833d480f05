package sheet

import (
	"context"
	"fmt"

	"github.com/campus-conduct/drl-server/internal/criteria"
)

// Tier is one of the four independent scoring passes on a sheet.
type Tier string

const (
	TierSelf    Tier = "self"    // student self-assessment
	TierClass   Tier = "class"   // class monitor
	TierBch     Tier = "bch"     // class executive committee
	TierFaculty Tier = "faculty" // faculty union (đoàn khoa)
)

// Tiers lists the scoring passes in review order, lowest first.
var Tiers = []Tier{TierSelf, TierClass, TierBch, TierFaculty}

// Roles known to the scoring policies. They match the rbac tables and
// the JWT role claim.
const (
	RoleStudent  = "student"
	RoleMonitor  = "monitor"
	RoleBch      = "bch"
	RoleDoanKhoa = "doankhoa"
	RoleAdmin    = "admin"
)

// Actor identifies who is performing an operation. It is threaded
// explicitly through every call; the core never reads ambient session
// state.
type Actor struct {
	ID      string
	Role    string
	ClassID string
}

// Details is the nested per-criterion payload of a persisted sheet.
// Maps are sparse: key presence records that a tier actually scored a
// criterion, which the final-score rule depends on.
type Details struct {
	Self    criteria.ScoreMap `json:"self"`
	Class   criteria.ScoreMap `json:"class"`
	Bch     criteria.ScoreMap `json:"bch"`
	Faculty criteria.ScoreMap `json:"faculty"`
	Proofs  map[string]string `json:"proofs"`
}

// Sheet is one student's score record for one grading period.
type Sheet struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"studentId"`
	PeriodID     string  `json:"semester"`
	SelfScore    int     `json:"selfScore"`
	ClassScore   int     `json:"classScore"`
	BchScore     int     `json:"bchScore"`
	FacultyScore int     `json:"facultyScore"`
	FinalScore   int     `json:"finalScore"`
	Details      Details `json:"details"`
	Status       Status  `json:"status"`
	UpdatedAt    int64   `json:"updated_at,omitempty"`
}

// SheetID composes the record key for a student/period pair.
func SheetID(studentID, periodID string) string {
	return fmt.Sprintf("%s_%s", studentID, periodID)
}

// NewSheet returns the in-memory default used before the first save.
func NewSheet(studentID, periodID string) Sheet {
	return Sheet{
		ID:        SheetID(studentID, periodID),
		StudentID: studentID,
		PeriodID:  periodID,
		Status:    StatusDraft,
		Details: Details{
			Self:    criteria.ScoreMap{},
			Class:   criteria.ScoreMap{},
			Bch:     criteria.ScoreMap{},
			Faculty: criteria.ScoreMap{},
			Proofs:  map[string]string{},
		},
	}
}

// TierMap returns the value map of the given tier.
func (s *Sheet) TierMap(t Tier) criteria.ScoreMap {
	switch t {
	case TierSelf:
		return s.Details.Self
	case TierClass:
		return s.Details.Class
	case TierBch:
		return s.Details.Bch
	case TierFaculty:
		return s.Details.Faculty
	}
	return nil
}

func (s *Sheet) setTierMap(t Tier, m criteria.ScoreMap) {
	switch t {
	case TierSelf:
		s.Details.Self = m
	case TierClass:
		s.Details.Class = m
	case TierBch:
		s.Details.Bch = m
	case TierFaculty:
		s.Details.Faculty = m
	}
}

// ListOpts filters sheet listings.
type ListOpts struct {
	PeriodID  string
	StudentID string
	Status    Status
	Limit     int
	Offset    int
}

// Store is the persistence boundary for sheets. Get returns ErrNotFound
// when no record has been created yet.
type Store interface {
	Get(ctx context.Context, studentID, periodID string) (Sheet, error)
	Put(ctx context.Context, s Sheet) error
	List(ctx context.Context, opts ListOpts) ([]Sheet, error)
}
