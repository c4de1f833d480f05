package sheet

import (
	"fmt"
	"time"

	"github.com/campus-conduct/drl-server/internal/period"
)

// LockState is the grading-period window decision for an actor, with a
// human-readable reason when editing is refused.
type LockState struct {
	Locked bool   `json:"locked"`
	Reason string `json:"reason,omitempty"`
}

// CheckLock applies the period window to the acting role at the given
// time. Only the student/self tier is subject to the window; reviewer
// tiers may grade after the nominal close. End dates are treated as
// end-of-day. Read access is never locked.
func CheckLock(role string, p period.Period, now time.Time) LockState {
	if role != RoleStudent {
		return LockState{}
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return LockState{
			Locked: true,
			Reason: fmt.Sprintf("period not yet open; opens %s", p.StartDate.Format("02/01/2006")),
		}
	}
	if p.EndDate != nil && now.After(endOfDay(*p.EndDate)) {
		return LockState{
			Locked: true,
			Reason: fmt.Sprintf("period closed; ended %s", p.EndDate.Format("02/01/2006")),
		}
	}
	return LockState{}
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
