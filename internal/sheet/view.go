package sheet

import (
	"context"

	"github.com/campus-conduct/drl-server/internal/criteria"
)

// TierView is one tier of the composed form view: the values the actor
// may see (zeroed when invisible), raw group totals for display and the
// clamped grand total.
type TierView struct {
	Access
	Values      criteria.ScoreMap `json:"values"`
	GroupTotals map[string]int    `json:"groupTotals"`
	Total       int               `json:"total"`
}

// Actions lists what the actor may do with the sheet right now.
type Actions struct {
	Save     bool `json:"save"`
	Submit   bool `json:"submit"`
	Unsubmit bool `json:"unsubmit"`
}

// View is everything the form needs to render a sheet for one actor.
type View struct {
	StudentID  string            `json:"studentId"`
	PeriodID   string            `json:"periodId"`
	Status     Status            `json:"status"`
	Tiers      map[Tier]TierView `json:"tiers"`
	Proofs     map[string]string `json:"proofs"`
	FinalScore int               `json:"finalScore"`
	Lock       LockState         `json:"lock"`
	Actions    Actions           `json:"actions"`
}

// View composes the role- and status-gated rendering of a sheet.
func (s *Service) View(ctx context.Context, actor Actor, studentID, periodID string) (View, error) {
	if err := s.authorize(actor, studentID); err != nil {
		return View{}, err
	}
	sh, cur, err := s.load(ctx, studentID, periodID)
	if err != nil {
		return View{}, err
	}
	lock, err := s.lockFor(ctx, actor, periodID)
	if err != nil {
		return View{}, err
	}

	v := View{
		StudentID: studentID,
		PeriodID:  periodID,
		Status:    sh.Status,
		Tiers:     make(map[Tier]TierView, len(Tiers)),
		Proofs:    sh.Details.Proofs,
		Lock:      lock,
	}
	for _, tier := range Tiers {
		acc := TierAccess(tier, actor.Role, cur)
		if lock.Locked {
			acc.Editable = false
		}
		tv := TierView{Access: acc, Values: criteria.ScoreMap{}, GroupTotals: map[string]int{}}
		if acc.Visible {
			m := sh.TierMap(tier)
			tv.Values = m
			for _, g := range s.catalog.Groups() {
				tv.GroupTotals[g.ID] = s.catalog.GroupTotal(m, g.ID)
			}
			tv.Total = s.catalog.GrandTotal(m)
		} else {
			for _, g := range s.catalog.Groups() {
				tv.GroupTotals[g.ID] = 0
			}
		}
		v.Tiers[tier] = tv
	}

	// Final score follows total visibility: viewers without access to the
	// deciding tier still get the derived number, which is the point of it.
	v.FinalScore = sh.FinalScore

	if !lock.Locked {
		for _, tier := range Tiers {
			if v.Tiers[tier].Editable {
				v.Actions.Save = true
				break
			}
		}
		if _, err := SubmitTarget(actor.Role, cur); err == nil {
			v.Actions.Submit = true
		}
		v.Actions.Unsubmit = CanUnsubmit(actor.Role, cur)
	}
	return v, nil
}
