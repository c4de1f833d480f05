package sheet

import "fmt"

// Status is the approval state of a sheet. States form a one-way
// ratchet with a single documented reversal (unsubmit).
type Status string

const (
	// StatusNone marks a sheet with no persisted record yet. It never
	// appears on a stored sheet; policies receive it when deciding
	// against an unsaved default.
	StatusNone Status = ""

	StatusDraft         Status = "draft"
	StatusSubmitted     Status = "submitted"
	StatusClassApproved Status = "class_approved"
	StatusBchApproved   Status = "bch_approved"
	StatusFinalized     Status = "finalized"
)

// Valid reports whether s is a storable status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusClassApproved, StatusBchApproved, StatusFinalized:
		return true
	}
	return false
}

// submitTarget maps a role to the status its submit action produces.
// Only the transition is role-specific; draft saves never change status.
var submitTarget = map[string]Status{
	RoleStudent:  StatusSubmitted,
	RoleMonitor:  StatusClassApproved,
	RoleBch:      StatusBchApproved,
	RoleDoanKhoa: StatusFinalized,
}

// submitFrom lists the statuses a role may submit from. Re-approving
// the same stage is a legal self-transition; skipping a stage is not,
// and nothing leaves finalized.
var submitFrom = map[string][]Status{
	RoleStudent:  {StatusNone, StatusDraft},
	RoleMonitor:  {StatusNone, StatusSubmitted, StatusClassApproved},
	RoleBch:      {StatusClassApproved, StatusBchApproved},
	RoleDoanKhoa: {StatusBchApproved},
}

// IllegalTransitionError rejects a submit/unsubmit from a status that
// does not permit it. The sheet is left unchanged.
type IllegalTransitionError struct {
	Role   string
	Action string
	From   Status
}

func (e *IllegalTransitionError) Error() string {
	from := string(e.From)
	if e.From == StatusNone {
		from = "none"
	}
	return fmt.Sprintf("workflow: role %s may not %s from status %q", e.Role, e.Action, from)
}

// SubmitTarget resolves a role's submit action against the current
// status, returning the status the sheet moves to.
func SubmitTarget(role string, from Status) (Status, error) {
	target, ok := submitTarget[role]
	if !ok {
		return StatusNone, &IllegalTransitionError{Role: role, Action: "submit", From: from}
	}
	for _, f := range submitFrom[role] {
		if f == from {
			return target, nil
		}
	}
	return StatusNone, &IllegalTransitionError{Role: role, Action: "submit", From: from}
}

// CanUnsubmit reports whether the role may pull a sheet back to draft.
// Only the student may, and only while the sheet sits at submitted; once
// a higher tier has approved, the ratchet holds.
func CanUnsubmit(role string, from Status) bool {
	return role == RoleStudent && from == StatusSubmitted
}
