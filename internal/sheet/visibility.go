package sheet

// Access is the outcome of the visibility policy for one tier: whether
// the viewer may see the tier's numbers at all, and whether they may
// change them. A tier that is not visible renders as zero to the viewer
// regardless of stored content.
type Access struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// TierAccess decides visibility and editability of a tier for a role at
// a workflow status. Lower tiers become publicly visible only once their
// review stage has actually been passed; reviewer roles see prior tiers
// unconditionally so they can calibrate their own score.
//
// Ownership (a student may only touch their own sheet) and the grading
// period lock are enforced by the service, not here.
func TierAccess(tier Tier, role string, status Status) Access {
	switch tier {
	case TierSelf:
		return Access{
			Visible: true,
			Editable: role == RoleAdmin ||
				(role == RoleStudent && (status == StatusNone || status == StatusDraft)),
		}
	case TierClass:
		return Access{
			Visible: roleIn(role, RoleAdmin, RoleMonitor, RoleBch, RoleDoanKhoa) ||
				statusIn(status, StatusClassApproved, StatusBchApproved, StatusFinalized),
			Editable: role == RoleAdmin ||
				(role == RoleMonitor && statusIn(status, StatusNone, StatusSubmitted, StatusClassApproved)),
		}
	case TierBch:
		return Access{
			Visible: roleIn(role, RoleAdmin, RoleBch, RoleDoanKhoa) ||
				statusIn(status, StatusBchApproved, StatusFinalized),
			Editable: role == RoleAdmin || role == RoleBch,
		}
	case TierFaculty:
		return Access{
			Visible:  roleIn(role, RoleAdmin, RoleDoanKhoa) || status == StatusFinalized,
			Editable: role == RoleAdmin || role == RoleDoanKhoa,
		}
	}
	return Access{}
}

func roleIn(role string, set ...string) bool {
	for _, r := range set {
		if role == r {
			return true
		}
	}
	return false
}

func statusIn(status Status, set ...Status) bool {
	for _, s := range set {
		if status == s {
			return true
		}
	}
	return false
}
