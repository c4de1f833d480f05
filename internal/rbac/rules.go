package rbac

// Default role policy for the conduct-score service. Sheet-level rules
// (which tier a role may see or edit at which status) live in the sheet
// package; these permissions gate the HTTP surface.
var RolePermissions = map[string][]string{
	"student": {
		"sheet:view-own",
		"sheet:save",
		"sheet:submit",
		"sheet:unsubmit",
		"proof:upload",
		"proof:delete",
		"period:list",
	},
	"monitor": {
		"sheet:view-class",
		"sheet:list",
		"sheet:save",
		"sheet:submit",
		"period:list",
		"report:export",
	},
	"bch": {
		"sheet:view-class",
		"sheet:list",
		"sheet:save",
		"sheet:submit",
		"period:list",
		"report:export",
	},
	"doankhoa": {
		"sheet:view-all",
		"sheet:list",
		"sheet:save",
		"sheet:submit",
		"period:list",
		"report:export",
	},
	"admin": {
		"*", // everything
	},
}
