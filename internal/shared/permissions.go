package shared

// Capability tags stored in roles.permissions.
const (
	PermAll             = "all"
	PermCreateProtocol  = "create_protocol"
	PermViewProtocol    = "view_protocol"
	PermManageUsers     = "manage_users"
	PermManageTemplates = "manage_templates"
)
