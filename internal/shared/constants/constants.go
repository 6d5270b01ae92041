package constants

// Database table names
const (
	TableAdmins = "admins"
)

// Gin context keys set by the auth middleware
const (
	ContextKeyAdmin   = "current_admin"
	ContextKeyAdminID = "admin_id"
)

// Short ID prefixes for externally visible identifiers
const (
	AdminSIDPrefix = "adm_"
)
