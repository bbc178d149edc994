package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Роли пользователей
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleViewer     = "viewer"
)

// DefaultRole роль, назначаемая при регистрации
const DefaultRole = RoleViewer

// Roles список всех ролей (порядок используется при сидировании)
var Roles = []string{RoleAdmin, RoleDispatcher, RoleViewer}
