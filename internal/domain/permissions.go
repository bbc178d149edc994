package domain

// Permissions набор возможностей роли
type Permissions struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
	CanView   bool
}

// RolePermissions возвращает набор возможностей для роли.
// Неизвестная роль получает права только на просмотр.
func RolePermissions(role string) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			CanCreate: true,
			CanEdit:   true,
			CanDelete: true,
			CanView:   true,
		}
	case RoleDispatcher:
		// Диспетчер не может удалять водителей и автобусы
		return Permissions{
			CanCreate: true,
			CanEdit:   true,
			CanDelete: false,
			CanView:   true,
		}
	case RoleViewer:
		return Permissions{
			CanCreate: false,
			CanEdit:   false,
			CanDelete: false,
			CanView:   true,
		}
	default:
		return Permissions{
			CanCreate: false,
			CanEdit:   false,
			CanDelete: false,
			CanView:   true,
		}
	}
}
