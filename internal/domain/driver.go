package domain

// Driver водитель автопарка.
// Флаг Available носит справочный характер: он используется при выборе
// водителя в диспетчерской, но не участвует в проверке пересечения смен.
type Driver struct {
	ID            int64
	Name          string
	LicenseNumber string
	Available     bool
}
