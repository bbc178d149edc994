package domain

// User учетная запись пользователя диспетчерской
type User struct {
	ID           int64
	Name         string
	Age          int
	Email        string
	PasswordHash string
	Role         string
}
