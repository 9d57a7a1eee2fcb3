package entity

import "time"

// Roles disponibles (deben coincidir con el CHECK de la tabla users).
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema. PasswordHash es bcrypt; el esquema
// HMAC del sistema original usaba la contraseña en claro como clave y no se
// reproduce.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
