package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleFuncionario = "funcionario"
)

// User funcionario con acceso a la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, funcionario
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
