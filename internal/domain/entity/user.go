package entity

import "time"

// Roles de usuario de la API.
const (
	RoleAdmin  = "admin"
	RoleGestor = "gestor"
)

// User usuario de la API (autenticación).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
