package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User cuenta sembrada desde el catálogo. Sólo se usa para emitir la sesión.
type User struct {
	Email        string
	DisplayName  string
	PasswordHash string // bcrypt, se calcula al cargar el seed
	Role         string
}

// SessionUser datos del usuario en sesión; DisplayName sólo se usa para el saludo.
type SessionUser struct {
	Email       string
	DisplayName string
	Role        string
}
