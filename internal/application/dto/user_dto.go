package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario en sesión (sin hash).
type UserResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SessionResponse respuesta de GET /api/session (nombre del navbar).
type SessionResponse struct {
	LoggedIn bool          `json:"logged_in"`
	User     *UserResponse `json:"user,omitempty"`
}
