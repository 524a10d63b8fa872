package auth

import "github.com/jhoicas/sitta-api/internal/domain/entity"

// Session proveedor de sesión que consultan las páginas protegidas.
type Session interface {
	IsLoggedIn() bool
	CurrentUser() *entity.SessionUser
}

// Anonymous sesión sin usuario.
type Anonymous struct{}

func (Anonymous) IsLoggedIn() bool                 { return false }
func (Anonymous) CurrentUser() *entity.SessionUser { return nil }

// UserSession sesión resuelta a partir de un token válido.
type UserSession struct {
	User entity.SessionUser
}

func (s UserSession) IsLoggedIn() bool { return true }

func (s UserSession) CurrentUser() *entity.SessionUser {
	u := s.User
	return &u
}
