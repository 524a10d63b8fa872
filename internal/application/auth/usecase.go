// Package auth resuelve el login de los usuarios sembrados y la sesión de cada request.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/repository"
	"github.com/jhoicas/sitta-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y resolución de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.Email, user.DisplayName, user.Role, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user.Email, user.DisplayName, user.Role),
	}, nil
}

// Resolve convierte un token en sesión. Token vacío, inválido o expirado → Anonymous.
func (uc *AuthUseCase) Resolve(token string) Session {
	if token == "" {
		return Anonymous{}
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return Anonymous{}
	}
	return UserSession{User: entity.SessionUser{
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Role:        claims.Role,
	}}
}

// Describe respuesta de GET /api/session.
func Describe(s Session) *dto.SessionResponse {
	if s == nil || !s.IsLoggedIn() {
		return &dto.SessionResponse{LoggedIn: false}
	}
	u := s.CurrentUser()
	r := toUserResponse(u.Email, u.DisplayName, u.Role)
	return &dto.SessionResponse{LoggedIn: true, User: &r}
}

func toUserResponse(email, name, role string) dto.UserResponse {
	return dto.UserResponse{Email: email, DisplayName: name, Role: role}
}
