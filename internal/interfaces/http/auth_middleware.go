package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sitta-api/internal/application/auth"
	"github.com/jhoicas/sitta-api/internal/application/dto"
)

// LocalSession key de la sesión en c.Locals.
const LocalSession = "session"

// LoginPage página a la que debe volver el cliente sin sesión.
const LoginPage = "/index.html"

// sessionResolver lo implementa *auth.AuthUseCase.
type sessionResolver interface {
	Resolve(token string) auth.Session
}

// SessionMiddleware resuelve el Bearer Token (si lo hay) y guarda la sesión en c.Locals.
// Nunca rechaza: una cabecera ausente o mal formada produce una sesión anónima.
func SessionMiddleware(r sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalSession, r.Resolve(bearerToken(c.Get("Authorization"))))
		return c.Next()
	}
}

// RequireLogin responde 401 con la página de login cuando la sesión no está iniciada.
// Debe usarse DESPUÉS de SessionMiddleware.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).IsLoggedIn() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.UnauthorizedResponse{
				Code:     "UNAUTHORIZED",
				Message:  "sesión requerida",
				Redirect: LoginPage,
			})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto; sin SessionMiddleware, una anónima.
func GetSession(c *fiber.Ctx) auth.Session {
	if s, ok := c.Locals(LocalSession).(auth.Session); ok && s != nil {
		return s
	}
	return auth.Anonymous{}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
