package repository

import "github.com/jhoicas/sitta-api/internal/domain/entity"

// UserRepository define el puerto de lectura de usuarios sembrados.
type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
}
