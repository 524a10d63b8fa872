package repository

import "github.com/jhoicas/sitta-api/internal/domain/entity"

// TrackingRepository define el puerto para los Delivery Orders (append-only).
type TrackingRepository interface {
	All() (map[string]entity.TrackingRecord, error)
	OrderNumbers() ([]string, error)
	Get(orderNumber string) (*entity.TrackingRecord, error)
	// Create devuelve domain.ErrDuplicate si el nomor DO ya existe.
	Create(record *entity.TrackingRecord) error
}
