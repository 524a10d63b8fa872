package repository

import "github.com/jhoicas/sitta-api/internal/domain/entity"

// StockItemRepository define el puerto del almacén compartido para StockItem (DIP).
// List devuelve copias en orden de inserción.
type StockItemRepository interface {
	List() ([]entity.StockItem, error)
	GetByCode(code string) (*entity.StockItem, error)
	Create(item *entity.StockItem) error
	// Update reemplaza en su misma posición el ítem con originalCode (el código puede cambiar).
	Update(originalCode string, item *entity.StockItem) error
	Delete(code string) error
}
