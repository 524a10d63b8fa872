package entity

import "github.com/shopspring/decimal"

// StockItem representa un bahan ajar en stock (una fila de la tabla de stok).
// Code es la identidad: único en toda la colección.
type StockItem struct {
	Code            string // formato LLLLNNNN, ej. EKMA4116
	Title           string
	Category        string
	Region          string // UPBJJ
	ShelfLocation   string // kode lokasi de rak
	Price           decimal.Decimal
	Quantity        int
	SafetyThreshold int    // safety stock: por debajo se marca como stok rendah
	NoteHTML        string // catatan en HTML, la capa de presentación decide cómo mostrarlo
}
