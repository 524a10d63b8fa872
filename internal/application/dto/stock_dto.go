package dto

import "github.com/shopspring/decimal"

// StockItemRequest entrada del formulario de alta/edición de stok.
type StockItemRequest struct {
	Code            string          `json:"code"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	Region          string          `json:"region"`
	ShelfLocation   string          `json:"shelf_location"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	SafetyThreshold int             `json:"safety_threshold"`
	NoteHTML        string          `json:"note_html"`
}

// StockCriteriaRequest filtros y orden de la tabla. Vacío = sin filtro.
type StockCriteriaRequest struct {
	Query    string `json:"q" query:"q"`
	Category string `json:"category" query:"category"`
	Region   string `json:"region" query:"region"`
	Sort     string `json:"sort" query:"sort"`
}

// StockRowResponse una fila de la proyección derivada, con su estado calculado.
type StockRowResponse struct {
	Code            string          `json:"code"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	Region          string          `json:"region"`
	ShelfLocation   string          `json:"shelf_location"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	SafetyThreshold int             `json:"safety_threshold"`
	NoteHTML        string          `json:"note_html"`
	Status          string          `json:"status"`
	StatusLabel     string          `json:"status_label"`
	StatusTone      string          `json:"status_tone"`
}

// StockViewResponse estado de la página de stok: criterios, filas derivadas y alertas visibles.
type StockViewResponse struct {
	Criteria StockCriteriaRequest   `json:"criteria"`
	Items    []StockRowResponse     `json:"items"`
	Count    int                    `json:"count"` // filas tras filtrar
	Total    int                    `json:"total"` // tamaño de la colección
	Alerts   []NotificationResponse `json:"alerts"`
}

// StockOptionsResponse valores para los selects de filtros y del formulario.
type StockOptionsResponse struct {
	Regions    []string `json:"regions"`
	Categories []string `json:"categories"`
	SortKeys   []string `json:"sort_keys"`
	Profile    string   `json:"status_profile"`
}

// StockSummaryResponse conteo de ítems por estado.
type StockSummaryResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
