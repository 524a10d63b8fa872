package entity

// Catalog es el contenido del proveedor de datos estático, leído una sola vez al arrancar.
type Catalog struct {
	Regions    []string
	Categories []string
	Stock      []StockItem
	Packages   []PackageOffer
	Tracking   map[string]TrackingRecord
	Users      []User
}
