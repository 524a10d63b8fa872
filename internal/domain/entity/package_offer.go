package entity

import "github.com/shopspring/decimal"

// PackageOffer paquete de bahan ajar que puede enviarse en un DO (dato de referencia).
type PackageOffer struct {
	Code     string
	Name     string
	Price    decimal.Decimal
	Contents []string // códigos de StockItem incluidos en el paquete
}

// Label texto que se guarda en el DO: "<kode> - <nama>".
func (p PackageOffer) Label() string {
	return p.Code + " - " + p.Name
}
