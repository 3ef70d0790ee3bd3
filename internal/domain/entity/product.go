package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Cost es el costo promedio ponderado, recalculado en cada entrada.
// El stock NO se guarda en una columna: es siempre la suma con signo del
// libro de movimientos (ver stock ledger). Marca y categoría son opcionales
// (SET NULL al borrar la referencia).
type Product struct {
	ID          string
	CompanyID   string
	BrandID     *string
	CategoryID  *string
	SKU         string // único por empresa
	Barcode     string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo promedio ponderado (inicia en 0)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
