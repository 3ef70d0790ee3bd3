package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es el cabezal de una venta. A diferencia de las notas de compra no
// tiene borrador: registrar la venta descuenta el stock en el acto, con
// una salida OUT del libro por cada línea en la misma transacción.
// TotalAmount se recalcula siempre como la suma de los totales de línea.
type Sale struct {
	ID          string
	CompanyID   string
	CustomerID  *string // opcional: venta de mostrador sin cliente
	UserID      *string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleItem es una línea de producto dentro de una venta.
// TotalPrice = Quantity * UnitPrice, calculado al guardar.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
