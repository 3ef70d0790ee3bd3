package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeIN     = "IN"      // compra (entrada)
	MovementTypeOUT    = "OUT"     // venta (salida)
	MovementTypeAdjIn  = "ADJ_IN"  // ajuste entrada
	MovementTypeAdjOut = "ADJ_OUT" // ajuste salida
	MovementTypeRetIn  = "RET_IN"  // devolución entrada
	MovementTypeRetOut = "RET_OUT" // devolución salida
)

// StockMovement es una entrada inmutable del libro de inventario.
// La cantidad se guarda con signo: positiva en entradas, negativa en
// salidas. Las entradas nunca se actualizan ni se borran; el stock actual
// e histórico se deriva siempre de la suma del libro.
type StockMovement struct {
	ID         string
	CompanyID  string
	ProductID  string
	UserID     *string // quién registró; nil si el usuario fue eliminado
	Type       string
	Quantity   decimal.Decimal // con signo según el tipo
	UnitPrice  decimal.Decimal // precio/costo unitario al momento del movimiento
	SupplierID *string
	CustomerID *string
	Notes      string
	CreatedAt  time.Time // asignada por el servidor
}
