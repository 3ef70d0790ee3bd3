package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/domain/entity"
)

// IsOutbound indica si el tipo de movimiento es de salida (resta stock).
func IsOutbound(movementType string) bool {
	switch movementType {
	case entity.MovementTypeOUT, entity.MovementTypeAdjOut, entity.MovementTypeRetOut:
		return true
	}
	return false
}

// ValidType indica si el tipo pertenece al enum cerrado de movimientos.
func ValidType(movementType string) bool {
	switch movementType {
	case entity.MovementTypeIN, entity.MovementTypeOUT,
		entity.MovementTypeAdjIn, entity.MovementTypeAdjOut,
		entity.MovementTypeRetIn, entity.MovementTypeRetOut:
		return true
	}
	return false
}

// NormalizeQuantity normaliza el signo de la cantidad según el tipo:
// salidas se guardan negativas, entradas positivas. La cantidad solicitada
// se recibe siempre en valor absoluto positivo; esta función aplica el signo.
func NormalizeQuantity(movementType string, quantity decimal.Decimal) decimal.Decimal {
	abs := quantity.Abs()
	if IsOutbound(movementType) {
		return abs.Neg()
	}
	return abs
}
