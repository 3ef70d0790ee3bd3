package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/stock"
)

func TestValidType_EnumCerrado(t *testing.T) {
	for _, typ := range []string{
		entity.MovementTypeIN, entity.MovementTypeOUT,
		entity.MovementTypeAdjIn, entity.MovementTypeAdjOut,
		entity.MovementTypeRetIn, entity.MovementTypeRetOut,
	} {
		assert.True(t, stock.ValidType(typ), "tipo %s debe ser válido", typ)
	}
	assert.False(t, stock.ValidType("PURCHASE"), "tipo fuera del enum debe rechazarse")
	assert.False(t, stock.ValidType(""), "tipo vacío debe rechazarse")
	assert.False(t, stock.ValidType("in"), "el enum distingue mayúsculas")
}

func TestIsOutbound_SoloSalidas(t *testing.T) {
	assert.True(t, stock.IsOutbound(entity.MovementTypeOUT))
	assert.True(t, stock.IsOutbound(entity.MovementTypeAdjOut))
	assert.True(t, stock.IsOutbound(entity.MovementTypeRetOut))

	assert.False(t, stock.IsOutbound(entity.MovementTypeIN))
	assert.False(t, stock.IsOutbound(entity.MovementTypeAdjIn))
	assert.False(t, stock.IsOutbound(entity.MovementTypeRetIn))
}

// Las salidas se guardan negativas y las entradas positivas,
// sin importar el signo con el que llegue la cantidad.
func TestNormalizeQuantity_AplicaSigno(t *testing.T) {
	diez := decimal.NewFromInt(10)

	assert.True(t, stock.NormalizeQuantity(entity.MovementTypeIN, diez).Equal(diez))
	assert.True(t, stock.NormalizeQuantity(entity.MovementTypeOUT, diez).Equal(diez.Neg()))
	assert.True(t, stock.NormalizeQuantity(entity.MovementTypeRetOut, diez).Equal(diez.Neg()))

	// Una cantidad que llegue negativa se normaliza igual por valor absoluto
	assert.True(t, stock.NormalizeQuantity(entity.MovementTypeIN, diez.Neg()).Equal(diez))
	assert.True(t, stock.NormalizeQuantity(entity.MovementTypeAdjOut, diez.Neg()).Equal(diez.Neg()))
}

func TestWeightedAverageCost_PromedioPonderado(t *testing.T) {
	// 10 unidades a $100 + entrada de 10 a $200 -> promedio $150
	got := stock.WeightedAverageCost(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(10), decimal.NewFromInt(200),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(150)), "esperado 150, got %s", got)
}

func TestWeightedAverageCost_SinStockPrevio(t *testing.T) {
	// Sin stock el costo pasa a ser el de la entrada
	got := stock.WeightedAverageCost(
		decimal.Zero, decimal.NewFromInt(80),
		decimal.NewFromInt(5), decimal.NewFromInt(120),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(120)))
}

func TestWeightedAverageCost_StockNegativoSeTrataComoCero(t *testing.T) {
	// El stock negativo no debe ponderar: se trata como cero
	got := stock.WeightedAverageCost(
		decimal.NewFromInt(-3), decimal.NewFromInt(100),
		decimal.NewFromInt(10), decimal.NewFromInt(50),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(50)))
}
