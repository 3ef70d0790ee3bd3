package sales

import (
	"context"
	"time"

	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del flujo de ventas atados a esa tx. Cabezal, líneas y
// salidas del libro se comprometen juntos o se revierten todos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// LedgerAppender es el contrato mínimo que ventas necesita del motor de
// inventario para descontar stock dentro de su propia transacción.
// Lo implementa *stock.LedgerUseCase.
type LedgerAppender interface {
	AppendInTx(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		mov *entity.StockMovement,
		now time.Time,
	) error
}
