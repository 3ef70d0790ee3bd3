package purchasing

import (
	"context"
	"time"

	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del flujo de compras atados a esa tx. Cabezal, líneas,
// cuotas y movimientos del libro se comprometen juntos o se revierten
// todos.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		payableRepo repository.PayableAccountRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// LedgerAppender es el contrato mínimo que compras necesita del motor de
// inventario para alimentar el libro dentro de su propia transacción.
// Lo implementa *stock.LedgerUseCase.
type LedgerAppender interface {
	AppendInTx(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		mov *entity.StockMovement,
		now time.Time,
	) error
}
