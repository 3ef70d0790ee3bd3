package dto

import "github.com/shopspring/decimal"

// CreateNamedRequest alta de marca o categoría (solo nombre).
type CreateNamedRequest struct {
	Name string `json:"name"`
}

// NamedResponse representación de marca o categoría.
type NamedResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BrandID     *string         `json:"brand_id"`
	CategoryID  *string         `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest modificación de producto. El costo no se edita a
// mano: lo recalculan las entradas del libro.
type UpdateProductRequest struct {
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BrandID     *string         `json:"brand_id"`
	CategoryID  *string         `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BrandID     *string         `json:"brand_id,omitempty"`
	CategoryID  *string         `json:"category_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
}

// StockResponse stock derivado del libro para un producto.
type StockResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	AsOf      string          `json:"as_of,omitempty"` // RFC3339 si es consulta histórica
}
