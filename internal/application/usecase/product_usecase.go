package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos con scoping por empresa activa.
// El costo no se edita por acá: lo mantiene el motor del libro.
type ProductUseCase struct {
	resolver     *tenant.Resolver
	repo         repository.ProductRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	resolver *tenant.Resolver,
	repo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{resolver: resolver, repo: repo, brandRepo: brandRepo, categoryRepo: categoryRepo}
}

// Create crea un producto en la empresa activa. SKU único por empresa.
// Marca y categoría, si vienen, deben pertenecer a la misma empresa.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" {
		return nil, &domain.FieldError{Field: "sku", Msg: "requerido"}
	}
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, &domain.FieldError{Field: "price", Msg: "no puede ser negativo"}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		BrandID:     in.BrandID,
		CategoryID:  in.CategoryID,
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, product); err != nil {
		return nil, err
	}
	if err := uc.checkRefs(product.CompanyID, in.BrandID, in.CategoryID); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCompanyAndSKU(product.CompanyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la empresa activa.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update modifica un producto de la empresa activa. SKU y costo no se tocan.
func (uc *ProductUseCase) Update(ctx context.Context, userID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, &domain.FieldError{Field: "price", Msg: "no puede ser negativo"}
	}
	if err := uc.checkRefs(product.CompanyID, in.BrandID, in.CategoryID); err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Barcode = in.Barcode
	product.BrandID = in.BrandID
	product.CategoryID = in.CategoryID
	product.Price = in.Price
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos de la empresa activa; sin empresa activa -> vacío.
func (uc *ProductUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]dto.ProductResponse, error) {
		list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ProductResponse, 0, len(list))
		for _, p := range list {
			out = append(out, *toProductResponse(p))
		}
		return out, nil
	})
}

// Delete borra un producto de la empresa activa.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, productID string) error {
	if _, err := uc.owned(ctx, userID, productID); err != nil {
		return err
	}
	return uc.repo.Delete(productID)
}

func (uc *ProductUseCase) owned(ctx context.Context, userID, productID string) (*entity.Product, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (uc *ProductUseCase) checkRefs(companyID string, brandID, categoryID *string) error {
	if brandID != nil && *brandID != "" {
		brand, _ := uc.brandRepo.GetByID(*brandID)
		if brand == nil || brand.CompanyID != companyID {
			return &domain.FieldError{Field: "brand_id", Msg: "marca inexistente en la empresa"}
		}
	}
	if categoryID != nil && *categoryID != "" {
		category, _ := uc.categoryRepo.GetByID(*categoryID)
		if category == nil || category.CompanyID != companyID {
			return &domain.FieldError{Field: "category_id", Msg: "categoría inexistente en la empresa"}
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		BrandID:     p.BrandID,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Cost:        p.Cost,
	}
}
