package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores con scoping por empresa activa.
type SupplierUseCase struct {
	resolver *tenant.Resolver
	repo     repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(resolver *tenant.Resolver, repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{resolver: resolver, repo: repo}
}

// Create crea un proveedor en la empresa activa. NIT único por empresa.
func (uc *SupplierUseCase) Create(ctx context.Context, userID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	if in.NIT == "" {
		return nil, &domain.FieldError{Field: "nit", Msg: "requerido"}
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, supplier); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCompanyAndNIT(supplier.CompanyID, in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor de la empresa activa.
func (uc *SupplierUseCase) GetByID(ctx context.Context, userID, supplierID string) (*dto.SupplierResponse, error) {
	supplier, err := uc.owned(ctx, userID, supplierID)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update modifica un proveedor de la empresa activa.
func (uc *SupplierUseCase) Update(ctx context.Context, userID, supplierID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.owned(ctx, userID, supplierID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	supplier.Name = in.Name
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	supplier.City = in.City
	supplier.State = in.State
	supplier.ZipCode = in.ZipCode
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores de la empresa activa; sin empresa -> vacío.
func (uc *SupplierUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]dto.SupplierResponse, error) {
		list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.SupplierResponse, 0, len(list))
		for _, s := range list {
			out = append(out, *toSupplierResponse(s))
		}
		return out, nil
	})
}

// Delete desactiva un proveedor de la empresa activa (borrado lógico).
func (uc *SupplierUseCase) Delete(ctx context.Context, userID, supplierID string) error {
	supplier, err := uc.owned(ctx, userID, supplierID)
	if err != nil {
		return err
	}
	supplier.Active = false
	supplier.UpdatedAt = time.Now()
	return uc.repo.Update(supplier)
}

func (uc *SupplierUseCase) owned(ctx context.Context, userID, supplierID string) (*entity.Supplier, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		NIT:       s.NIT,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		ZipCode:   s.ZipCode,
		Active:    s.Active,
	}
}
