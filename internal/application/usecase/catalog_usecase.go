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

// BrandUseCase CRUD de marcas con scoping por empresa activa.
type BrandUseCase struct {
	resolver *tenant.Resolver
	repo     repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(resolver *tenant.Resolver, repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{resolver: resolver, repo: repo}
}

// Create crea una marca en la empresa activa del principal.
// Nombre único por empresa -> ErrDuplicate.
func (uc *BrandUseCase) Create(ctx context.Context, userID string, in dto.CreateNamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, brand); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCompanyAndName(brand.CompanyID, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: brand.ID, CompanyID: brand.CompanyID, Name: brand.Name}, nil
}

// List lista las marcas de la empresa activa; sin empresa activa -> vacío.
func (uc *BrandUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.NamedResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]dto.NamedResponse, error) {
		list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.NamedResponse, 0, len(list))
		for _, b := range list {
			out = append(out, dto.NamedResponse{ID: b.ID, CompanyID: b.CompanyID, Name: b.Name})
		}
		return out, nil
	})
}

// Delete borra una marca de la empresa activa. Los productos que la
// referencian quedan con brand_id NULL (regla SET NULL de la FK).
func (uc *BrandUseCase) Delete(ctx context.Context, userID, brandID string) error {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return err
	}
	brand, err := uc.repo.GetByID(brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	if brand.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(brandID)
}

// CategoryUseCase CRUD de categorías con scoping por empresa activa.
type CategoryUseCase struct {
	resolver *tenant.Resolver
	repo     repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(resolver *tenant.Resolver, repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{resolver: resolver, repo: repo}
}

// Create crea una categoría en la empresa activa del principal.
func (uc *CategoryUseCase) Create(ctx context.Context, userID string, in dto.CreateNamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, category); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCompanyAndName(category.CompanyID, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: category.ID, CompanyID: category.CompanyID, Name: category.Name}, nil
}

// List lista las categorías de la empresa activa; sin empresa activa -> vacío.
func (uc *CategoryUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.NamedResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]dto.NamedResponse, error) {
		list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.NamedResponse, 0, len(list))
		for _, c := range list {
			out = append(out, dto.NamedResponse{ID: c.ID, CompanyID: c.CompanyID, Name: c.Name})
		}
		return out, nil
	})
}

// Delete borra una categoría de la empresa activa (SET NULL en productos).
func (uc *CategoryUseCase) Delete(ctx context.Context, userID, categoryID string) error {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return err
	}
	category, err := uc.repo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(categoryID)
}
