package repository

import "github.com/jhoicas/compras-api/internal/domain/entity"

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	GetByCompanyAndName(companyID, name string) (*entity.Brand, error)
	Update(brand *entity.Brand) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Brand, error)
	Delete(id string) error
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByCompanyAndName(companyID, name string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
