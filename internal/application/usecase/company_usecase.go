package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// CompanyTxRunner ejecuta el alta de empresa (empresa + membresía admin
// del fundador) dentro de una transacción de BD.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		linkRepo repository.CompanyUserRepository,
	) error) error
}

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	txRunner CompanyTxRunner
	repo     repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(txRunner CompanyTxRunner, repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{txRunner: txRunner, repo: repo}
}

// Create crea una nueva empresa y, en la misma transacción, una membresía
// admin activa para el fundador (apagando cualquier otra activa suya, como
// en el registro fundacional): una empresa jamás nace sin admin que pueda
// invitar miembros. Devuelve domain.ErrDuplicate si el NIT ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.NIT == "" {
		return nil, domain.ErrInvalidInput
	}
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	existing, _ := uc.repo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.RunCompany(ctx, func(
		companyRepo repository.CompanyRepository,
		linkRepo repository.CompanyUserRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		if err := linkRepo.DeactivateAllByUser(userID); err != nil {
			return err
		}
		return linkRepo.Create(&entity.CompanyUser{
			ID:        uuid.New().String(),
			UserID:    userID,
			CompanyID: company.ID,
			Role:      entity.RoleAdmin,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID (nil si no existe).
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		NIT:     c.NIT,
		Address: c.Address,
		City:    c.City,
		State:   c.State,
		ZipCode: c.ZipCode,
	}
}
