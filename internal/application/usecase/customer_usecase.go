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

// CustomerUseCase CRUD de clientes con scoping por empresa activa.
// El documento exigido depende del tipo: NIT para persona jurídica,
// cédula (CC) para persona natural.
type CustomerUseCase struct {
	resolver *tenant.Resolver
	repo     repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(resolver *tenant.Resolver, repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{resolver: resolver, repo: repo}
}

// Create crea un cliente en la empresa activa tras validar tipo y documento.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		NIT:           in.NIT,
		CC:            in.CC,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tenant.Assign(ctx, uc.resolver, userID, customer); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update modifica un cliente de la empresa activa.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, customerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.owned(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	customer.Type = in.Type
	customer.Name = in.Name
	customer.ContactPerson = in.ContactPerson
	customer.NIT = in.NIT
	customer.CC = in.CC
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.City = in.City
	customer.State = in.State
	customer.ZipCode = in.ZipCode
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente de la empresa activa.
func (uc *CustomerUseCase) GetByID(ctx context.Context, userID, customerID string) (*dto.CustomerResponse, error) {
	customer, err := uc.owned(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes de la empresa activa; sin empresa -> vacío.
func (uc *CustomerUseCase) List(ctx context.Context, userID string, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	return tenant.List(ctx, uc.resolver, userID, func(companyID string) ([]dto.CustomerResponse, error) {
		list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CustomerResponse, 0, len(list))
		for _, c := range list {
			out = append(out, *toCustomerResponse(c))
		}
		return out, nil
	})
}

// Delete desactiva un cliente de la empresa activa (borrado lógico).
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, customerID string) error {
	customer, err := uc.owned(ctx, userID, customerID)
	if err != nil {
		return err
	}
	customer.Active = false
	customer.UpdatedAt = time.Now()
	return uc.repo.Update(customer)
}

// validateCustomer aplica la regla documento-según-tipo.
func validateCustomer(in dto.CreateCustomerRequest) error {
	if in.Name == "" {
		return &domain.FieldError{Field: "name", Msg: "requerido"}
	}
	switch in.Type {
	case entity.CustomerTypeJuridica:
		if in.NIT == "" {
			return &domain.FieldError{Field: "nit", Msg: "requerido para persona jurídica"}
		}
	case entity.CustomerTypeNatural:
		if in.CC == "" {
			return &domain.FieldError{Field: "cc", Msg: "requerida para persona natural"}
		}
	default:
		return &domain.FieldError{Field: "type", Msg: "debe ser juridica o natural"}
	}
	return nil
}

func (uc *CustomerUseCase) owned(ctx context.Context, userID, customerID string) (*entity.Customer, error) {
	companyID, err := uc.resolver.ActiveCompanyID(ctx, userID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Type:          c.Type,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		NIT:           c.NIT,
		CC:            c.CC,
		Email:         c.Email,
		Phone:         c.Phone,
		Active:        c.Active,
	}
}
