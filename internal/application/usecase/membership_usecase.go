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

// MembershipTxRunner ejecuta operaciones de membresías dentro de una
// transacción de BD. Activar una membresía toca varias filas (apagar las
// demás + encender la elegida) y debe ser atómico.
type MembershipTxRunner interface {
	RunMembership(ctx context.Context, fn func(linkRepo repository.CompanyUserRepository) error) error
}

// MembershipUseCase administra las membresías usuario-empresa y sostiene
// el invariante "a lo sumo una membresía activa por usuario": no se confía
// en first-match, se desactiva explícitamente al activar.
type MembershipUseCase struct {
	txRunner    MembershipTxRunner
	linkRepo    repository.CompanyUserRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewMembershipUseCase construye el caso de uso.
func NewMembershipUseCase(
	txRunner MembershipTxRunner,
	linkRepo repository.CompanyUserRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
) *MembershipUseCase {
	return &MembershipUseCase{txRunner: txRunner, linkRepo: linkRepo, userRepo: userRepo, companyRepo: companyRepo}
}

// Add crea una membresía inactiva para el par (usuario, empresa).
// El par es único: repetirlo devuelve ErrDuplicate. actorCompanyID es la
// empresa activa de quien invita: solo se admiten altas en ESA empresa —
// un admin jamás puede sembrarse membresías en otro tenant.
func (uc *MembershipUseCase) Add(ctx context.Context, actorCompanyID string, in dto.AddMembershipRequest) (*dto.MembershipResponse, error) {
	if in.UserID == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CompanyID != actorCompanyID {
		return nil, domain.ErrForbidden
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMember
	}
	if role != entity.RoleAdmin && role != entity.RoleMember {
		return nil, domain.ErrInvalidInput
	}
	user, _ := uc.userRepo.GetByID(in.UserID)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, _ := uc.companyRepo.GetByID(in.CompanyID)
	if company == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.linkRepo.GetByUserAndCompany(in.UserID, in.CompanyID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	link := &entity.CompanyUser{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		CompanyID: in.CompanyID,
		Role:      role,
		Active:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.linkRepo.Create(link); err != nil {
		return nil, err
	}
	resp := toMembershipResponse(link)
	return &resp, nil
}

// Activate convierte la membresía del usuario en la empresa dada en su
// membresía activa. Dentro de una transacción desactiva cualquier otra
// membresía activa del usuario y enciende la elegida.
func (uc *MembershipUseCase) Activate(ctx context.Context, userID, companyID string) (*dto.MembershipResponse, error) {
	link, err := uc.linkRepo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	err = uc.txRunner.RunMembership(ctx, func(linkRepo repository.CompanyUserRepository) error {
		if err := linkRepo.DeactivateAllByUser(userID); err != nil {
			return err
		}
		link.Active = true
		link.UpdatedAt = time.Now()
		return linkRepo.Update(link)
	})
	if err != nil {
		return nil, err
	}
	resp := toMembershipResponse(link)
	return &resp, nil
}

// Deactivate apaga la membresía del usuario en la empresa dada (revocación
// de acceso: la fila se conserva).
func (uc *MembershipUseCase) Deactivate(ctx context.Context, userID, companyID string) error {
	link, err := uc.linkRepo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	if !link.Active {
		return nil
	}
	link.Active = false
	link.UpdatedAt = time.Now()
	return uc.linkRepo.Update(link)
}

// ListForUser lista las membresías del usuario.
func (uc *MembershipUseCase) ListForUser(ctx context.Context, userID string) ([]dto.MembershipResponse, error) {
	list, err := uc.linkRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MembershipResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toMembershipResponse(l))
	}
	return out, nil
}

func toMembershipResponse(l *entity.CompanyUser) dto.MembershipResponse {
	return dto.MembershipResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		CompanyID: l.CompanyID,
		Role:      l.Role,
		Active:    l.Active,
	}
}
