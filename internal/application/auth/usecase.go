package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de registro (usuario + empresa + membresía)
// dentro de una transacción de BD.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyRepository,
		linkRepo repository.CompanyUserRepository,
	) error) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TokenGenerator firma tokens; en producción es pkg/jwt.Generate.
type TokenGenerator func(secret, userID, issuer string, expMinutes int) (string, error)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	generate TokenGenerator
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner TxRunner, userRepo repository.UserRepository, jwtCfg JWTConfig, generate TokenGenerator) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, jwtCfg: jwtCfg, generate: generate}
}

// Register crea un usuario (bcrypt) y, si vienen CompanyName/CompanyNIT,
// también la empresa y una membresía admin activa — todo en una
// transacción. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyRepository,
		linkRepo repository.CompanyUserRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		if in.CompanyName == "" && in.CompanyNIT == "" {
			return nil
		}
		if in.CompanyName == "" || in.CompanyNIT == "" {
			return domain.ErrInvalidInput
		}
		company := &entity.Company{
			ID:        uuid.New().String(),
			Name:      in.CompanyName,
			NIT:       in.CompanyNIT,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		// El fundador queda como admin con la empresa activa
		link := &entity.CompanyUser{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			CompanyID: company.ID,
			Role:      entity.RoleAdmin,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return linkRepo.Create(link)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT (subject = userID) y retorna
// token + usuario. La empresa activa NO viaja en el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := uc.generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		IsActive: u.IsActive,
		IsStaff:  u.IsStaff,
	}
}
