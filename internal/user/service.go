package user

import (
	"context"

	"mealmarket-be/internal/auth"
	"mealmarket-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for accounts.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*Account, string, error)
	Login(ctx context.Context, phone, password string) (*Account, string, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	ListCaterers(ctx context.Context) ([]*Account, error)
	GetCatererByID(ctx context.Context, id string) (*Account, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

// Register creates an account and returns it with a fresh bearer token.
func (s *service) Register(ctx context.Context, params RegisterParams) (*Account, string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("role", string(params.Role)),
	)

	if params.Username == "" || params.Phone == "" || params.Password == "" {
		return nil, "", ErrMissingFields
	}
	if !params.Role.Valid() {
		return nil, "", ErrInvalidRole
	}

	acct := &Account{
		ID:       uuid.NewString(),
		Username: params.Username,
		Phone:    params.Phone,
		Role:     params.Role,
	}

	// Seller fields exist only on the caterer variant.
	if params.Role == RoleCaterer {
		if params.BusinessName == "" || params.BusinessAddress == "" {
			return nil, "", ErrBusinessProfileRequired
		}
		acct.Caterer = &CatererProfile{
			BusinessName:    params.BusinessName,
			BusinessAddress: params.BusinessAddress,
		}
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, "", err
	}
	acct.PasswordHash = hash

	if err := s.repo.CreateAccount(ctx, acct); err != nil {
		log.Warn("registration failed", zap.Error(err))
		return nil, "", err
	}

	token, err := auth.GenerateJWT(s.jwtSecret, acct.ID, string(acct.Role))
	if err != nil {
		return nil, "", err
	}

	log.Info("account registered", zap.String("user_id", acct.ID))
	return acct, token, nil
}

func (s *service) Login(ctx context.Context, phone, password string) (*Account, string, error) {
	acct, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if acct == nil || !auth.CheckPasswordHash(password, acct.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(s.jwtSecret, acct.ID, string(acct.Role))
	if err != nil {
		return nil, "", err
	}

	return acct, token, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Account, error) {
	acct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrUserNotFound
	}
	return acct, nil
}

func (s *service) ListCaterers(ctx context.Context) ([]*Account, error) {
	return s.repo.ListCaterers(ctx)
}

func (s *service) GetCatererByID(ctx context.Context, id string) (*Account, error) {
	acct, err := s.repo.GetCatererByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrCatererNotFound
	}
	return acct, nil
}
