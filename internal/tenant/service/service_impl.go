package service

import (
	"context"
	"time"

	"github.com/smartbizsa/backend/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("tenant.service"),
		repo: p.Repo,
	}
}

// EnsureDefaultTenant provisions the demo user and a demo business under the
// given id when the business does not exist. This is a permissive demo-tenant
// policy, not a multi-tenant guarantee.
func (s *Service) EnsureDefaultTenant(ctx context.Context, tx *gorm.DB, businessID string) (*domain.Business, error) {
	business, err := s.repo.FindBusinessByID(ctx, tx, businessID)
	if err != nil {
		return nil, err
	}
	if business != nil {
		return business, nil
	}

	user, err := s.repo.FindUserByEmail(ctx, tx, domain.DemoUserEmail)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if user == nil {
		user = &domain.User{
			ID:        domain.DemoUserID,
			Email:     domain.DemoUserEmail,
			Name:      domain.DemoUserName,
			CreatedAt: now,
		}
		if err := s.repo.InsertUser(ctx, tx, user); err != nil {
			return nil, err
		}
		s.log.Info("provisioned demo user", zap.String("user_id", user.ID))
	}

	vat := domain.DemoBusinessVAT
	business = &domain.Business{
		ID:               businessID,
		UserID:           user.ID,
		Name:             domain.DemoBusinessName,
		VATNumber:        &vat,
		RegistrationDate: now,
		CreatedAt:        now,
	}
	if err := s.repo.InsertBusiness(ctx, tx, business); err != nil {
		return nil, err
	}
	s.log.Info("provisioned demo business", zap.String("business_id", businessID))

	return business, nil
}

func (s *Service) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.repo.FindBusinessByID(ctx, s.db, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return business, nil
}
