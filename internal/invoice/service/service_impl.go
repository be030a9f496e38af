package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smartbizsa/backend/internal/invoice/domain"
	"github.com/smartbizsa/backend/internal/invoice/format"
	"github.com/smartbizsa/backend/internal/invoice/render"
	"github.com/smartbizsa/backend/internal/invoice/vat"
	tenantdomain "github.com/smartbizsa/backend/internal/tenant/domain"
	"github.com/smartbizsa/backend/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	Tenants  tenantdomain.Service
	Renderer render.Renderer
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	tenants  tenantdomain.Service
	renderer render.Renderer
	now      func() time.Time
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		repo:     p.Repo,
		tenants:  p.Tenants,
		renderer: p.Renderer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (domain.View, error) {
	if req.ClientName == "" || len(req.Items) == 0 {
		return domain.View{}, domain.ErrInvalidRequest
	}

	var totalExcl float64
	for _, item := range req.Items {
		totalExcl += float64(item.Quantity) * item.UnitPrice
	}
	breakdown := vat.Calculate(totalExcl)

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return domain.View{}, fmt.Errorf("encode items: %w", err)
	}

	var invoice *domain.Invoice
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.tenants.EnsureDefaultTenant(ctx, tx, req.BusinessID); err != nil {
			return err
		}

		now := s.now()
		invoice = &domain.Invoice{
			ID:            uuid.NewString(),
			BusinessID:    req.BusinessID,
			InvoiceNumber: format.InvoiceNumber(now),
			ClientName:    req.ClientName,
			ClientVAT:     req.ClientVAT,
			TotalExclVAT:  totalExcl,
			VATAmount:     breakdown.VATAmount,
			TotalInclVAT:  breakdown.TotalInclVAT,
			IssuedDate:    now,
			DueDate:       req.DueDate,
			Items:         itemsJSON,
			CreatedAt:     now,
		}

		// Savepoint keeps the provisioning work alive if the insert has to
		// be retried after a duplicate-number failure.
		if err := tx.SavePoint("invoice_insert").Error; err != nil {
			return err
		}
		insertErr := s.repo.Insert(ctx, tx, invoice)
		if db.IsDuplicateKeyErr(insertErr) {
			// Millisecond numbers can collide under concurrent generation.
			// Retry once with a fresh number; a second collision surfaces
			// a distinct error instead of guessing further.
			if err := tx.RollbackTo("invoice_insert").Error; err != nil {
				return err
			}
			invoice.InvoiceNumber = format.InvoiceNumber(s.now().Add(time.Millisecond))
			insertErr = s.repo.Insert(ctx, tx, invoice)
			if db.IsDuplicateKeyErr(insertErr) {
				return domain.ErrNumberCollision
			}
		}
		return insertErr
	})
	if err != nil {
		return domain.View{}, err
	}

	s.log.Info("invoice generated",
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("business_id", invoice.BusinessID),
	)

	return invoice.ToView()
}

func (s *Service) List(ctx context.Context, businessID string) ([]domain.View, error) {
	invoices, err := s.repo.ListByBusiness(ctx, s.db, businessID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.View, 0, len(invoices))
	for _, invoice := range invoices {
		view, err := invoice.ToView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetByID(ctx context.Context, invoiceID string) (domain.View, error) {
	invoice, err := s.find(ctx, invoiceID)
	if err != nil {
		return domain.View{}, err
	}
	return invoice.ToView()
}

func (s *Service) MarkPaid(ctx context.Context, invoiceID string) (domain.View, error) {
	invoice, err := s.find(ctx, invoiceID)
	if err != nil {
		return domain.View{}, err
	}

	if !invoice.IsPaid {
		now := s.now()
		invoice.IsPaid = true
		invoice.PaidDate = &now
		if err := s.repo.Update(ctx, s.db, invoice); err != nil {
			return domain.View{}, err
		}
	}

	return invoice.ToView()
}

func (s *Service) RenderPDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := s.find(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}

	business, err := s.tenants.GetBusiness(ctx, invoice.BusinessID)
	if err != nil && !errors.Is(err, tenantdomain.ErrNotFound) {
		return nil, "", err
	}

	items, err := invoice.LineItems()
	if err != nil {
		return nil, "", err
	}

	input := render.Input{
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     invoice.IssuedDate.Format("2006-01-02"),
		ClientName:    invoice.ClientName,
		ClientVAT:     deref(invoice.ClientVAT),
		TotalExclVAT:  invoice.TotalExclVAT,
		VATAmount:     invoice.VATAmount,
		TotalInclVAT:  invoice.TotalInclVAT,
	}
	if invoice.DueDate != nil {
		input.DueDate = invoice.DueDate.Format("2006-01-02")
	}
	if business != nil {
		input.BusinessName = business.Name
		input.BusinessVAT = deref(business.VATNumber)
	}
	for _, item := range items {
		input.Items = append(input.Items, render.Item{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	doc, err := s.renderer.Render(input)
	if err != nil {
		return nil, "", err
	}
	return doc, invoice.InvoiceNumber + ".pdf", nil
}

func (s *Service) find(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
