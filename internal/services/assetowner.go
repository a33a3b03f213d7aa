package services

import (
	"context"
	"fmt"
	"log"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"billiton/gen/assetowner"
	"billiton/internal/domain"
	"billiton/internal/metrics"
	apperrors "billiton/pkg/errors"
)

// AssetOwnerService implements the assetowner service
type AssetOwnerService struct {
	db       *gorm.DB
	mailer   Mailer
	notifyTo string
}

// NewAssetOwnerService creates a new asset owner service
func NewAssetOwnerService(db *gorm.DB, mailer Mailer, notifyTo string) *AssetOwnerService {
	return &AssetOwnerService{
		db:       db,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *AssetOwnerService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	user, err := authenticateStaff(s.db, token, schema)
	if err != nil {
		return nil, AssetOwnerUnauthorized(err.Error())
	}
	return context.WithValue(ctx, "user", user), nil
}

// Submit implements the submit asset assessment request method
func (s *AssetOwnerService) Submit(ctx context.Context, p *assetowner.SubmitPayload) (*assetowner.Assetownersubmitresult, error) {
	log.Printf("[ASSET] Submit request: name=%s, email=%s", p.Name, p.Email)

	inquiry := &domain.AssetOwnerInquiry{
		Name:           p.Name,
		Organisation:   p.Organisation,
		Role:           p.Role,
		Email:          p.Email,
		InventoryValue: p.InventoryValue,
		Description:    p.Description,
		EmailSent:      false,
	}

	if err := s.db.Create(inquiry).Error; err != nil {
		log.Printf("[ASSET] Submit failed: database error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save inquiry", err)
	}

	log.Printf("[ASSET] Inquiry saved: id=%s", inquiry.ID)
	metrics.RecordInquiry("asset_owner")

	subject := fmt.Sprintf("New Asset Assessment Request from %s", p.Name)
	htmlBody := fmt.Sprintf(`<h1>New Asset Assessment Request</h1>
<p><strong>Name:</strong> %s</p>
<p><strong>Organisation:</strong> %s</p>
<p><strong>Role:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Approximate Inventory Value:</strong> %s</p>
<p><strong>Holdings Description:</strong></p>
<p>%s</p>`, p.Name, p.Organisation, p.Role, p.Email, orNotSpecified(p.InventoryValue), orNotProvided(p.Description))
	textBody := fmt.Sprintf(`New Asset Assessment Request

Name: %s
Organisation: %s
Role: %s
Email: %s
Approximate Inventory Value: %s

Holdings Description:
%s`, p.Name, p.Organisation, p.Role, p.Email, orNotSpecified(p.InventoryValue), orNotProvided(p.Description))

	emailSent := notifyAndMark(s.db, s.mailer, "[ASSET]", &domain.AssetOwnerInquiry{}, inquiry.ID, s.notifyTo, subject, htmlBody, textBody)

	return &assetowner.Assetownersubmitresult{
		Success:   true,
		ID:        inquiry.ID,
		EmailSent: emailSent,
	}, nil
}

// List returns all asset owner inquiries (Staff/Admin only)
func (s *AssetOwnerService) List(ctx context.Context, p *assetowner.ListPayload) ([]*assetowner.Assetownerinquiryresult, error) {
	log.Printf("[ASSET] List request: skip=%d, limit=%d", p.Skip, p.Limit)

	var inquiries []domain.AssetOwnerInquiry
	if err := s.db.Order("created_at DESC").Offset(p.Skip).Limit(p.Limit).Find(&inquiries).Error; err != nil {
		log.Printf("[ASSET] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch asset owner inquiries: %w", err)
	}

	results := make([]*assetowner.Assetownerinquiryresult, len(inquiries))
	for i, inq := range inquiries {
		results[i] = &assetowner.Assetownerinquiryresult{
			ID:             inq.ID,
			Name:           inq.Name,
			Organisation:   inq.Organisation,
			Role:           inq.Role,
			Email:          inq.Email,
			InventoryValue: inq.InventoryValue,
			Description:    inq.Description,
			EmailSent:      inq.EmailSent,
			CreatedAt:      inq.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	log.Printf("[ASSET] List successful: returned %d inquiries", len(results))
	return results, nil
}
