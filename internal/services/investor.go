package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"billiton/gen/investor"
	"billiton/internal/domain"
	"billiton/internal/metrics"
	apperrors "billiton/pkg/errors"
)

// InvestorService implements the investor service
type InvestorService struct {
	db       *gorm.DB
	mailer   Mailer
	notifyTo string
}

// NewInvestorService creates a new investor service
func NewInvestorService(db *gorm.DB, mailer Mailer, notifyTo string) *InvestorService {
	return &InvestorService{
		db:       db,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *InvestorService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	user, err := authenticateStaff(s.db, token, schema)
	if err != nil {
		return nil, InvestorUnauthorized(err.Error())
	}
	return context.WithValue(ctx, "user", user), nil
}

// Submit implements the register investor interest method. An empty
// investorTypes list is accepted; the notification renders it as
// "Not specified".
func (s *InvestorService) Submit(ctx context.Context, p *investor.SubmitPayload) (*investor.Investorsubmitresult, error) {
	log.Printf("[INVESTOR] Submit request: email=%s", p.Email)

	types := strings.Join(p.InvestorTypes, ", ")

	inquiry := &domain.InvestorInquiry{
		Email:         p.Email,
		InvestorTypes: types,
		TicketSize:    p.TicketSize,
		EmailSent:     false,
	}

	if err := s.db.Create(inquiry).Error; err != nil {
		log.Printf("[INVESTOR] Submit failed: database error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save inquiry", err)
	}

	log.Printf("[INVESTOR] Inquiry saved: id=%s", inquiry.ID)
	metrics.RecordInquiry("investor")

	subject := "New Investor Interest Registration"
	htmlBody := fmt.Sprintf(`<h1>New Investor Interest Registration</h1>
<p><strong>Email:</strong> %s</p>
<p><strong>Investor Type(s):</strong> %s</p>
<p><strong>Expected Ticket Size:</strong> %s</p>`, p.Email, orNotSpecified(types), orNotSpecified(p.TicketSize))
	textBody := fmt.Sprintf(`New Investor Interest Registration

Email: %s
Investor Type(s): %s
Expected Ticket Size: %s`, p.Email, orNotSpecified(types), orNotSpecified(p.TicketSize))

	emailSent := notifyAndMark(s.db, s.mailer, "[INVESTOR]", &domain.InvestorInquiry{}, inquiry.ID, s.notifyTo, subject, htmlBody, textBody)

	return &investor.Investorsubmitresult{
		Success:   true,
		ID:        inquiry.ID,
		EmailSent: emailSent,
	}, nil
}

// List returns all investor inquiries (Staff/Admin only)
func (s *InvestorService) List(ctx context.Context, p *investor.ListPayload) ([]*investor.Investorinquiryresult, error) {
	log.Printf("[INVESTOR] List request: skip=%d, limit=%d", p.Skip, p.Limit)

	var inquiries []domain.InvestorInquiry
	if err := s.db.Order("created_at DESC").Offset(p.Skip).Limit(p.Limit).Find(&inquiries).Error; err != nil {
		log.Printf("[INVESTOR] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch investor inquiries: %w", err)
	}

	results := make([]*investor.Investorinquiryresult, len(inquiries))
	for i, inq := range inquiries {
		var types []string
		if inq.InvestorTypes != "" {
			types = strings.Split(inq.InvestorTypes, ", ")
		}
		results[i] = &investor.Investorinquiryresult{
			ID:            inq.ID,
			Email:         inq.Email,
			InvestorTypes: types,
			TicketSize:    inq.TicketSize,
			EmailSent:     inq.EmailSent,
			CreatedAt:     inq.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	log.Printf("[INVESTOR] List successful: returned %d inquiries", len(results))
	return results, nil
}
