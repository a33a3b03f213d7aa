package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"billiton/gen/consultation"
	"billiton/internal/domain"
	"billiton/internal/metrics"
	"billiton/internal/util"
	apperrors "billiton/pkg/errors"
)

// ConsultationService implements the consultation service
type ConsultationService struct {
	db       *gorm.DB
	mailer   Mailer
	notifyTo string
}

// NewConsultationService creates a new consultation service
func NewConsultationService(db *gorm.DB, mailer Mailer, notifyTo string) *ConsultationService {
	return &ConsultationService{
		db:       db,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *ConsultationService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	user, err := authenticateStaff(s.db, token, schema)
	if err != nil {
		return nil, ConsultationUnauthorized(err.Error())
	}
	return context.WithValue(ctx, "user", user), nil
}

// Submit implements the submit consultation request method. The insert is
// the durability checkpoint: if it fails nothing else happens and the caller
// gets an error. The notification email afterwards is best-effort.
func (s *ConsultationService) Submit(ctx context.Context, p *consultation.SubmitPayload) (*consultation.Consultationsubmitresult, error) {
	log.Printf("[CONSULT] Submit request: email=%s", p.Email)

	inquiry := &domain.ConsultationInquiry{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		DescribesYou: p.DescribesYou,
		InterestedIn: p.InterestedIn,
		Message:      p.Message,
		EmailSent:    false,
	}

	if err := s.db.Create(inquiry).Error; err != nil {
		log.Printf("[CONSULT] Submit failed: database error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save inquiry", err)
	}

	log.Printf("[CONSULT] Inquiry saved: id=%s", inquiry.ID)
	metrics.RecordInquiry("consultation")

	subject := fmt.Sprintf("New Consultation Request from %s %s", p.FirstName, p.LastName)
	htmlBody := fmt.Sprintf(`<h1>New Consultation Request</h1>
<p><strong>Name:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Describes them:</strong> %s</p>
<p><strong>Interested in:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, p.FirstName, p.LastName, p.Email, p.DescribesYou, p.InterestedIn, p.Message)
	textBody := fmt.Sprintf(`New Consultation Request

Name: %s %s
Email: %s
Describes them: %s
Interested in: %s

Message:
%s`, p.FirstName, p.LastName, p.Email, p.DescribesYou, p.InterestedIn, p.Message)

	emailSent := notifyAndMark(s.db, s.mailer, "[CONSULT]", &domain.ConsultationInquiry{}, inquiry.ID, s.notifyTo, subject, htmlBody, textBody)

	return &consultation.Consultationsubmitresult{
		Success:   true,
		ID:        inquiry.ID,
		EmailSent: emailSent,
	}, nil
}

// List returns all consultation inquiries (Staff/Admin only)
func (s *ConsultationService) List(ctx context.Context, p *consultation.ListPayload) ([]*consultation.Consultationinquiryresult, error) {
	log.Printf("[CONSULT] List request: skip=%d, limit=%d", p.Skip, p.Limit)

	var inquiries []domain.ConsultationInquiry
	if err := s.db.Order("created_at DESC").Offset(p.Skip).Limit(p.Limit).Find(&inquiries).Error; err != nil {
		log.Printf("[CONSULT] List failed: database error: %v", err)
		return nil, fmt.Errorf("failed to fetch consultation inquiries: %w", err)
	}

	results := make([]*consultation.Consultationinquiryresult, len(inquiries))
	for i, inq := range inquiries {
		results[i] = &consultation.Consultationinquiryresult{
			ID:           inq.ID,
			FirstName:    inq.FirstName,
			LastName:     inq.LastName,
			Email:        inq.Email,
			DescribesYou: inq.DescribesYou,
			InterestedIn: inq.InterestedIn,
			Message:      inq.Message,
			EmailSent:    inq.EmailSent,
			CreatedAt:    inq.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	log.Printf("[CONSULT] List successful: returned %d inquiries", len(results))
	return results, nil
}

// authenticateStaff validates a JWT and loads the staff user it names.
// Shared by the JWTAuth hooks of the inquiry services.
func authenticateStaff(db *gorm.DB, token string, schema *security.JWTScheme) (*domain.User, error) {
	claims, err := util.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token")
	}

	var user domain.User
	if err := db.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("user account is inactive")
	}

	if schema != nil && len(schema.RequiredScopes) > 0 {
		hasScope := false
		for _, requiredScope := range schema.RequiredScopes {
			if requiredScope == "admin" && user.IsAdmin {
				hasScope = true
				break
			}
			if requiredScope == "staff" && (user.IsStaff || user.IsAdmin) {
				hasScope = true
				break
			}
		}
		if !hasScope {
			return nil, fmt.Errorf("insufficient permissions")
		}
	}

	return &user, nil
}
