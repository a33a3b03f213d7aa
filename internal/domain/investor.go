package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvestorInquiry represents an investor interest registration.
// InvestorTypes holds the selected tags comma-separated (multiple
// selections: family-office, institutional, hnwi, retail).
type InvestorInquiry struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Email         string    `gorm:"not null;index" json:"email"`
	InvestorTypes string    `json:"investor_types"`
	TicketSize    string    `json:"ticket_size"`
	EmailSent     bool      `gorm:"default:false" json:"email_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for InvestorInquiry
func (InvestorInquiry) TableName() string {
	return "investor_inquiries"
}

// BeforeCreate hook
func (i *InvestorInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	i.CreatedAt = time.Now()
	return nil
}
