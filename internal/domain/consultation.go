package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsultationInquiry represents a consultation request submitted from the
// public site. Rows are append-only: the only field ever updated after
// creation is EmailSent.
type ConsultationInquiry struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	Email        string    `gorm:"not null;index" json:"email"`
	DescribesYou string    `json:"describes_you"`
	InterestedIn string    `json:"interested_in"`
	Message      string    `gorm:"type:text" json:"message"`
	EmailSent    bool      `gorm:"default:false" json:"email_sent"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for ConsultationInquiry
func (ConsultationInquiry) TableName() string {
	return "consultation_inquiries"
}

// BeforeCreate hook
func (c *ConsultationInquiry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	return nil
}
