package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetOwnerInquiry represents an assessment request from a diamond holder.
// InventoryValue is free text supplied by the form, stored as-is.
type AssetOwnerInquiry struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Organisation   string    `json:"organisation"`
	Role           string    `json:"role"`
	Email          string    `gorm:"not null;index" json:"email"`
	InventoryValue string    `json:"inventory_value"`
	Description    string    `gorm:"type:text" json:"description"`
	EmailSent      bool      `gorm:"default:false" json:"email_sent"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for AssetOwnerInquiry
func (AssetOwnerInquiry) TableName() string {
	return "asset_owner_inquiries"
}

// BeforeCreate hook
func (a *AssetOwnerInquiry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()
	return nil
}
