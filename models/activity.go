package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is the audit trail shown on the admin console: who invited whom,
// what was revoked, what came back submitted.
type Activity struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InviteID    uuid.UUID  `gorm:"type:uuid;index" json:"invite_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"` // acting admin; NULL for invitee actions
	User        User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type        string     `gorm:"not null;size:30" json:"type"` // invite_created, invite_revoked, onboarding_submitted
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

const (
	ActivityInviteCreated       = "invite_created"
	ActivityInviteRevoked       = "invite_revoked"
	ActivityOnboardingSubmitted = "onboarding_submitted"
)

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
