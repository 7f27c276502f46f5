package models

import (
	"time"

	"plumtrips-backend/onboarding"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is the authoritative record created when an invitee submits the
// wizard. It supersedes any draft for the same token.
type Submission struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InviteID     uuid.UUID       `gorm:"type:uuid;index" json:"invite_id"`
	Invite       Invite          `gorm:"foreignKey:InviteID" json:"invite,omitempty"`
	Kind         onboarding.Kind `gorm:"not null;size:20;index" json:"kind"`
	InviteeEmail string          `gorm:"size:255;index" json:"invitee_email"`
	Core         JSONMap         `gorm:"type:jsonb" json:"core"`
	Attachments  AttachmentList  `gorm:"type:jsonb" json:"attachments"`
	Normalized   StringMap       `gorm:"type:jsonb" json:"normalized"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SubmissionListItem is the list-view projection for admin consoles; the
// full core payload stays out of list responses.
type SubmissionListItem struct {
	ID           uuid.UUID       `json:"id"`
	Kind         onboarding.Kind `json:"kind"`
	InviteeEmail string          `json:"invitee_email"`
	DisplayName  string          `json:"display_name"`
	SubmittedAt  time.Time       `json:"submitted_at"`
}

func (s *Submission) ToListItem() SubmissionListItem {
	return SubmissionListItem{
		ID:           s.ID,
		Kind:         s.Kind,
		InviteeEmail: s.InviteeEmail,
		DisplayName:  s.Normalized[onboarding.FieldDisplayName],
		SubmittedAt:  s.SubmittedAt,
	}
}
