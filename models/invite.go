package models

import (
	"time"

	"plumtrips-backend/onboarding"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InviteStatusPending   = "pending"
	InviteStatusSubmitted = "submitted"
	InviteStatusRevoked   = "revoked"
)

// DefaultTurnaroundHours applies when the admin does not set a TAT.
const DefaultTurnaroundHours = 72

type Invite struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Token           string          `gorm:"uniqueIndex;not null;size:64" json:"token"`
	Kind            onboarding.Kind `gorm:"not null;size:20;index" json:"kind"`
	Status          string          `gorm:"default:pending;size:20" json:"status"` // pending, submitted, revoked
	InviteeEmail    string          `gorm:"not null;size:255;index" json:"invitee_email"`
	InviteeName     string          `gorm:"size:100" json:"invitee_name"`
	TurnaroundHours int             `json:"turnaround_hours"`
	ExpiresAt       time.Time       `json:"expires_at"`
	CreatedBy       uuid.UUID       `gorm:"type:uuid" json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (i *Invite) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Token == "" {
		i.Token = uuid.NewString()
	}
	return nil
}

// IsExpired is a query-time check; expired invites are never mutated.
func (i *Invite) IsExpired() bool {
	return !i.ExpiresAt.IsZero() && time.Now().After(i.ExpiresAt)
}

// CanBeOpened reports whether the public wizard may load this invite.
func (i *Invite) CanBeOpened() bool {
	return i.Status == InviteStatusPending && !i.IsExpired()
}

type CreateInviteRequest struct {
	Kind            string `json:"kind" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name"`
	TurnaroundHours int    `json:"turnaround_hours"`
}

// InviteOpenResponse is what the public wizard receives when it loads an
// invite: the metadata plus the kind's full schema.
type InviteOpenResponse struct {
	Token           string               `json:"token"`
	Kind            onboarding.Kind      `json:"kind"`
	Status          string               `json:"status"`
	InviteeEmail    string               `json:"invitee_email"`
	InviteeName     string               `json:"invitee_name"`
	TurnaroundHours int                  `json:"turnaround_hours"`
	ExpiresAt       time.Time            `json:"expires_at"`
	Steps           []onboarding.Step    `json:"steps"`
	Slots           []onboarding.DocSlot `json:"slots"`
}

func (i *Invite) ToOpenResponse() InviteOpenResponse {
	sch := onboarding.Schema(i.Kind)
	return InviteOpenResponse{
		Token:           i.Token,
		Kind:            i.Kind,
		Status:          i.Status,
		InviteeEmail:    i.InviteeEmail,
		InviteeName:     i.InviteeName,
		TurnaroundHours: i.TurnaroundHours,
		ExpiresAt:       i.ExpiresAt,
		Steps:           sch.Steps,
		Slots:           sch.Slots,
	}
}
