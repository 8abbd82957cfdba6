package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SNDL demand statuses. A demand is processed exactly once: PENDING moves to
// APPROVED or REJECTED and never back.
const (
	DemandPending  = "PENDING"
	DemandApproved = "APPROVED"
	DemandRejected = "REJECTED"
)

// SndlDemand is a request for credentials to the SNDL partner service. A user
// may hold at most one demand in {PENDING, APPROVED} at a time.
type SndlDemand struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID        string     `gorm:"not null;index;type:uuid" json:"user_id"`
	RequestReason string     `gorm:"not null" json:"request_reason"`
	Status        string     `gorm:"default:'PENDING';not null" json:"status"`
	SndlEmail     string     `json:"sndl_email,omitempty"`
	SndlPassword  string     `json:"-"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	RequestedAt   time.Time  `gorm:"autoCreateTime" json:"requested_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	ProcessedBy   *string    `gorm:"type:uuid" json:"processed_by,omitempty"`
	EmailSent     bool       `gorm:"default:false;not null" json:"email_sent"`
	EmailSentAt   *time.Time `json:"email_sent_at,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (d *SndlDemand) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

func (SndlDemand) TableName() string {
	return "sndl_demands"
}

// Blocks reports whether this demand prevents the user from filing a new one.
func (d *SndlDemand) Blocks() bool {
	return d.Status == DemandPending || d.Status == DemandApproved
}

// Approve moves a pending demand to APPROVED. Credentials must be supplied
// together; approval and the credential write are one transition.
func (d *SndlDemand) Approve(email, password, notes, processedBy string, now time.Time) error {
	if d.Status != DemandPending {
		return ErrDemandProcessed
	}
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	d.Status = DemandApproved
	d.SndlEmail = email
	d.SndlPassword = password
	d.AdminNotes = notes
	d.ProcessedAt = &now
	d.ProcessedBy = &processedBy
	return nil
}

// Reject moves a pending demand to REJECTED. No credentials are recorded.
func (d *SndlDemand) Reject(notes, processedBy string, now time.Time) error {
	if d.Status != DemandPending {
		return ErrDemandProcessed
	}
	d.Status = DemandRejected
	d.AdminNotes = notes
	d.ProcessedAt = &now
	d.ProcessedBy = &processedBy
	return nil
}

// MarkEmailSent records out-of-band delivery of the credentials. Idempotent:
// repeated calls keep the first timestamp.
func (d *SndlDemand) MarkEmailSent(now time.Time) error {
	if d.Status != DemandApproved {
		return ErrDemandNotApproved
	}
	if d.EmailSent {
		return nil
	}
	d.EmailSent = true
	d.EmailSentAt = &now
	return nil
}
