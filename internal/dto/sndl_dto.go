package dto

import (
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// CreateSndlDemandDTO for POST /api/sndl-demands.
type CreateSndlDemandDTO struct {
	RequestReason string `json:"request_reason" binding:"required"`
}

// ProcessSndlDemandDTO for PUT /api/sndl-demands/:id. Approval requires the
// credential pair; rejection carries notes only.
type ProcessSndlDemandDTO struct {
	Approved     bool   `json:"approved"`
	AdminNotes   string `json:"admin_notes,omitempty"`
	SndlEmail    string `json:"sndl_email,omitempty"`
	SndlPassword string `json:"sndl_password,omitempty"`
}

// SndlDemandResponse never exposes the stored password.
type SndlDemandResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	RequestReason string     `json:"request_reason"`
	Status        string     `json:"status"`
	SndlEmail     string     `json:"sndl_email,omitempty"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	ProcessedBy   *string    `json:"processed_by,omitempty"`
	EmailSent     bool       `json:"email_sent"`
	EmailSentAt   *time.Time `json:"email_sent_at,omitempty"`
}

func SndlDemandFromModel(d models.SndlDemand) SndlDemandResponse {
	return SndlDemandResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		RequestReason: d.RequestReason,
		Status:        d.Status,
		SndlEmail:     d.SndlEmail,
		AdminNotes:    d.AdminNotes,
		RequestedAt:   d.RequestedAt,
		ProcessedAt:   d.ProcessedAt,
		ProcessedBy:   d.ProcessedBy,
		EmailSent:     d.EmailSent,
		EmailSentAt:   d.EmailSentAt,
	}
}
