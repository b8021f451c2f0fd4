package dto

import (
	"github.com/spec-kit/console-service/internal/domain"
)

// SearchRecordsRequest payload. Term applies to by_identifier mode;
// country and city apply to by_filter mode.
type SearchRecordsRequest struct {
	Mode    string `json:"mode" validate:"required,oneof=by_identifier by_filter"`
	Term    string `json:"term"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// RecordResponse describes one audience record. PhoneNumber is omitted
// until the record has been purchased.
type RecordResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Education   string `json:"education,omitempty"`
	Job         string `json:"job,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// NewRecordResponse maps a domain record.
func NewRecordResponse(record domain.AudienceRecord) RecordResponse {
	return RecordResponse{
		ID:          record.ID,
		Name:        record.Name,
		Country:     record.Country,
		City:        record.City,
		Education:   record.Education,
		Job:         record.Job,
		PhoneNumber: record.PhoneNumber,
	}
}

// PurchaseRecordsRequest payload.
type PurchaseRecordsRequest struct {
	RecordIDs []string `json:"record_ids" validate:"required,min=1,dive,required"`
}

// PurchaseRecordsResponse reports the purchase outcome.
type PurchaseRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Cost    int              `json:"cost"`
	Balance int              `json:"balance"`
}
