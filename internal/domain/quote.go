package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_quote_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain QuoteRepository
//go:generate mockgen -destination mocks/mock_quote_service.go -package mocks github.com/chromacraft/chromacraft/internal/domain QuoteService

// QuoteStatus is the workflow label of a quote submission. Any status may be
// set by an admin in any order; only membership in the closed set is checked.
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusReviewed  QuoteStatus = "reviewed"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusDeclined  QuoteStatus = "declined"
	QuoteStatusCompleted QuoteStatus = "completed"
)

// IsValid reports whether the status is one of the enumerated values
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusReviewed, QuoteStatusQuoted,
		QuoteStatusAccepted, QuoteStatusDeclined, QuoteStatusCompleted:
		return true
	}
	return false
}

// QuoteSubmission is a customer-initiated request for a service estimate
type QuoteSubmission struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	VehicleType   string      `json:"vehicle_type"`
	VehicleMake   string      `json:"vehicle_make,omitempty"`
	VehicleModel  string      `json:"vehicle_model,omitempty"`
	VehicleYear   string      `json:"vehicle_year,omitempty"`
	ServiceType   string      `json:"service_type"`
	Finish        string      `json:"finish,omitempty"`
	Description   string      `json:"description,omitempty"`
	Budget        string      `json:"budget,omitempty"`
	Timeline      string      `json:"timeline,omitempty"`
	Status        QuoteStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// QuoteFile is an uploaded attachment belonging to exactly one quote.
// Immutable after creation; rows cascade with their parent quote.
type QuoteFile struct {
	ID         int64     `json:"id"`
	QuoteID    int64     `json:"quote_id"`
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuoteUpload is an inline base64-encoded attachment in a submit request
type QuoteUpload struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded payload
}

// SubmitQuoteRequest is the public quote intake payload
type SubmitQuoteRequest struct {
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	VehicleType   string        `json:"vehicle_type"`
	VehicleMake   string        `json:"vehicle_make,omitempty"`
	VehicleModel  string        `json:"vehicle_model,omitempty"`
	VehicleYear   string        `json:"vehicle_year,omitempty"`
	ServiceType   string        `json:"service_type"`
	Finish        string        `json:"finish,omitempty"`
	Description   string        `json:"description,omitempty"`
	Budget        string        `json:"budget,omitempty"`
	Timeline      string        `json:"timeline,omitempty"`
	Files         []QuoteUpload `json:"files,omitempty"`
}

// Validate checks the required intake fields
func (r *SubmitQuoteRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return NewValidationError("name is required")
	}
	if !govalidator.IsEmail(r.CustomerEmail) {
		return NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(r.VehicleType) == "" {
		return NewValidationError("vehicle type is required")
	}
	if strings.TrimSpace(r.ServiceType) == "" {
		return NewValidationError("service type is required")
	}
	return nil
}

// UpdateQuoteStatusRequest changes the workflow status of a quote
type UpdateQuoteStatusRequest struct {
	ID     int64       `json:"id"`
	Status QuoteStatus `json:"status"`
}

// Validate checks the update payload
func (r *UpdateQuoteStatusRequest) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id is required")
	}
	if !r.Status.IsValid() {
		return NewValidationError("invalid quote status")
	}
	return nil
}

// QuoteListFilter narrows and pages the admin quote list
type QuoteListFilter struct {
	Status *QuoteStatus
	Limit  int
	Offset int
}

// QuoteWithFiles bundles a quote with its attachments
type QuoteWithFiles struct {
	Quote *QuoteSubmission `json:"quote"`
	Files []*QuoteFile     `json:"files"`
}

// QuoteRepository persists quote submissions and their files
type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote *QuoteSubmission) error
	CreateQuoteFile(ctx context.Context, file *QuoteFile) error
	GetQuote(ctx context.Context, id int64) (*QuoteSubmission, error)
	GetQuoteFiles(ctx context.Context, quoteID int64) ([]*QuoteFile, error)
	ListQuotes(ctx context.Context, filter QuoteListFilter) ([]*QuoteSubmission, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status QuoteStatus) error
}

// QuoteService implements the quote intake and status workflow
type QuoteService interface {
	Submit(ctx context.Context, request *SubmitQuoteRequest) (*QuoteSubmission, error)
	Get(ctx context.Context, id int64) (*QuoteWithFiles, error)
	List(ctx context.Context, filter QuoteListFilter) ([]*QuoteSubmission, error)
	UpdateStatus(ctx context.Context, request *UpdateQuoteStatusRequest) (*QuoteSubmission, error)
}
