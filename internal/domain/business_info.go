package domain

import (
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// BusinessHours maps a weekday name to an opening-hours string
// (e.g. "monday" -> "8:00-17:00", "sunday" -> "closed")
type BusinessHours map[string]string

// Value implements the driver.Valuer interface for database serialization
func (h BusinessHours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan implements the sql.Scanner interface for database deserialization
func (h *BusinessHours) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed")
	}

	cloned := bytes.Clone(b)
	return json.Unmarshal(cloned, h)
}

// BusinessInfo is a singleton: an update with no existing row inserts one
// with the supplied values instead of failing.
type BusinessInfo struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone,omitempty"`
	Email     string        `json:"email,omitempty"`
	Address   string        `json:"address,omitempty"`
	Hours     BusinessHours `json:"hours"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks the business info fields
func (b *BusinessInfo) Validate() error {
	if b.Name == "" {
		return NewValidationError("name is required")
	}
	if b.Email != "" && !govalidator.IsEmail(b.Email) {
		return NewValidationError("email is invalid")
	}
	return nil
}

// BusinessInfoRepository persists the singleton business info row
type BusinessInfoRepository interface {
	Get(ctx context.Context) (*BusinessInfo, error)
	// Upsert updates the singleton row, inserting it when absent
	Upsert(ctx context.Context, info *BusinessInfo) error
}
