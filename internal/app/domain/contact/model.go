package contact

import (
	"fmt"
	"strings"
	"time"
)

// Submission is a stored contact form entry. ID and CreatedAt are assigned by
// the store at creation and never change afterwards.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// Insert carries the client-supplied subset of Submission fields.
type Insert struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Query string `json:"query"`
}

// Validate reports the first missing or malformed field, in field order.
func (in Insert) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("email is invalid")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if strings.TrimSpace(in.Query) == "" {
		return fmt.Errorf("query is required")
	}
	return nil
}
