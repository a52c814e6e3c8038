package blog

import (
	"fmt"
	"strings"
	"time"
)

// Post is a published blog entry. ID and CreatedAt are assigned by the store.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Insert carries the client-supplied subset of Post fields.
type Insert struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
}

// Validate reports the first missing field, in field order.
func (in Insert) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("content is required")
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		return fmt.Errorf("excerpt is required")
	}
	return nil
}
