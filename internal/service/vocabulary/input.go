package vocabulary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxSearchLen     = 100
)

// ListInput holds the filtering and pagination parameters for ledger listings.
type ListInput struct {
	Status    *domain.VocabStatus
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// normalize recovers malformed listing input instead of rejecting it:
// unknown status filters are dropped, over-long searches truncated,
// unsupported sort orders and out-of-range pagination fall back to
// defaults. Unknown sort keys pass through; the storage layer maps them
// to its default ordering.
func (i *ListInput) normalize() {
	if i.Status != nil && !i.Status.IsValid() {
		i.Status = nil
	}
	i.Search = strings.TrimSpace(i.Search)
	if r := []rune(i.Search); len(r) > maxSearchLen {
		i.Search = string(r[:maxSearchLen])
	}
	i.SortOrder = strings.ToLower(i.SortOrder)
	if i.SortOrder != "asc" && i.SortOrder != "desc" {
		i.SortOrder = "desc"
	}
	if i.Limit <= 0 || i.Limit > maxListLimit {
		i.Limit = defaultListLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}

// AddMeaningInput holds the parameters for capturing a word meaning.
type AddMeaningInput struct {
	EntryID   uuid.UUID
	ArticleID *uuid.UUID
	Meaning   string
	Context   *string
}

// Validate checks all fields and collects all errors.
func (i *AddMeaningInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if strings.TrimSpace(i.Meaning) == "" {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "required"})
	}
	if len(i.Meaning) > 2000 {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
