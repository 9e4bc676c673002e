package article

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

const (
	maxTitleLen   = 300
	maxContentLen = 200_000
)

// CreateInput holds the parameters for importing an article from raw text.
type CreateInput struct {
	Title   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 200000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportURLInput holds the parameters for importing an article from a web page.
type ImportURLInput struct {
	URL string
}

// Validate checks all fields and collects all errors.
func (i *ImportURLInput) Validate() error {
	var errs []domain.FieldError

	parsed, err := url.Parse(strings.TrimSpace(i.URL))
	switch {
	case i.URL == "":
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	case err != nil:
		errs = append(errs, domain.FieldError{Field: "url", Message: "malformed URL"})
	case parsed.Scheme != "http" && parsed.Scheme != "https":
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be http or https"})
	case parsed.Host == "":
		errs = append(errs, domain.FieldError{Field: "url", Message: "missing host"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ClickInput holds the parameters for marking a word in a reading.
type ClickInput struct {
	ArticleID uuid.UUID
	Word      string
}

// Validate checks all fields and collects all errors.
func (i *ClickInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if len(domain.NormalizeWord(i.Word)) < 2 {
		errs = append(errs, domain.FieldError{Field: "word", Message: "min 2 characters"})
	}
	if len(i.Word) > 100 {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds pagination for article listings.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
