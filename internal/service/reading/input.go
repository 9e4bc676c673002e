package reading

import (
	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// FinishInput holds the parameters for one finish-reading event.
// Meanings maps a clicked word to the gloss the user typed for it; words
// without a gloss simply have no map entry.
type FinishInput struct {
	ArticleID uuid.UUID
	Meanings  map[string]string
}

// Validate checks all fields and collects all errors.
func (i *FinishInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	for word, meaning := range i.Meanings {
		if len(meaning) > 2000 {
			errs = append(errs, domain.FieldError{Field: "meanings." + word, Message: "max 2000 characters"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryInput holds pagination for session and level-history listings.
type HistoryInput struct {
	Limit int
}

// normalize clamps the limit to its bounds; out-of-range values are
// recovered, never rejected.
func (i *HistoryInput) normalize() {
	if i.Limit <= 0 || i.Limit > maxHistoryLimit {
		i.Limit = defaultHistoryLimit
	}
}
