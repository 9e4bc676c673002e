package vocabulary

import (
	"context"
	"fmt"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// LedgerItem is one ledger entry enriched with lexicon metadata.
// Root is the base form when the word is a known inflection, Tier its CEFR
// band in the word list, and BeyondTarget reports whether the word sits
// above the user's target level.
type LedgerItem struct {
	Entry        domain.VocabEntry
	Root         string
	Tier         domain.Level
	BeyondTarget bool
}

// ListResult is one page of the ledger plus the pre-pagination total.
type ListResult struct {
	Items []LedgerItem
	Total int
}

// List returns a filtered page of the caller's ledger. Malformed filter
// values are clamped to defaults, never rejected. Each entry is
// annotated with its lexicon root and tier; words whose tier outranks the
// user's target level are flagged.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	entries, total, err := s.vocab.List(ctx, userID, domain.VocabFilter{
		Status:    input.Status,
		Search:    input.Search,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list vocab entries: %w", err)
	}

	items := make([]LedgerItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, s.annotate(e, user.TargetLevel))
	}

	return &ListResult{Items: items, Total: total}, nil
}

func (s *Service) annotate(e domain.VocabEntry, target domain.Level) LedgerItem {
	item := LedgerItem{Entry: e}

	if root, ok := s.lex.RootOf(e.Word); ok && root != e.Word {
		item.Root = root
	}
	if tier := s.lex.Tier(e.Word); tier != domain.LevelUnknown {
		item.Tier = tier
		item.BeyondTarget = target.Rank() > 0 && tier.Rank() > target.Rank()
	}
	return item
}
