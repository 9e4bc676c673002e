package reading

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/reading/level"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// FinishReading merges one finished reading into the vocabulary ledger and
// appends the session snapshot. Every write happens in a single transaction:
// a failure at any step leaves the ledger, the article, and the session log
// exactly as they were.
func (s *Service) FinishReading(ctx context.Context, input FinishInput) (*FinishResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *FinishResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// The locked read serializes concurrent finishes of the same
		// article: the second one blocks here until the first commits and
		// then sees is_completed already set, entering the reread path.
		article, err := s.articles.GetByIDForUpdate(ctx, userID, input.ArticleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		isReread := article.IsCompleted

		clicked, err := s.clicked.ListWords(ctx, article.ID, userID)
		if err != nil {
			return fmt.Errorf("list clicked words: %w", err)
		}
		clicked = normalizeClicked(clicked)
		clickedSet := make(map[string]struct{}, len(clicked))
		for _, w := range clicked {
			clickedSet[w] = struct{}{}
		}

		// Glosses arrive keyed by whatever the client sent; rekey them the
		// same way clicked words are normalized or the lookups below miss.
		glosses := normalizeMeanings(input.Meanings)

		// The scorer and the merger must agree on what "the article's
		// words" are, so both go through the same tokenizer.
		unique := domain.UniqueWords(article.Content)

		entries, err := s.vocab.GetByWords(ctx, userID, union(clicked, unique))
		if err != nil {
			return fmt.Errorf("load ledger entries: %w", err)
		}

		now := time.Now().UTC()
		merged := &FinishResult{IsReread: isReread}

		for _, word := range clicked {
			entry, err := s.mergeClick(ctx, entries[word], userID, word, article.ID, now, merged)
			if err != nil {
				return err
			}
			if gloss := strings.TrimSpace(glosses[word]); gloss != "" {
				if err := s.captureMeaning(ctx, entry.ID, article.ID, gloss, now); err != nil {
					return err
				}
			}
		}

		for _, word := range unique {
			if _, wasClicked := clickedSet[word]; wasClicked {
				continue
			}
			// Skips never create rows: words the user never clicked in
			// any article stay out of the ledger entirely.
			entry, exists := entries[word]
			if !exists || entry.Status != domain.VocabStatusActive {
				continue
			}
			if err := s.mergeSkip(ctx, entry, merged); err != nil {
				return err
			}
		}

		merged.UnknownPercent = unknownPercent(len(clicked), len(unique))

		if _, err := s.articles.MarkCompleted(ctx, userID, article.ID, len(clicked), merged.UnknownPercent); err != nil {
			return fmt.Errorf("mark article completed: %w", err)
		}

		totalVocab, err := s.vocab.CountActive(ctx, userID)
		if err != nil {
			return fmt.Errorf("count active vocab: %w", err)
		}
		merged.TotalVocab = totalVocab

		estimate, err := s.estimate(ctx, userID, article.Level, merged.UnknownPercent)
		if err != nil {
			return err
		}
		merged.UserLevel = estimate.Level

		if _, err := s.sessions.Create(ctx, &domain.ReadingSession{
			ID:             uuid.New(),
			UserID:         userID,
			ArticleID:      &article.ID,
			Difficulty:     article.Level,
			NewWords:       merged.NewWords,
			RepeatedWords:  merged.RepeatedWords,
			MasteredWords:  merged.MasteredWords,
			HighFreqWords:  merged.HighFreqWords,
			TotalVocab:     totalVocab,
			UnknownPercent: merged.UnknownPercent,
			EstimatedLevel: estimate.Level,
			CreatedAt:      now,
		}); err != nil {
			return fmt.Errorf("create reading session: %w", err)
		}

		if _, err := s.sessions.CreateLevelHistory(ctx, &domain.LevelHistoryEntry{
			ID:             uuid.New(),
			UserID:         userID,
			Level:          estimate.Level,
			Score:          estimate.Score,
			VocabSize:      totalVocab,
			UnknownPercent: merged.UnknownPercent,
			CreatedAt:      now,
		}); err != nil {
			return fmt.Errorf("create level history: %w", err)
		}

		if _, err := s.users.UpdateLevel(ctx, userID, estimate.Level); err != nil {
			return fmt.Errorf("update user level: %w", err)
		}
		if !isReread {
			if _, err := s.users.IncrementCompletedArticles(ctx, userID); err != nil {
				return fmt.Errorf("increment completed articles: %w", err)
			}
		}

		result = merged
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reading finished",
		"article_id", input.ArticleID,
		"new_words", result.NewWords,
		"mastered_words", result.MasteredWords,
		"unknown_percent", result.UnknownPercent,
		"level", result.UserLevel,
	)
	return result, nil
}

// mergeClick applies the click transition for one word, creating the ledger
// entry on first click.
func (s *Service) mergeClick(ctx context.Context, entry *domain.VocabEntry, userID uuid.UUID, word string, articleID uuid.UUID, now time.Time, merged *FinishResult) (*domain.VocabEntry, error) {
	if entry == nil {
		created, err := s.vocab.Create(ctx, &domain.VocabEntry{
			ID:             uuid.New(),
			UserID:         userID,
			Word:           word,
			ClickCount:     1,
			SkipCount:      0,
			Status:         domain.VocabStatusActive,
			FirstArticleID: &articleID,
			LastArticleID:  &articleID,
			CreatedAt:      now,
			LastClickedAt:  now,
		})
		if err != nil {
			return nil, fmt.Errorf("create vocab entry %q: %w", word, err)
		}
		merged.NewWords++
		return created, nil
	}

	entry.SetState(domain.ApplyVocabEvent(entry.State(), domain.VocabEventClick))
	entry.LastArticleID = &articleID
	entry.LastClickedAt = now

	updated, err := s.vocab.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("update vocab entry %q: %w", word, err)
	}
	merged.RepeatedWords++
	if updated.ClickCount >= domain.HighFrequencyThreshold {
		merged.HighFreqWords = append(merged.HighFreqWords, word)
	}
	return updated, nil
}

// mergeSkip applies the skip transition for one active ledger word the user
// left unclicked.
func (s *Service) mergeSkip(ctx context.Context, entry *domain.VocabEntry, merged *FinishResult) error {
	before := entry.State()
	after := domain.ApplyVocabEvent(before, domain.VocabEventSkip)
	entry.SetState(after)

	if _, err := s.vocab.Update(ctx, entry); err != nil {
		return fmt.Errorf("update vocab entry %q: %w", entry.Word, err)
	}
	if after.Status == domain.VocabStatusMastered && before.Status != domain.VocabStatusMastered {
		merged.MasteredWords++
	}
	return nil
}

func (s *Service) captureMeaning(ctx context.Context, entryID, articleID uuid.UUID, gloss string, now time.Time) error {
	exists, err := s.meanings.ExistsForArticle(ctx, entryID, articleID)
	if err != nil {
		return fmt.Errorf("check meaning: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := s.meanings.Create(ctx, &domain.WordMeaning{
		ID:        uuid.New(),
		EntryID:   entryID,
		ArticleID: &articleID,
		Meaning:   gloss,
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("create meaning: %w", err)
	}
	return nil
}

// estimate runs the proficiency estimator over the last prior sessions plus
// a synthetic record for the one being finished.
func (s *Service) estimate(ctx context.Context, userID uuid.UUID, difficulty domain.Level, unknownPct float64) (level.Result, error) {
	prior, err := s.sessions.ListRecent(ctx, userID, level.WindowSize)
	if err != nil {
		return level.Result{}, fmt.Errorf("list recent sessions: %w", err)
	}

	// ListRecent returns newest first; the estimator wants oldest first.
	records := make([]domain.SessionRecord, 0, len(prior)+1)
	for i := len(prior) - 1; i >= 0; i-- {
		records = append(records, domain.SessionRecord{
			Difficulty:     prior[i].Difficulty,
			UnknownPercent: prior[i].UnknownPercent,
		})
	}
	records = append(records, domain.SessionRecord{
		Difficulty:     difficulty,
		UnknownPercent: unknownPct,
	})

	return level.Estimate(records), nil
}

// normalizeClicked lowercases, trims, and deduplicates the clicked words
// while preserving click order.
func normalizeClicked(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		norm := domain.NormalizeWord(w)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

// normalizeMeanings rekeys the gloss map by normalized word; when two raw
// keys collapse to the same word one of the glosses is kept.
func normalizeMeanings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for word, gloss := range in {
		norm := domain.NormalizeWord(word)
		if norm == "" {
			continue
		}
		if _, dup := out[norm]; !dup {
			out[norm] = gloss
		}
	}
	return out
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, w := range list {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

func unknownPercent(clicked, unique int) float64 {
	if unique == 0 {
		return 0
	}
	return math.Round(100*float64(clicked)/float64(unique)*10) / 10
}
