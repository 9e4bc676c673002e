package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// maxBodySize caps fetched HTML to protect against unbounded responses.
const maxBodySize = 10 * 1024 * 1024

// ImportFromURL fetches a web page, extracts its readable text, and imports
// it like a raw-text article.
func (s *Service) ImportFromURL(ctx context.Context, input ImportURLInput) (*domain.Article, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title, text, err := s.fetchReadable(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, CreateInput{Title: title, Content: text})
}

func (s *Service) fetchReadable(ctx context.Context, pageURL string) (title, text string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return "", "", fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxBodySize {
		return "", "", fmt.Errorf("fetch %s: page larger than %d bytes", pageURL, maxBodySize)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("parse URL: %w", err)
	}

	page, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return "", "", fmt.Errorf("extract article from %s: %w", pageURL, err)
	}

	title = strings.TrimSpace(page.Title)
	if title == "" {
		title = parsed.Host
	}
	text = strings.TrimSpace(page.TextContent)
	if text == "" {
		return "", "", domain.NewValidationError("url", "no readable text found")
	}
	return title, text, nil
}
