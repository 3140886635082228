package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"connect-skills/domain"
)

const (
	defaultScoringTimeout = 45 * time.Second
	previewLimit          = 400
)

// RemoteScoringError covers everything that can go wrong talking to the
// scoring service: network failure, non-2xx status, response shape we
// cannot make sense of. Preview carries at most 400 characters of the raw
// body for diagnostics.
type RemoteScoringError struct {
	Op      string
	Preview string
	Err     error
}

func (e *RemoteScoringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scoring service: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("scoring service: %s (payload: %s)", e.Op, e.Preview)
}

func (e *RemoteScoringError) Unwrap() error { return e.Err }

// ScoringClient talks to the external compatibility-scoring service.
type ScoringClient struct {
	endpoint string
	client   *http.Client
}

// NewScoringClient reads SCORING_URL and SCORING_TIMEOUT_MS from the
// environment. Timeout defaults to 45s.
func NewScoringClient() *ScoringClient {
	endpoint := os.Getenv("SCORING_URL")
	if endpoint == "" {
		logrus.Fatal("SCORING_URL is not set in environment")
	}

	timeout := defaultScoringTimeout
	if ms := os.Getenv("SCORING_TIMEOUT_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			timeout = time.Duration(v) * time.Millisecond
		}
	}

	return &ScoringClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewScoringClientWith builds a client against a known endpoint, used by
// tests and by callers that manage configuration themselves.
func NewScoringClientWith(endpoint string, timeout time.Duration) *ScoringClient {
	if timeout <= 0 {
		timeout = defaultScoringTimeout
	}
	return &ScoringClient{endpoint: endpoint, client: &http.Client{Timeout: timeout}}
}

type scoringRequest struct {
	Questions []string            `json:"questions"`
	Items     []domain.AnswerItem `json:"items"`
}

// ScoreCompatibility sends the question set and the candidate's answer
// items to the scoring service and normalizes whatever comes back into
// {item, rating} pairs. One call, no retry; cancellation via ctx.
func (s *ScoringClient) ScoreCompatibility(ctx context.Context, questions []string, items []domain.AnswerItem) ([]domain.CompatibilityResult, error) {
	payload, err := json.Marshal(scoringRequest{Questions: questions, Items: items})
	if err != nil {
		return nil, &RemoteScoringError{Op: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, &RemoteScoringError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RemoteScoringError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteScoringError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteScoringError{
			Op:      fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Preview: truncatePreview(string(body)),
		}
	}

	results, err := parseScoringResponse(body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"questions": len(questions),
		"items":     len(items),
		"results":   len(results),
	}).Debug("scoring service response normalized")

	return results, nil
}

// parseScoringResponse normalizes the loosely specified response body. The
// service is an uncontrolled upstream, so extraction is deliberately
// tolerant: the results list is looked up through an ordered chain of
// locators and only when every one misses do we fail.
func parseScoringResponse(body []byte) ([]domain.CompatibilityResult, error) {
	raw := string(body)

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &RemoteScoringError{Op: "unparseable response", Preview: truncatePreview(raw)}
	}

	// A JSON-encoded string wrapping the real object gets one extra parse
	// pass; parse failure keeps the string as-is.
	if s, ok := decoded.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			decoded = inner
		}
	}

	located, ok := locateResults(decoded)
	if !ok {
		return nil, &RemoteScoringError{Op: "no results field in response", Preview: truncatePreview(raw)}
	}

	// The located value itself may be a JSON-encoded string.
	if s, ok := located.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			located = inner
		}
	}

	list, ok := located.([]any)
	if !ok {
		return nil, &RemoteScoringError{Op: "results field is not a list", Preview: truncatePreview(raw)}
	}

	results := make([]domain.CompatibilityResult, 0, len(list))
	for _, entry := range list {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := coerceItem(fields)
		if item == "" {
			continue
		}
		results = append(results, domain.CompatibilityResult{
			Item:   item,
			Rating: coerceRating(fields),
		})
	}
	return results, nil
}

// resultLocator tries to pull the results list out of a decoded body.
type resultLocator func(body any) (any, bool)

// Ordered extraction chain; the first hit wins.
var resultLocators = []resultLocator{
	fieldLocator("results"),
	fieldLocator("result"),
	fieldLocator("items"),
	nestedLocator("data", "results"),
	nestedLocator("data", "items"),
	func(body any) (any, bool) {
		list, ok := body.([]any)
		return list, ok
	},
}

func fieldLocator(key string) resultLocator {
	return func(body any) (any, bool) {
		obj, ok := body.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := obj[key]
		return v, ok && v != nil
	}
}

func nestedLocator(outer, inner string) resultLocator {
	return func(body any) (any, bool) {
		obj, ok := body.(map[string]any)
		if !ok {
			return nil, false
		}
		return fieldLocator(inner)(obj[outer])
	}
}

func locateResults(body any) (any, bool) {
	for _, locate := range resultLocators {
		if v, ok := locate(body); ok {
			return v, true
		}
	}
	return nil, false
}

// coerceItem extracts the item identifier from whichever of the known keys
// is present, defaulting to empty.
func coerceItem(fields map[string]any) string {
	for _, key := range []string{"Item", "item", "titulo"} {
		switch v := fields[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

var decimalPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// coerceRating extracts a rating from whichever of the known keys is
// present. Textual ratings go through a first-decimal pattern match,
// numeric ones are rounded to the nearest integer; everything else is nil.
func coerceRating(fields map[string]any) *int {
	for _, key := range []string{"rating", "score", "nota"} {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		return coerceRatingValue(v)
	}
	return nil
}

func coerceRatingValue(v any) *int {
	switch val := v.(type) {
	case float64:
		return roundRating(val)
	case string:
		match := decimalPattern.FindString(val)
		if match == "" {
			return nil
		}
		f, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return nil
		}
		return roundRating(f)
	default:
		return nil
	}
}

func roundRating(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Round(f))
	return &n
}

// truncatePreview shortens a payload for diagnostics, same idea as log
// previews: enough to see what came back, never the whole body.
func truncatePreview(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "..."
}
