package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/domain"
	"lexiquiz/internal/dto"
	"lexiquiz/internal/logger"
	"lexiquiz/internal/prompt"
	"lexiquiz/internal/sanitize"

	"go.uber.org/zap"
)

const (
	wordSourceCache     = "cache"
	wordSourceGenerated = "generated"
	wordSourceFallback  = "fallback"
)

// WordOfDayService resolves exactly one word record per user per calendar
// day. It never fails outward: every call returns a usable record from the
// cache, a fresh generation, or the offline fallback list.
type WordOfDayService interface {
	FetchWordOfDay(ctx context.Context, userID string) *dto.WordOfDayResponse
}

// wordOfDayService implements WordOfDayService
type wordOfDayService struct {
	store     domain.DocumentStore
	generator domain.TextGenerator
	cacheTTL  time.Duration
}

// NewWordOfDayService creates a new instance of wordOfDayService
func NewWordOfDayService(store domain.DocumentStore, generator domain.TextGenerator, cacheTTL time.Duration) WordOfDayService {
	if cacheTTL <= 0 {
		cacheTTL = domain.WordOfDayTTL
	}
	return &wordOfDayService{
		store:     store,
		generator: generator,
		cacheTTL:  cacheTTL,
	}
}

// FetchWordOfDay runs the per-call state machine: cache lookup, generation on
// miss, offline fallback on any failure. Concurrent calls for the same
// user+day are not de-duplicated; the last persisted write wins.
func (s *wordOfDayService) FetchWordOfDay(ctx context.Context, userID string) *dto.WordOfDayResponse {
	dateStr := time.Now().Format("2006-01-02")
	key := cache.WordOfDayKey(userID, dateStr)
	seed := cache.DailySeed(userID, dateStr)

	raw, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		var rec domain.WordOfDayRecord
		if errUnmarshal := json.Unmarshal([]byte(raw), &rec); errUnmarshal == nil && rec.Word != "" {
			return toWordOfDayDTO(&rec, dateStr, wordSourceCache)
		}
		logger.Get().Warn("Cached word-of-day record is corrupt, regenerating",
			zap.String("key", key))
	case errors.Is(err, domain.ErrDocumentNotFound):
		// first request for this user+day
	default:
		// Store unreachable: a generated record could not be persisted either,
		// so degrade straight to the offline list.
		logger.Get().Warn("Word-of-day store lookup failed, using fallback",
			zap.Error(err),
			zap.String("key", key))
		return toWordOfDayDTO(fallbackWordOfDay(seed, time.Now()), dateStr, wordSourceFallback)
	}

	rec, err := s.generate(ctx, seed)
	if err != nil {
		logger.Get().Warn("Word-of-day generation failed, using fallback",
			zap.Error(err),
			zap.String("seed", seed))
		return toWordOfDayDTO(fallbackWordOfDay(seed, time.Now()), dateStr, wordSourceFallback)
	}

	// Persist before returning. A failed write is logged and the generated
	// value is still returned; it just is not guaranteed cached for the next
	// call.
	if payload, errMarshal := json.Marshal(rec); errMarshal == nil {
		if errSet := s.store.Set(ctx, key, string(payload), s.cacheTTL); errSet != nil {
			logger.Get().Warn("Failed to persist word-of-day record",
				zap.Error(errSet),
				zap.String("key", key))
		}
	}

	return toWordOfDayDTO(rec, dateStr, wordSourceGenerated)
}

// generate builds the seeded prompt, calls the lite model tier, and parses a
// single {word, definition} object out of the sanitized response.
func (s *wordOfDayService) generate(ctx context.Context, seed string) (*domain.WordOfDayRecord, error) {
	raw, err := s.generator.Generate(ctx, prompt.BuildWordOfDayPrompt(seed), domain.TierLite)
	if err != nil {
		return nil, err
	}

	cleaned := sanitize.Clean(raw)

	var parsed struct {
		Word       string `json:"word"`
		Definition string `json:"definition"`
	}
	if errUnmarshal := json.Unmarshal([]byte(cleaned), &parsed); errUnmarshal != nil {
		// Single-object recovery: first "{" to last "}".
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start == -1 || end <= start {
			return nil, domain.NewUnrecoverableResponseError(errUnmarshal)
		}
		candidate := sanitize.RemoveTrailingCommas(cleaned[start : end+1])
		if errRetry := json.Unmarshal([]byte(candidate), &parsed); errRetry != nil {
			return nil, domain.NewUnrecoverableResponseError(errRetry)
		}
	}

	if strings.TrimSpace(parsed.Word) == "" || strings.TrimSpace(parsed.Definition) == "" {
		return nil, domain.NewInvalidFormatError("Word-of-day response is missing word or definition")
	}

	return domain.NewWordOfDayRecord(parsed.Word, parsed.Definition, time.Now()), nil
}

func toWordOfDayDTO(rec *domain.WordOfDayRecord, dateStr, source string) *dto.WordOfDayResponse {
	return &dto.WordOfDayResponse{
		Word:       rec.Word,
		Definition: rec.Definition,
		Date:       dateStr,
		Source:     source,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
	}
}
