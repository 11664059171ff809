package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func todayKeyAndSeed(userID string) (string, string) {
	dateStr := time.Now().Format("2006-01-02")
	return cache.WordOfDayKey(userID, dateStr), cache.DailySeed(userID, dateStr)
}

func TestFetchWordOfDay_CacheHit(t *testing.T) {
	key, _ := todayKeyAndSeed("user123")
	cached := domain.NewWordOfDayRecord("ephemeral", "Lasting for a very short time.", time.Now().Add(-time.Hour))
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return(string(payload), nil)
	generator := new(MockTextGenerator)

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	resp := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "ephemeral", resp.Word)
	assert.Equal(t, "Lasting for a very short time.", resp.Definition)
	assert.Equal(t, "cache", resp.Source)
	generator.AssertNotCalled(t, "Generate")
	store.AssertNotCalled(t, "Set")
}

func TestFetchWordOfDay_MissGeneratesAndPersists(t *testing.T) {
	key, _ := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return("", domain.ErrDocumentNotFound)

	var persisted domain.WordOfDayRecord
	store.On("Set", mock.Anything, key, mock.AnythingOfType("string"), domain.WordOfDayTTL).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal([]byte(args.String(2)), &persisted))
		}).
		Return(nil)

	generator := new(MockTextGenerator)
	generator.On("Generate", mock.Anything, mock.AnythingOfType("string"), domain.TierLite).
		Return("```json\n{\"word\": \"luminous\", \"definition\": \"full of light.\"}\n```", nil)

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	resp := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "luminous", resp.Word)
	assert.Equal(t, "full of light.", resp.Definition)
	assert.Equal(t, "generated", resp.Source)

	// Persisted record carries the 7-day advisory expiry.
	assert.Equal(t, "luminous", persisted.Word)
	assert.Equal(t, 7*24*time.Hour, persisted.ExpiresAt.Sub(persisted.CreatedAt))

	store.AssertExpectations(t)
	generator.AssertExpectations(t)
}

func TestFetchWordOfDay_SecondCallHitsCache(t *testing.T) {
	key, _ := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	generator := new(MockTextGenerator)
	generator.On("Generate", mock.Anything, mock.Anything, domain.TierLite).
		Return(`{"word": "arcane", "definition": "understood by few."}`, nil).Once()

	// First call: miss, generate, persist. Wire the stored payload back into
	// the second Get.
	var stored string
	store.On("Get", mock.Anything, key).Return("", domain.ErrDocumentNotFound).Once()
	store.On("Set", mock.Anything, key, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil).Once()

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	first := svc.FetchWordOfDay(context.Background(), "user123")

	store.On("Get", mock.Anything, key).Return(stored, nil).Once()
	second := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, first.Word, second.Word)
	assert.Equal(t, first.Definition, second.Definition)
	assert.Equal(t, "generated", first.Source)
	assert.Equal(t, "cache", second.Source)
	generator.AssertNumberOfCalls(t, "Generate", 1)
}

func TestFetchWordOfDay_GenerationFailureFallsBack(t *testing.T) {
	key, seed := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return("", domain.ErrDocumentNotFound)

	generator := new(MockTextGenerator)
	generator.On("Generate", mock.Anything, mock.Anything, domain.TierLite).
		Return("", domain.NewGenerationFailureError(errors.New("timeout")))

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	resp := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "fallback", resp.Source)
	expected := fallbackWords[cache.FallbackIndex(seed, len(fallbackWords))]
	assert.Equal(t, expected.Word, resp.Word)
	assert.Equal(t, expected.Definition, resp.Definition)
	store.AssertNotCalled(t, "Set")
}

func TestFetchWordOfDay_MalformedGenerationFallsBack(t *testing.T) {
	key, _ := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return("", domain.ErrDocumentNotFound)

	generator := new(MockTextGenerator)
	generator.On("Generate", mock.Anything, mock.Anything, domain.TierLite).
		Return(`{"word": "", "definition": ""}`, nil)

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	resp := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "fallback", resp.Source)
	assert.NotEmpty(t, resp.Word)
	assert.NotEmpty(t, resp.Definition)
	store.AssertNotCalled(t, "Set")
}

func TestFetchWordOfDay_StoreUnreachableFallsBack(t *testing.T) {
	key, seed := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return("", errors.New("connection refused"))
	generator := new(MockTextGenerator)

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)

	// Deterministic across repeated calls, never an error.
	first := svc.FetchWordOfDay(context.Background(), "user123")
	second := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "fallback", first.Source)
	assert.Equal(t, first.Word, second.Word)
	expected := fallbackWords[cache.FallbackIndex(seed, len(fallbackWords))]
	assert.Equal(t, expected.Word, first.Word)
	generator.AssertNotCalled(t, "Generate")
}

func TestFetchWordOfDay_PersistFailureStillReturnsGenerated(t *testing.T) {
	key, _ := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return("", domain.ErrDocumentNotFound)
	store.On("Set", mock.Anything, key, mock.Anything, mock.Anything).
		Return(errors.New("write failed"))

	generator := new(MockTextGenerator)
	generator.On("Generate", mock.Anything, mock.Anything, domain.TierLite).
		Return(`{"word": "steadfast", "definition": "firm and unwavering."}`, nil)

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	resp := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "generated", resp.Source)
	assert.Equal(t, "steadfast", resp.Word)
}

func TestFetchWordOfDay_RecoversObjectFromChatter(t *testing.T) {
	key, _ := todayKeyAndSeed("user123")

	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, key).Return("", domain.ErrDocumentNotFound)
	store.On("Set", mock.Anything, key, mock.Anything, mock.Anything).Return(nil)

	generator := new(MockTextGenerator)
	generator.On("Generate", mock.Anything, mock.Anything, domain.TierLite).
		Return("Here you go! {\"word\": \"lucid\", \"definition\": \"clearly expressed.\",} Have a great day!", nil)

	svc := NewWordOfDayService(store, generator, domain.WordOfDayTTL)
	resp := svc.FetchWordOfDay(context.Background(), "user123")

	assert.Equal(t, "generated", resp.Source)
	assert.Equal(t, "lucid", resp.Word)
}
