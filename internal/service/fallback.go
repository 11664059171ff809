package service

import (
	"time"

	"lexiquiz/internal/cache"
	"lexiquiz/internal/domain"
)

// fallbackEntry is one fixed offline word/definition pair.
type fallbackEntry struct {
	Word       string
	Definition string
}

// fallbackWords is the offline list used when generation and the store are
// both unavailable. Order matters: the seed selects an entry by index.
var fallbackWords = []fallbackEntry{
	{"serendipity", "The occurrence of happy or beneficial events by chance."},
	{"resilient", "Able to recover quickly from difficulties or setbacks."},
	{"eloquent", "Fluent and persuasive in speaking or writing."},
	{"meticulous", "Showing great attention to detail; very careful."},
	{"candid", "Truthful and straightforward; frank."},
	{"tenacious", "Holding firmly to a purpose; persistent."},
	{"pragmatic", "Dealing with things sensibly and realistically."},
	{"ubiquitous", "Present, appearing, or found everywhere."},
	{"ephemeral", "Lasting for a very short time."},
	{"diligent", "Showing steady, earnest effort in work or duties."},
	{"benevolent", "Well meaning and kindly."},
	{"arduous", "Involving strenuous effort; difficult and tiring."},
}

// fallbackWordOfDay deterministically selects an offline entry from the seed.
// Fallback records are never persisted to the store.
func fallbackWordOfDay(seed string, now time.Time) *domain.WordOfDayRecord {
	entry := fallbackWords[cache.FallbackIndex(seed, len(fallbackWords))]
	return &domain.WordOfDayRecord{
		Word:       entry.Word,
		Definition: entry.Definition,
		CreatedAt:  now,
		ExpiresAt:  now.Add(domain.WordOfDayTTL),
	}
}
