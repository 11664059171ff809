package domain

import "time"

// WordOfDayTTL is the advisory lifetime written into every record. Expiry is
// metadata only; the pipeline never enforces it on reads.
const WordOfDayTTL = 7 * 24 * time.Hour

// WordOfDayRecord is one user's word for one calendar day. Records are created
// on first request, read-only afterward, and never deleted by this subsystem.
type WordOfDayRecord struct {
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// NewWordOfDayRecord stamps a freshly generated word with its lifecycle times.
func NewWordOfDayRecord(word, definition string, now time.Time) *WordOfDayRecord {
	return &WordOfDayRecord{
		Word:       word,
		Definition: definition,
		CreatedAt:  now,
		ExpiresAt:  now.Add(WordOfDayTTL),
	}
}
