package cache

import "strings"

const (
	GlobalKeyPrefix = "lexiquiz"
)

// GenerateCacheKey generates a store key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// WordOfDayKey builds the composite key for one user's word on one calendar
// day. dateStr uses day granularity (YYYY-MM-DD, local time).
func WordOfDayKey(userID, dateStr string) string {
	return GenerateCacheKey("wordofday", "record", userID, dateStr)
}

// DailySeed derives the deterministic seed embedded in the word-of-day prompt.
// The same user and date always produce the same seed.
func DailySeed(userID, dateStr string) string {
	return userID + "-" + dateStr
}

// FallbackIndex maps a seed onto an offline-list slot: the numeric value of
// the seed's first byte modulo the list length.
func FallbackIndex(seed string, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	if seed == "" {
		return 0
	}
	return int(seed[0]) % listLen
}
