package view

import "github.com/cespare/xxhash/v2"

// KeyFunc derives the stable identity key for an item. The returned string
// is hashed, so long composite keys cost nothing to store. Keys must be
// unique within one list; when duplicates occur, the first occurrence wins
// and later ones are dropped from the rendered sequence.
type KeyFunc[T any] func(item T, index int) string

// hashKey maps a derived key string to the uint64 identity the cache is
// keyed by.
func hashKey(s string) uint64 {
	return xxhash.Sum64String(s)
}
