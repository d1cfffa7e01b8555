// Package view contains Filament's list reconcilers.
//
// For renders a keyed list into a region of the output tree. Across
// re-runs it keeps one cache entry per key: node identity for a surviving
// key never changes, only its position and its reactive index. Reordering
// is minimal-move, driven by a longest-increasing-subsequence pass over
// the old ranks.
//
// Index renders a positional list: one slot per index with a reactive
// value cell. Slots are appended on growth and truncated on shrink; a
// slot's nodes never move, even when item identities shift. That is the
// trade-off against For.
//
// Both reconcilers wrap their region in an effect, so the region re-runs
// whenever the tracked source read changes, and tear down with the owner
// scope they were created in.
package view
