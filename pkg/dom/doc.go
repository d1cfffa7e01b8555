// Package dom provides the minimal live output tree the reconcilers
// mutate: nodes with parent/child links, insert-before and remove
// primitives, and opaque marker nodes that delimit reconciled regions.
//
// It deliberately stops there. Attribute binding, styling, event wiring,
// and HTML rendering live in higher layers; the reconcilers only need a
// mutable ordered tree with stable node identity.
package dom
