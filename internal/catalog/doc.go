// Package catalog derives what Shelf shows from a search result set.
//
// Everything here is a pure function of its inputs: Visible filters a result
// set by committed Criteria, the format helpers turn optional record fields
// into display text with fixed fallbacks, and Detail is the two-state
// machine behind the detail overlay. Nothing is cached; callers recompute
// on every render.
package catalog
