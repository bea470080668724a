// Package routelog contains the RouteLog aggregate root: one custody leg of a
// vehicle, bounded by a start event and a closure event.
//
// A RouteLog is created Active and closes exactly once, either as Finished
// (vehicle returns to the pool) or as Transferred (custody handed to the next
// driver, who gets a fresh Active leg). Closed legs are immutable; the only
// append-friendly field is the end-image list, which merges rather than
// replaces so multi-step uploads before the true closure are not lost.
package routelog
