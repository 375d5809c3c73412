// Package view derives the projections rendered by every screen of the
// dashboard from a task snapshot and the current filter selection.
//
// Every function is pure: the input slice is never modified and results are
// rebuilt from scratch on each call. Input tasks are expected to be
// normalized (see model.Normalize), which the service layer guarantees for
// every snapshot read from the store.
package view
