// Package audit provides the append-only audit event model. Every mutating
// operation in the workflow appends exactly one event; events are never
// updated or deleted, and queries return them in chronological order per
// order. Transition events and free-form action events share one envelope
// with an explicit kind discriminant.
package audit
