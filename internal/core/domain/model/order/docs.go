// Package order provides domain entities and business logic for the order
// lifecycle in the docflow system. It implements the Order aggregate root
// with guarded state transitions, SLA accounting, and the client-input gate.
//
// The package includes:
//   - Order: the aggregate root owning status, SLA clock, version lock,
//     client-input record, postal sub-record, and archival flag
//   - Status: a state machine with a data-driven automatic pipeline graph
//     and a separate manual-override whitelist
//   - ClientInputRequest: the outbound request for missing information and
//     its version-tagged responses
//
// Key business rules:
//   - status changes only through the guarded transition methods, and every
//     change refreshes the state-entry timestamp that drives the SLA clock
//   - the SLA clock pauses on entry to ClientInputRequired and resumes at
//     the response instant, so time spent waiting on the client is never
//     counted against the SLA
//   - a version lock set by an approval blocks regeneration until an
//     explicit reopen
//   - cancellation is possible only pre-finalisation and is itself a guarded
//     transition, never a forced interrupt of in-flight work
//   - orders are never hard-deleted; archival is a reversible flag
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
