// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// exactly one audit append per mutation, and a single retry of the optimistic
// write on a lost concurrency race.
package commands

import (
	"context"

	"docflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for commands that touch only the order
	// aggregate and its audit trail (status transitions, flags, notes).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across the order aggregate, its document
	// versions and the audit trail. Used by the generation, approval and
	// delivery commands that must write all three atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
		AuditRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
