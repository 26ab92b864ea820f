package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
)

// AddNoteCommandHandler appends a note to the audit trail. The order itself
// is read only to confirm it exists; notes never mutate order state.
type AddNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddNoteCommandHandler creates a handler for note recording.
func NewAddNoteCommandHandler(uowFactory OrderUoWFactory) AddNoteCommandHandler {
	return AddNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-note command.
func (h AddNoteCommandHandler) Handle(ctx context.Context, cmd AddNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		event, err := audit.NewActionEvent(
			aggregate.ID(), cmd.Actor(), "note_added", "", cmd.Note(), cmd.VersionRef(), now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
}
