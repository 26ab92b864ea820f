package audit_test

import (
	"testing"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewTransitionEvent(t *testing.T) {
	t.Run("records the envelope and the transition payload", func(t *testing.T) {
		orderID := kernel.NewUUID()

		e, err := audit.NewTransitionEvent(
			orderID, audit.SystemActor,
			order.InternalReview, order.Finalising,
			"review approved", "", nil, eventAt)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		require.NoError(t, e.ExecutionID().Validate())
		assert.True(t, e.OrderID().IsEqual(orderID))
		assert.Equal(t, audit.SystemActor, e.Actor())
		assert.Equal(t, audit.KindTransition, e.Kind())
		assert.Equal(t, order.InternalReview, e.FromStatus())
		assert.Equal(t, order.Finalising, e.ToStatus())
		assert.Equal(t, "review approved", e.Reason())
		assert.Equal(t, eventAt, e.Timestamp())
		assert.False(t, e.IsOverride())
	})

	t.Run("requires an actor", func(t *testing.T) {
		_, err := audit.NewTransitionEvent(
			kernel.NewUUID(), "",
			order.Paid, order.Queued, "", "", nil, eventAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("copies the version reference", func(t *testing.T) {
		ref := 3

		e, err := audit.NewTransitionEvent(
			kernel.NewUUID(), "reviewer-1",
			order.InternalReview, order.RegenRequested,
			"typo in preamble", "", &ref, eventAt)

		require.NoError(t, err)
		ref = 99
		require.NotNil(t, e.VersionRef())
		assert.Equal(t, 3, *e.VersionRef())
	})
}

func TestNewOverrideTransitionEvent(t *testing.T) {
	t.Run("prefixes the verbatim reason", func(t *testing.T) {
		e, err := audit.NewOverrideTransitionEvent(
			kernel.NewUUID(), "ops-lead",
			order.DeliveryFailed, order.Delivering,
			"client confirmed a fresh delivery address", "", eventAt)

		require.NoError(t, err)
		assert.Equal(t, audit.OverridePrefix+"client confirmed a fresh delivery address", e.Reason())
		assert.True(t, e.IsOverride())
	})

	t.Run("requires a reason", func(t *testing.T) {
		_, err := audit.NewOverrideTransitionEvent(
			kernel.NewUUID(), "ops-lead",
			order.Failed, order.Queued, "", "", eventAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewActionEvent(t *testing.T) {
	t.Run("records a non-transition action", func(t *testing.T) {
		ref := 2

		e, err := audit.NewActionEvent(
			kernel.NewUUID(), "reviewer-1",
			"note_added", "", "checked against the registry extract", &ref, eventAt)

		require.NoError(t, err)
		assert.Equal(t, audit.KindAction, e.Kind())
		assert.Equal(t, "note_added", e.Action())
		assert.Equal(t, "checked against the registry extract", e.Notes())
		assert.Equal(t, 2, *e.VersionRef())
		assert.False(t, e.IsOverride())
	})

	t.Run("requires an action name", func(t *testing.T) {
		_, err := audit.NewActionEvent(
			kernel.NewUUID(), "reviewer-1", "", "", "", nil, eventAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreEvent(t *testing.T) {
	t.Run("round-trips an override transition", func(t *testing.T) {
		executionID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		e, err := audit.RestoreEvent(
			executionID, orderID, "ops-lead", audit.KindTransition,
			order.DeliveryFailed, order.Completed,
			"", audit.OverridePrefix+"courier confirmed hand-off by phone", "",
			nil, eventAt)

		require.NoError(t, err)
		assert.True(t, e.ExecutionID().IsEqual(executionID))
		assert.True(t, e.IsOverride())
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		_, err := audit.RestoreEvent(
			kernel.NewUUID(), kernel.NewUUID(), "x", audit.KindUnknown,
			order.Unknown, order.Unknown, "", "", "", nil, eventAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Transition", audit.KindTransition.String())
	assert.Equal(t, "Action", audit.KindAction.String())
	assert.Equal(t, "Unknown", audit.KindUnknown.String())
	require.NoError(t, audit.KindAction.Validate())
	require.ErrorIs(t, audit.KindUnknown.Validate(), errs.ErrValueIsInvalid)
}

func TestEvent_Validate(t *testing.T) {
	var e audit.Event
	require.ErrorIs(t, e.Validate(), audit.ErrEventIsNotConstructed)
}
