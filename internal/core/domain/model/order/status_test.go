package order_test

import (
	"testing"

	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("all named statuses are valid", func(t *testing.T) {
		statuses := []order.Status{
			order.Created, order.Paid, order.Queued, order.InProgress,
			order.DraftReady, order.InternalReview, order.RegenRequested,
			order.Regenerating, order.ClientInputRequired, order.Finalising,
			order.Delivering, order.Completed, order.DeliveryFailed,
			order.Failed, order.Cancelled,
		}
		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range values are invalid", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(99).Validate())
		assert.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "InternalReview", order.InternalReview.String())
	assert.Equal(t, "ClientInputRequired", order.ClientInputRequired.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{order.Paid, order.Delivering, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transition(t *testing.T) {
	t.Run("follows the automatic pipeline path", func(t *testing.T) {
		path := []order.Status{
			order.Paid, order.Queued, order.InProgress, order.DraftReady,
			order.InternalReview, order.Finalising, order.Delivering, order.Completed,
		}
		current := order.Created
		for _, next := range path {
			var err error
			current, err = current.Transition(next)
			require.NoError(t, err, "to %s", next)
		}
		assert.Equal(t, order.Completed, current)
	})

	t.Run("review branches to regeneration and client input", func(t *testing.T) {
		_, err := order.InternalReview.Transition(order.RegenRequested)
		require.NoError(t, err)
		_, err = order.InternalReview.Transition(order.ClientInputRequired)
		require.NoError(t, err)
		_, err = order.Regenerating.Transition(order.InternalReview)
		require.NoError(t, err)
		_, err = order.ClientInputRequired.Transition(order.InternalReview)
		require.NoError(t, err)
	})

	t.Run("delivery error branch", func(t *testing.T) {
		_, err := order.Delivering.Transition(order.DeliveryFailed)
		require.NoError(t, err)
	})

	t.Run("any non-terminal status may fail irrecoverably", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Queued, order.InProgress, order.Regenerating,
			order.Finalising, order.Delivering, order.DeliveryFailed,
		} {
			_, err := s.Transition(order.Failed)
			require.NoError(t, err, "from %s", s)
		}
	})

	t.Run("terminal statuses cannot fail", func(t *testing.T) {
		_, err := order.Completed.Transition(order.Failed)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = order.Cancelled.Transition(order.Failed)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejects transitions outside the graph", func(t *testing.T) {
		cases := []struct{ from, to order.Status }{
			{order.Paid, order.InternalReview},
			{order.Queued, order.Completed},
			{order.Completed, order.Queued},
			{order.DeliveryFailed, order.Completed}, // override-only
			{order.Failed, order.Queued},            // override-only
		}
		for _, tc := range cases {
			_, err := tc.from.Transition(tc.to)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	})
}

func TestStatus_Override(t *testing.T) {
	t.Run("whitelist entries are permitted", func(t *testing.T) {
		cases := []struct{ from, to order.Status }{
			{order.Failed, order.Queued},
			{order.Failed, order.InProgress},
			{order.DeliveryFailed, order.Finalising},
			{order.DeliveryFailed, order.Delivering},
			{order.DeliveryFailed, order.Completed},
			{order.ClientInputRequired, order.InternalReview},
			{order.RegenRequested, order.InternalReview},
		}
		for _, tc := range cases {
			got, err := tc.from.Override(tc.to)
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, got)
		}
	})

	t.Run("whitelist is independent of the automatic graph", func(t *testing.T) {
		// Automatic transitions are not implicitly overridable.
		_, err := order.Paid.Override(order.Queued)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.InternalReview.Override(order.Finalising)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pre-finalisation statuses can cancel", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created, order.Paid, order.Queued, order.InProgress,
			order.DraftReady, order.InternalReview, order.RegenRequested,
			order.Regenerating, order.ClientInputRequired, order.Failed,
		} {
			got, err := s.Cancel()
			require.NoError(t, err, "from %s", s)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("finalisation and beyond reject cancellation", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Finalising, order.Delivering, order.Completed,
			order.DeliveryFailed, order.Cancelled,
		} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Failed.IsTerminal())
	assert.False(t, order.DeliveryFailed.IsTerminal())
}
