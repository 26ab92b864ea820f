package order_test

import (
	"testing"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "svc-translation", 14900, "EUR", 48, testNow)
	require.NoError(t, err)
	return o
}

// advanceTo walks an order along the automatic pipeline to the target status.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	path := map[order.Status][]order.Status{
		order.Queued:         {order.Queued},
		order.InProgress:     {order.Queued, order.InProgress},
		order.DraftReady:     {order.Queued, order.InProgress, order.DraftReady},
		order.InternalReview: {order.Queued, order.InProgress, order.DraftReady, order.InternalReview},
		order.Finalising: {
			order.Queued, order.InProgress, order.DraftReady, order.InternalReview, order.Finalising,
		},
		order.Delivering: {
			order.Queued, order.InProgress, order.DraftReady, order.InternalReview,
			order.Finalising, order.Delivering,
		},
	}
	for _, next := range path[target] {
		require.NoError(t, o.TransitionTo(next, testNow))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order entering the pipeline at Paid", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, "svc-translation", 14900, "EUR", 48, testNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, testNow, o.StateEnteredAt())
		assert.Equal(t, 48, o.SLAHours())
		assert.Equal(t, int64(14900), o.PriceAmount())
		assert.Equal(t, "EUR", o.PriceCurrency())
		assert.False(t, o.VersionLocked())
		assert.False(t, o.IsArchived())
		assert.False(t, o.IsPaused())
		assert.Zero(t, o.RegenerationCount())
		assert.Equal(t, int64(1), o.OCCVersion())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID
		o, err := order.NewOrder(invalidID, "svc", 100, "EUR", 48, testNow)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty service code", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", 100, "EUR", 48, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed currency", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "svc", 100, "EURO", 48, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with out-of-range SLA budget", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "svc", 100, "EUR", 0, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewOrder(kernel.NewUUID(), "svc", 100, "EUR", 1000, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("refreshes state entry timestamp on every change", func(t *testing.T) {
		o := newTestOrder(t)
		later := testNow.Add(2 * time.Hour)

		require.NoError(t, o.TransitionTo(order.Queued, later))

		assert.Equal(t, order.Queued, o.Status())
		assert.Equal(t, later, o.StateEnteredAt())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("leaves the order unchanged on a rejected transition", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.StateEnteredAt()

		err := o.TransitionTo(order.Completed, testNow.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, before, o.StateEnteredAt())
	})

	t.Run("entering ClientInputRequired pauses the SLA clock", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.InternalReview)
		pauseAt := testNow.Add(4 * time.Hour)

		require.NoError(t, o.TransitionTo(order.ClientInputRequired, pauseAt))

		require.True(t, o.IsPaused())
		assert.Equal(t, pauseAt, *o.PausedAt())
	})
}

func TestOrder_OverrideTo(t *testing.T) {
	t.Run("permits whitelisted recovery from Failed", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.InProgress)
		require.NoError(t, o.TransitionTo(order.Failed, testNow))

		err := o.OverrideTo(order.Queued, testNow.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.Queued, o.Status())
	})

	t.Run("rejects targets outside the whitelist", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.OverrideTo(order.Completed, testNow)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels a pre-finalisation order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(testNow.Add(time.Minute)))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("rejects cancellation from Finalising onwards", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Finalising)

		err := o.Cancel(testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Finalising, o.Status())
	})
}

func TestOrder_ClientInputGate(t *testing.T) {
	requestInput := func(t *testing.T, o *order.Order, at time.Time) {
		t.Helper()
		req, err := order.NewClientInputRequest(
			"need passport scan", []string{"passport"}, 14, "reviewer@example.com", at)
		require.NoError(t, err)
		require.NoError(t, o.RequestClientInput(req, at))
	}

	t.Run("request attaches record and pauses", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.InternalReview)
		at := testNow.Add(time.Hour)

		requestInput(t, o, at)

		assert.Equal(t, order.ClientInputRequired, o.Status())
		require.NotNil(t, o.ClientInput())
		assert.Equal(t, "need passport scan", o.ClientInput().RequestNotes())
		assert.Equal(t, []string{"passport"}, o.ClientInput().RequestedFields())
		assert.True(t, o.IsPaused())
	})

	t.Run("request is rejected outside review", func(t *testing.T) {
		o := newTestOrder(t)
		req, err := order.NewClientInputRequest("notes", nil, 7, "reviewer", testNow)
		require.NoError(t, err)

		require.ErrorIs(t, o.RequestClientInput(req, testNow), errs.ErrInvalidTransition)
		assert.Nil(t, o.ClientInput())
	})

	t.Run("response returns the order to review and resumes the clock", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.InternalReview)
		requestInput(t, o, testNow.Add(time.Hour))
		respondAt := testNow.Add(4 * time.Hour)

		err := o.SubmitClientResponse(1, map[string]any{"passport": "scan.pdf"}, respondAt)

		require.NoError(t, err)
		assert.Equal(t, order.InternalReview, o.Status())
		assert.False(t, o.IsPaused())
		assert.Equal(t, respondAt, o.StateEnteredAt())
		responses := o.ClientInput().Responses()
		require.Len(t, responses, 1)
		assert.Equal(t, 1, responses[0].Version)
		assert.Equal(t, respondAt, responses[0].SubmittedAt)
	})

	t.Run("response without a pending request is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.SubmitClientResponse(1, map[string]any{"k": "v"}, testNow)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_RequestRegeneration(t *testing.T) {
	t.Run("moves a reviewed order into a correction cycle", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.InternalReview)

		require.NoError(t, o.RequestRegeneration(testNow))
		assert.Equal(t, order.RegenRequested, o.Status())
	})

	t.Run("rejected on locked orders", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.InternalReview)
		require.NoError(t, o.LockVersions(testNow))

		err := o.RequestRegeneration(testNow)

		require.ErrorIs(t, err, errs.ErrVersionLocked)
		assert.Equal(t, order.InternalReview, o.Status())
	})
}

func TestOrder_VersionLock(t *testing.T) {
	t.Run("lock and reopen", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.LockVersions(testNow))
		assert.True(t, o.VersionLocked())

		require.ErrorIs(t, o.LockVersions(testNow), errs.ErrVersionLocked)

		require.NoError(t, o.ReopenVersions(testNow))
		assert.False(t, o.VersionLocked())
	})

	t.Run("reopen requires a locked order", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.ReopenVersions(testNow), errs.ErrValueIsInvalid)
	})
}

func TestOrder_Flags(t *testing.T) {
	t.Run("archive is reversible and not a status", func(t *testing.T) {
		o := newTestOrder(t)

		o.Archive(testNow)
		assert.True(t, o.IsArchived())
		assert.Equal(t, order.Paid, o.Status())

		o.Unarchive(testNow)
		assert.False(t, o.IsArchived())
	})

	t.Run("priority flags", func(t *testing.T) {
		o := newTestOrder(t)
		o.SetPriority(true, true, testNow)
		assert.True(t, o.Priority())
		assert.True(t, o.FastTrack())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips through restore", func(t *testing.T) {
		pausedAt := testNow.Add(time.Hour)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "svc-translation", 14900, "EUR",
			order.ClientInputRequired, testNow, &pausedAt,
			true, false, false, false, 48, 2,
			nil, &order.PostalDelivery{Recipient: "J. Doe", Address: "1 Main St"},
			testNow, testNow, 7,
		)

		require.NoError(t, err)
		assert.Equal(t, order.ClientInputRequired, o.Status())
		assert.True(t, o.IsPaused())
		assert.Equal(t, 2, o.RegenerationCount())
		assert.Equal(t, int64(7), o.OCCVersion())
		require.NotNil(t, o.Postal())
		assert.Equal(t, "J. Doe", o.Postal().Recipient)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "svc", 100, "EUR",
			order.Status(99), testNow, nil,
			false, false, false, false, 48, 0,
			nil, nil, testNow, testNow, 1,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewClientInputRequest(t *testing.T) {
	t.Run("validates mandatory fields", func(t *testing.T) {
		_, err := order.NewClientInputRequest("", nil, 7, "reviewer", testNow)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewClientInputRequest("notes", nil, 7, "", testNow)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewClientInputRequest("notes", nil, 0, "reviewer", testNow)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewClientInputRequest("notes", nil, 90, "reviewer", testNow)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("deadline derives from request instant", func(t *testing.T) {
		req, err := order.NewClientInputRequest("notes", nil, 14, "reviewer", testNow)
		require.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 14), req.Deadline())
	})
}
