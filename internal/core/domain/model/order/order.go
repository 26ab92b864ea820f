package order

import (
	"errors"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoClientInputPending is returned when a client response arrives for an
	// order that has no open information request.
	ErrNoClientInputPending = errors.New("order has no pending client input request")
)

// maxSLAHours bounds the SLA budget an order may carry (30 days).
const maxSLAHours = 720

// PostalDelivery is the optional postal sub-record for orders that are
// additionally dispatched on paper.
type PostalDelivery struct {
	Recipient      string
	Address        string
	TrackingNumber string
}

// Order is the aggregate root for a paid service order moving through the
// document workflow. It owns the order's status, SLA accounting, version
// lock, client-input gate record, and archival flag.
//
// Order follows these invariants:
//   - status is always a member of the closed Status enum and changes only
//     through the guarded transition methods, never by direct assignment
//   - stateEnteredAt is refreshed on every status change and is the sole
//     basis for SLA elapsed-time computation
//   - versionLocked blocks regeneration until an explicit reopen
//   - orders are never hard-deleted; archival is a reversible flag, not a status
//   - can only be created through NewOrder / RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	id            kernel.UUID
	serviceCode   string
	priceAmount   int64 // minor currency units, snapshot taken at payment
	priceCurrency string

	status         Status
	stateEnteredAt time.Time
	pausedAt       *time.Time

	priority      bool
	fastTrack     bool
	versionLocked bool
	archived      bool

	slaHours          int
	regenerationCount int

	clientInput *ClientInputRequest
	postal      *PostalDelivery

	createdAt time.Time
	updatedAt time.Time

	// occVersion backs the optimistic write guard in the repository. It is
	// not a document version.
	occVersion int64

	isConstructed bool
}

// NewOrder creates an order entering the pipeline at Paid. Orders come into
// existence when a payment confirmation arrives, so payment data is part of
// the constructor.
//
// Parameters:
//   - id: unique order identifier
//   - serviceCode: reference to the purchased service
//   - priceAmount/priceCurrency: pricing snapshot from the payment signal
//   - slaHours: time budget per status, within (0, maxSLAHours]
//   - now: the payment confirmation instant
func NewOrder(
	id kernel.UUID,
	serviceCode string,
	priceAmount int64,
	priceCurrency string,
	slaHours int,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:         Paid,
		stateEnteredAt: now,
		createdAt:      now,
		updatedAt:      now,
		occVersion:     1,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setServiceCode(serviceCode),
		o.setPrice(priceAmount, priceCurrency),
		o.setSLAHours(slaHours),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-entering
// the pipeline. The status is validated; all other fields are trusted as
// previously validated on the write path.
func RestoreOrder(
	id kernel.UUID,
	serviceCode string,
	priceAmount int64,
	priceCurrency string,
	status Status,
	stateEnteredAt time.Time,
	pausedAt *time.Time,
	priority bool,
	fastTrack bool,
	versionLocked bool,
	archived bool,
	slaHours int,
	regenerationCount int,
	clientInput *ClientInputRequest,
	postal *PostalDelivery,
	createdAt time.Time,
	updatedAt time.Time,
	occVersion int64,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		serviceCode:       serviceCode,
		priceAmount:       priceAmount,
		priceCurrency:     priceCurrency,
		status:            status,
		stateEnteredAt:    stateEnteredAt,
		pausedAt:          pausedAt,
		priority:          priority,
		fastTrack:         fastTrack,
		versionLocked:     versionLocked,
		archived:          archived,
		slaHours:          slaHours,
		regenerationCount: regenerationCount,
		clientInput:       clientInput,
		postal:            postal,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		occVersion:        occVersion,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence or accepting them across
// a boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ServiceCode returns the purchased service reference.
func (o *Order) ServiceCode() string {
	return o.serviceCode
}

// PriceAmount returns the pricing snapshot in minor currency units.
func (o *Order) PriceAmount() int64 {
	return o.priceAmount
}

// PriceCurrency returns the ISO currency code of the pricing snapshot.
func (o *Order) PriceCurrency() string {
	return o.priceCurrency
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// StateEnteredAt returns when the order entered its current status.
func (o *Order) StateEnteredAt() time.Time {
	return o.stateEnteredAt
}

// PausedAt returns the pause instant while the SLA clock is frozen, nil otherwise.
func (o *Order) PausedAt() *time.Time {
	return o.pausedAt
}

// IsPaused reports whether the SLA clock is currently frozen.
func (o *Order) IsPaused() bool {
	return o.pausedAt != nil
}

// Priority reports whether the order is flagged as priority.
func (o *Order) Priority() bool {
	return o.priority
}

// FastTrack reports whether the order was purchased with fast-track handling.
func (o *Order) FastTrack() bool {
	return o.fastTrack
}

// VersionLocked reports whether document regeneration is blocked by an approval.
func (o *Order) VersionLocked() bool {
	return o.versionLocked
}

// IsArchived reports whether the order is hidden from active list views.
func (o *Order) IsArchived() bool {
	return o.archived
}

// SLAHours returns the order's time budget per status.
func (o *Order) SLAHours() int {
	return o.slaHours
}

// RegenerationCount returns how many correction cycles the order went through.
func (o *Order) RegenerationCount() int {
	return o.regenerationCount
}

// ClientInput returns the current information request, nil when none was made.
func (o *Order) ClientInput() *ClientInputRequest {
	return o.clientInput
}

// Postal returns the postal-delivery sub-record, nil for electronic-only orders.
func (o *Order) Postal() *PostalDelivery {
	return o.postal
}

// CreatedAt returns when the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// OCCVersion returns the optimistic-concurrency counter for the write guard.
func (o *Order) OCCVersion() int64 {
	return o.occVersion
}

// TransitionTo moves the order along the automatic pipeline graph.
//
// On success the status changes, stateEnteredAt is refreshed to now, and
// the SLA clock is paused when the target is ClientInputRequired (entering
// that status freezes accounting immediately) and running otherwise.
//
// Returns InvalidTransitionError if the target is not permitted; the order
// is left unchanged.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// OverrideTo moves the order through the manual-override whitelist,
// independent of the automatic graph. The caller is responsible for the
// mandatory audited reason; the aggregate only guards reachability.
func (o *Order) OverrideTo(target Status, now time.Time) error {
	newStatus, err := o.status.Override(target)
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// Cancel transitions the order to Cancelled. Permitted only
// pre-finalisation. Cancellation is a guarded transition, not a forced
// interrupt: in-flight asynchronous work observes it on its next checkpoint.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// RequestClientInput transitions the order to ClientInputRequired and
// attaches the request record. The SLA clock pauses on entry.
func (o *Order) RequestClientInput(req ClientInputRequest, now time.Time) error {
	if !req.isConstructed {
		return errs.NewValueIsInvalidError("clientInputRequest must be created via NewClientInputRequest")
	}
	if err := o.TransitionTo(ClientInputRequired, now); err != nil {
		return err
	}

	o.clientInput = &req
	return nil
}

// SubmitClientResponse appends a version-tagged response to the open
// information request and returns the order to InternalReview, resuming the
// SLA clock at the response instant so frozen time is never counted.
func (o *Order) SubmitClientResponse(versionTag int, payload map[string]any, now time.Time) error {
	if o.status != ClientInputRequired {
		return errs.NewInvalidTransitionError(o.status.String(), InternalReview.String())
	}
	if o.clientInput == nil {
		return ErrNoClientInputPending
	}

	if err := o.clientInput.addResponse(versionTag, payload, now); err != nil {
		return err
	}

	return o.TransitionTo(InternalReview, now)
}

// RequestRegeneration moves the order into a correction cycle
// (InternalReview → RegenRequested). Rejected with VersionLockedError on
// locked orders: an approved document must be explicitly reopened first.
func (o *Order) RequestRegeneration(now time.Time) error {
	if o.versionLocked {
		return errs.NewVersionLockedError(o.id.String())
	}

	return o.TransitionTo(RegenRequested, now)
}

// IncrementRegenerationCount records one completed correction cycle.
func (o *Order) IncrementRegenerationCount(now time.Time) {
	o.regenerationCount++
	o.touch(now)
}

// LockVersions blocks further document regeneration; invoked when a version
// is approved. Returns VersionLockedError if the order is already locked.
func (o *Order) LockVersions(now time.Time) error {
	if o.versionLocked {
		return errs.NewVersionLockedError(o.id.String())
	}

	o.versionLocked = true
	o.touch(now)
	return nil
}

// ReopenVersions clears the version lock so a new correction cycle may
// start. Admin-only; the caller audits the mandatory reason.
func (o *Order) ReopenVersions(now time.Time) error {
	if !o.versionLocked {
		return errs.NewValueIsInvalidErrorWithCause("versionLocked",
			fmt.Errorf("order %s is not locked", o.id))
	}

	o.versionLocked = false
	o.touch(now)
	return nil
}

// Archive hides the order from active list views. Reversible; never a status.
func (o *Order) Archive(now time.Time) {
	o.archived = true
	o.touch(now)
}

// Unarchive returns the order to active list views.
func (o *Order) Unarchive(now time.Time) {
	o.archived = false
	o.touch(now)
}

// SetPriority updates the priority and fast-track flags.
func (o *Order) SetPriority(priority, fastTrack bool, now time.Time) {
	o.priority = priority
	o.fastTrack = fastTrack
	o.touch(now)
}

// SetPostalDelivery attaches or replaces the postal sub-record.
func (o *Order) SetPostalDelivery(postal PostalDelivery, now time.Time) {
	o.postal = &postal
	o.touch(now)
}

// applyStatus commits a validated status change: refreshes stateEnteredAt
// and synchronizes the SLA pause marker with the new status.
func (o *Order) applyStatus(newStatus Status, now time.Time) {
	o.status = newStatus
	o.stateEnteredAt = now

	if newStatus == ClientInputRequired {
		pausedAt := now
		o.pausedAt = &pausedAt
	} else {
		o.pausedAt = nil
	}

	o.touch(now)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setServiceCode(serviceCode string) error {
	if serviceCode == "" {
		return errs.NewValueIsRequiredError("serviceCode")
	}
	o.serviceCode = serviceCode
	return nil
}

func (o *Order) setPrice(amount int64, currency string) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priceAmount",
			fmt.Errorf("%d is negative", amount))
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("priceCurrency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	o.priceAmount = amount
	o.priceCurrency = currency
	return nil
}

func (o *Order) setSLAHours(slaHours int) error {
	if slaHours <= 0 || slaHours > maxSLAHours {
		return errs.NewValueIsOutOfRangeError("slaHours", slaHours, 1, maxSLAHours)
	}
	o.slaHours = slaHours
	return nil
}
