package document

import (
	"errors"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
)

var (
	// ErrVersionIsNotConstructed is returned when a Version instance was not
	// created through one of the factory methods.
	ErrVersionIsNotConstructed = errors.New("Version must be created via NewDraft, NewRegenerated, or RestoreVersion")
)

// FileRef points at a rendered artifact in object storage.
type FileRef struct {
	Name        string
	ObjectKey   string
	ContentType string
	SizeBytes   int64
}

// Version is a single rendered document version of an order. Versions are
// numbered monotonically per order; producing version N+1 supersedes
// version N without deleting it.
//
// Invariants:
//   - at most one version per order is approved at any time
//   - a Superseded version never becomes current again
//   - approval targets only the latest non-superseded version (enforced by
//     the approving use case via the repository's latest-version lookup)
type Version struct {
	id       kernel.UUID
	orderID  kernel.UUID
	number   int
	status   Status
	approved bool

	files []FileRef

	regenerationNotes string
	affectedSections  []string
	guardrails        []string

	generatedAt time.Time

	isConstructed bool
}

// NewDraft creates version `number` of an order as a fresh Draft.
func NewDraft(id, orderID kernel.UUID, number int, files []FileRef, now time.Time) (*Version, error) {
	return newVersion(id, orderID, number, Draft, files, "", nil, nil, now)
}

// NewRegenerated creates version `number` of an order as the product of a
// correction cycle, carrying the correction notes, the sections the
// reviewer flagged, and the guardrails the regeneration had to preserve.
func NewRegenerated(
	id, orderID kernel.UUID,
	number int,
	files []FileRef,
	regenerationNotes string,
	affectedSections []string,
	guardrails []string,
	now time.Time,
) (*Version, error) {
	if regenerationNotes == "" {
		return nil, errs.NewValueIsRequiredError("regenerationNotes")
	}
	return newVersion(id, orderID, number, Regenerated, files, regenerationNotes, affectedSections, guardrails, now)
}

func newVersion(
	id, orderID kernel.UUID,
	number int,
	status Status,
	files []FileRef,
	regenerationNotes string,
	affectedSections []string,
	guardrails []string,
	now time.Time,
) (*Version, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version number",
			fmt.Errorf("%d is not greater than 0", number))
	}

	return &Version{
		id:                id,
		orderID:           orderID,
		number:            number,
		status:            status,
		files:             append([]FileRef(nil), files...),
		regenerationNotes: regenerationNotes,
		affectedSections:  append([]string(nil), affectedSections...),
		guardrails:        append([]string(nil), guardrails...),
		generatedAt:       now,
		isConstructed:     true,
	}, nil
}

// RestoreVersion reconstructs a version from persistence.
func RestoreVersion(
	id, orderID kernel.UUID,
	number int,
	status Status,
	approved bool,
	files []FileRef,
	regenerationNotes string,
	affectedSections []string,
	guardrails []string,
	generatedAt time.Time,
) (*Version, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Version{
		id:                id,
		orderID:           orderID,
		number:            number,
		status:            status,
		approved:          approved,
		files:             append([]FileRef(nil), files...),
		regenerationNotes: regenerationNotes,
		affectedSections:  append([]string(nil), affectedSections...),
		guardrails:        append([]string(nil), guardrails...),
		generatedAt:       generatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Version instance was properly constructed.
func (v *Version) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVersionIsNotConstructed
	}
	return nil
}

// ID returns the version's unique identifier.
func (v *Version) ID() kernel.UUID {
	return v.id
}

// OrderID returns the owning order's identifier.
func (v *Version) OrderID() kernel.UUID {
	return v.orderID
}

// Number returns the monotonically increasing version number within the order.
func (v *Version) Number() int {
	return v.number
}

// Status returns the version's lifecycle status.
func (v *Version) Status() Status {
	return v.status
}

// IsApproved reports whether this version carries the order's approval.
func (v *Version) IsApproved() bool {
	return v.approved
}

// Files returns the rendered artifact references.
func (v *Version) Files() []FileRef {
	return append([]FileRef(nil), v.files...)
}

// RegenerationNotes returns the correction notes for Regenerated versions.
func (v *Version) RegenerationNotes() string {
	return v.regenerationNotes
}

// AffectedSections returns the sections flagged for correction.
func (v *Version) AffectedSections() []string {
	return append([]string(nil), v.affectedSections...)
}

// Guardrails returns the content constraints the regeneration had to preserve.
func (v *Version) Guardrails() []string {
	return append([]string(nil), v.guardrails...)
}

// GeneratedAt returns when the version was produced.
func (v *Version) GeneratedAt() time.Time {
	return v.generatedAt
}

// Approve marks the version as the order's Final, approved document.
// Only a current (non-superseded) version can be approved.
func (v *Version) Approve() error {
	if !v.status.IsCurrent() {
		return errs.NewStaleVersionError(v.number, v.number)
	}

	v.status = Final
	v.approved = true
	return nil
}

// AttachFiles records the rendered artifacts once the engine reports back.
// Regenerated versions are created before their rendering completes, so
// their files arrive through this method.
func (v *Version) AttachFiles(files []FileRef) {
	v.files = append([]FileRef(nil), files...)
}

// Supersede marks the version as replaced by a newer one and clears any
// approval it carried. Superseding is idempotent and never deletes.
func (v *Version) Supersede() {
	v.status = Superseded
	v.approved = false
}
