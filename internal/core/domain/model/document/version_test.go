package document_test

import (
	"testing"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewDraft(t *testing.T) {
	t.Run("creates an unapproved draft", func(t *testing.T) {
		orderID := kernel.NewUUID()
		files := []document.FileRef{{Name: "contract.pdf", ObjectKey: "o/1/v1/contract.pdf"}}

		v, err := document.NewDraft(kernel.NewUUID(), orderID, 1, files, generatedAt)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.OrderID().IsEqual(orderID))
		assert.Equal(t, 1, v.Number())
		assert.Equal(t, document.Draft, v.Status())
		assert.False(t, v.IsApproved())
		assert.Equal(t, files, v.Files())
		assert.Equal(t, generatedAt, v.GeneratedAt())
	})

	t.Run("rejects non-positive version numbers", func(t *testing.T) {
		_, err := document.NewDraft(kernel.NewUUID(), kernel.NewUUID(), 0, nil, generatedAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		var invalid kernel.UUID
		_, err := document.NewDraft(invalid, kernel.NewUUID(), 1, nil, generatedAt)
		require.Error(t, err)
	})
}

func TestNewRegenerated(t *testing.T) {
	t.Run("carries correction notes and guardrails", func(t *testing.T) {
		v, err := document.NewRegenerated(
			kernel.NewUUID(), kernel.NewUUID(), 2, nil,
			"fix the execution date", []string{"preamble"}, []string{"party names"},
			generatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, document.Regenerated, v.Status())
		assert.Equal(t, "fix the execution date", v.RegenerationNotes())
		assert.Equal(t, []string{"preamble"}, v.AffectedSections())
		assert.Equal(t, []string{"party names"}, v.Guardrails())
	})

	t.Run("requires correction notes", func(t *testing.T) {
		_, err := document.NewRegenerated(
			kernel.NewUUID(), kernel.NewUUID(), 2, nil, "", nil, nil, generatedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVersion_Approve(t *testing.T) {
	t.Run("approves a current draft", func(t *testing.T) {
		v, _ := document.NewDraft(kernel.NewUUID(), kernel.NewUUID(), 1, nil, generatedAt)

		require.NoError(t, v.Approve())

		assert.Equal(t, document.Final, v.Status())
		assert.True(t, v.IsApproved())
	})

	t.Run("approves a regenerated version", func(t *testing.T) {
		v, _ := document.NewRegenerated(
			kernel.NewUUID(), kernel.NewUUID(), 2, nil, "notes", nil, nil, generatedAt)
		require.NoError(t, v.Approve())
		assert.True(t, v.IsApproved())
	})

	t.Run("rejects approval of a superseded version", func(t *testing.T) {
		v, _ := document.NewDraft(kernel.NewUUID(), kernel.NewUUID(), 1, nil, generatedAt)
		v.Supersede()

		err := v.Approve()

		require.ErrorIs(t, err, errs.ErrStaleVersion)
		assert.False(t, v.IsApproved())
	})
}

func TestVersion_Supersede(t *testing.T) {
	t.Run("clears approval and is idempotent", func(t *testing.T) {
		v, _ := document.NewDraft(kernel.NewUUID(), kernel.NewUUID(), 1, nil, generatedAt)
		require.NoError(t, v.Approve())

		v.Supersede()
		v.Supersede()

		assert.Equal(t, document.Superseded, v.Status())
		assert.False(t, v.IsApproved())
	})
}

func TestStatus_IsCurrent(t *testing.T) {
	assert.True(t, document.Draft.IsCurrent())
	assert.True(t, document.Final.IsCurrent())
	assert.True(t, document.Regenerated.IsCurrent())
	assert.False(t, document.Superseded.IsCurrent())
	assert.False(t, document.Unknown.IsCurrent())
}

func TestVersion_Validate(t *testing.T) {
	var v document.Version
	require.ErrorIs(t, v.Validate(), document.ErrVersionIsNotConstructed)
}
