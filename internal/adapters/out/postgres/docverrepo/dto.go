// Package docverrepo provides data transfer objects and mapping functions for
// document version persistence. Versions are append-mostly rows: added once,
// later updated only to flip approval or superseding state, never deleted.
package docverrepo

import (
	"encoding/json"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VersionDTO represents the database structure for persisting document
// versions. Artifact references and the regeneration string lists are stored
// as jsonb documents; (order_id, number) is unique per order.
type VersionDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index:idx_document_versions_order_number,unique"`
	Number  int       `gorm:"index:idx_document_versions_order_number,unique"`

	Status   string
	Approved bool

	Files []byte `gorm:"type:jsonb"`

	RegenerationNotes string
	AffectedSections  []byte `gorm:"type:jsonb"`
	Guardrails        []byte `gorm:"type:jsonb"`

	GeneratedAt time.Time
}

// TableName specifies the database table name for document versions.
func (VersionDTO) TableName() string {
	return "document_versions"
}

// fileJSON is the jsonb layout of one artifact reference. The keys match the
// read-side projection so queries can unmarshal the column directly.
type fileJSON struct {
	Name        string `json:"name"`
	ObjectKey   string `json:"object_key"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// fromDomain converts a document version to its database representation.
func fromDomain(version *document.Version) (VersionDTO, error) {
	files := make([]fileJSON, 0, len(version.Files()))
	for _, f := range version.Files() {
		files = append(files, fileJSON{
			Name:        f.Name,
			ObjectKey:   f.ObjectKey,
			ContentType: f.ContentType,
			SizeBytes:   f.SizeBytes,
		})
	}

	rawFiles, err := json.Marshal(files)
	if err != nil {
		return VersionDTO{}, err
	}

	rawSections, err := json.Marshal(version.AffectedSections())
	if err != nil {
		return VersionDTO{}, err
	}

	rawGuardrails, err := json.Marshal(version.Guardrails())
	if err != nil {
		return VersionDTO{}, err
	}

	return VersionDTO{
		ID:                version.ID().Bytes(),
		OrderID:           version.OrderID().Bytes(),
		Number:            version.Number(),
		Status:            version.Status().String(),
		Approved:          version.IsApproved(),
		Files:             rawFiles,
		RegenerationNotes: version.RegenerationNotes(),
		AffectedSections:  rawSections,
		Guardrails:        rawGuardrails,
		GeneratedAt:       version.GeneratedAt(),
	}, nil
}

// toDomain converts a database DTO to a document version using RestoreVersion.
func toDomain(dto VersionDTO) (*document.Version, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := document.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var rawFiles []fileJSON
	if len(dto.Files) > 0 {
		if err = json.Unmarshal(dto.Files, &rawFiles); err != nil {
			return nil, err
		}
	}

	files := make([]document.FileRef, 0, len(rawFiles))
	for _, f := range rawFiles {
		files = append(files, document.FileRef{
			Name:        f.Name,
			ObjectKey:   f.ObjectKey,
			ContentType: f.ContentType,
			SizeBytes:   f.SizeBytes,
		})
	}

	var affectedSections []string
	if len(dto.AffectedSections) > 0 {
		if err = json.Unmarshal(dto.AffectedSections, &affectedSections); err != nil {
			return nil, err
		}
	}

	var guardrails []string
	if len(dto.Guardrails) > 0 {
		if err = json.Unmarshal(dto.Guardrails, &guardrails); err != nil {
			return nil, err
		}
	}

	return document.RestoreVersion(
		id,
		orderID,
		dto.Number,
		status,
		dto.Approved,
		files,
		dto.RegenerationNotes,
		affectedSections,
		guardrails,
		dto.GeneratedAt,
	)
}
