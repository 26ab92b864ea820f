package queries

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"
)

// PipelineSnapshot is the eventually-consistent read model behind the
// pipeline overview. Refresh runs on a schedule (and once at boot); reads
// are served from memory so the overview never competes with writers.
type PipelineSnapshot struct {
	db *gorm.DB

	mu          sync.RWMutex
	counts      []GetPipelineQueryResponse
	refreshedAt time.Time
}

// NewPipelineSnapshot creates an empty snapshot over the given database.
func NewPipelineSnapshot(db *gorm.DB) *PipelineSnapshot {
	return &PipelineSnapshot{db: db}
}

// Refresh recomputes the per-status counts from the database.
func (s *PipelineSnapshot) Refresh(ctx context.Context) error {
	counts := make([]GetPipelineQueryResponse, 0)

	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE archived = false
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var count GetPipelineQueryResponse
		if err = rows.Scan(&count.Status, &count.Count); err != nil {
			return err
		}
		counts = append(counts, count)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.counts = counts
	s.refreshedAt = time.Now().UTC()
	s.mu.Unlock()

	return nil
}

// Counts returns the snapshot's per-status counts and when they were taken.
func (s *PipelineSnapshot) Counts() ([]GetPipelineQueryResponse, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]GetPipelineQueryResponse(nil), s.counts...), s.refreshedAt
}
