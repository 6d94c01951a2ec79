// Package audit holds the bookkeeping columns shared by every persisted entity.
package audit

import "time"

// Fields is embedded into persisted entities. Rows are never hard-deleted:
// removal flips IsDeleted and stamps DeletedAt, and readers filter them out.
type Fields struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// New returns Fields for a row created at now.
func New(now time.Time) Fields {
	now = now.UTC()
	return Fields{CreatedAt: now, UpdatedAt: now}
}

// Touch records a modification.
func (f *Fields) Touch(now time.Time) {
	f.UpdatedAt = now.UTC()
}

// MarkDeleted converts a delete into a soft delete.
func (f *Fields) MarkDeleted(now time.Time) {
	now = now.UTC()
	f.IsDeleted = true
	f.DeletedAt = &now
	f.UpdatedAt = now
}
