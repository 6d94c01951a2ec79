package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_Lifecycle(t *testing.T) {
	created := time.Date(2025, 12, 23, 10, 0, 0, 0, time.FixedZone("EST", -5*3600))
	f := New(created)

	assert.Equal(t, created.UTC(), f.CreatedAt)
	assert.Equal(t, f.CreatedAt, f.UpdatedAt)
	assert.False(t, f.IsDeleted)
	assert.Nil(t, f.DeletedAt)

	later := created.Add(time.Hour)
	f.Touch(later)
	assert.Equal(t, later.UTC(), f.UpdatedAt)
	assert.Equal(t, created.UTC(), f.CreatedAt)

	deleted := later.Add(time.Hour)
	f.MarkDeleted(deleted)
	assert.True(t, f.IsDeleted)
	require.NotNil(t, f.DeletedAt)
	assert.Equal(t, deleted.UTC(), *f.DeletedAt)
	assert.Equal(t, deleted.UTC(), f.UpdatedAt)
}
