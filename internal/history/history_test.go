package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/domain"
)

func TestUndoEmpty(t *testing.T) {
	h := New()

	assert.False(t, h.CanUndo())
	_, err := h.Undo()
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestUndoReturnsMostRecent(t *testing.T) {
	h := New()

	h.SaveState(domain.Snapshot{
		Entity:  domain.EntityTypeContact,
		Action:  domain.ActionTypeUpdate,
		Contact: &domain.Contact{ID: 1, FirstName: "Eski"},
	})
	h.SaveState(domain.Snapshot{
		Entity:  domain.EntityTypeContact,
		Action:  domain.ActionTypeDelete,
		Contact: &domain.Contact{ID: 2},
	})

	require.True(t, h.CanUndo())

	snap, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, domain.ActionTypeDelete, snap.Action)
	assert.Equal(t, int64(2), snap.Contact.ID)

	snap, err = h.Undo()
	require.NoError(t, err)
	assert.Equal(t, domain.ActionTypeUpdate, snap.Action)
	assert.Equal(t, "Eski", snap.Contact.FirstName)

	assert.False(t, h.CanUndo())
	_, err = h.Undo()
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestSnapshotIsolation(t *testing.T) {
	h := New()

	live := &domain.Contact{ID: 5, FirstName: "Önce"}
	h.SaveState(domain.Snapshot{
		Entity:  domain.EntityTypeContact,
		Action:  domain.ActionTypeUpdate,
		Contact: live.Clone(),
	})

	live.FirstName = "Sonra"

	snap, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, "Önce", snap.Contact.FirstName, "snapshots do not alias live entities")
}
