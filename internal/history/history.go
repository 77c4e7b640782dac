// Package history keeps per-session undo state. One stack per session, no
// sharing across logins; the controller owns its History explicitly instead
// of reaching for hidden shared state.
package history

import "contactdesk/internal/domain"

// History stores pre-mutation snapshots. Only the most recent mutation is
// reachable: pushing twice buries the first snapshot until the second is
// undone.
type History struct {
	stack []domain.Snapshot
}

func New() *History {
	return &History{}
}

// SaveState pushes a snapshot taken just before a mutation is applied.
func (h *History) SaveState(snapshot domain.Snapshot) {
	h.stack = append(h.stack, snapshot)
}

// Undo pops and returns the most recent snapshot. It never restores
// anything itself; the caller re-persists through the storage boundary.
func (h *History) Undo() (domain.Snapshot, error) {
	if len(h.stack) == 0 {
		return domain.Snapshot{}, domain.ErrNothingToUndo
	}
	last := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return last, nil
}

func (h *History) CanUndo() bool {
	return len(h.stack) > 0
}
