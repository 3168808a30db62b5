package kv

import "context"

// MemorySlot keeps the blob in memory. Used in tests and as the fallback
// when no cart file is configured.
type MemorySlot struct {
	data []byte
	set  bool

	// FailSave, when non-nil, is returned by every Save call. Tests use
	// it to exercise the swallow-persist-failures contract.
	FailSave error
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load returns the stored blob, or ErrNotFound before the first save.
func (s *MemorySlot) Load(_ context.Context) ([]byte, error) {
	if !s.set {
		return nil, ErrNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Save stores a copy of data.
func (s *MemorySlot) Save(_ context.Context, data []byte) error {
	if s.FailSave != nil {
		return s.FailSave
	}
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}
