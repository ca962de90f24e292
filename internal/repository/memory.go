package repository

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	meetings []Meeting
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) AddMeeting(_ context.Context, meeting Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meetings = append(r.meetings, meeting)
	return nil
}

func (r *MemoryRepository) ListMeetings(_ context.Context) ([]Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Meeting, len(r.meetings))
	copy(out, r.meetings)
	return out, nil
}
