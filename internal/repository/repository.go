package repository

import "context"

// MeetingRepository stores meetings in insertion order. Meetings are never
// updated or removed.
type MeetingRepository interface {
	AddMeeting(ctx context.Context, meeting Meeting) error
	ListMeetings(ctx context.Context) ([]Meeting, error)
}
