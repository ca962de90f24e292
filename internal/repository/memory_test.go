package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_ListsInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	list, err := repo.ListMeetings(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, repo.AddMeeting(ctx, Meeting{Day: "Lunes", Place: "Sala 5"}))
	require.NoError(t, repo.AddMeeting(ctx, Meeting{Day: "Martes", Place: "Online"}))
	require.NoError(t, repo.AddMeeting(ctx, Meeting{Day: "Lunes", Place: "Sala 5"}))

	list, err = repo.ListMeetings(ctx)
	require.NoError(t, err)
	require.Equal(t, []Meeting{
		{Day: "Lunes", Place: "Sala 5"},
		{Day: "Martes", Place: "Online"},
		{Day: "Lunes", Place: "Sala 5"},
	}, list)
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.AddMeeting(ctx, Meeting{Day: "Lunes", Place: "Sala 5"}))

	list, err := repo.ListMeetings(ctx)
	require.NoError(t, err)
	list[0].Place = "changed"

	again, err := repo.ListMeetings(ctx)
	require.NoError(t, err)
	require.Equal(t, "Sala 5", again[0].Place)
}

func TestMemoryRepository_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.AddMeeting(ctx, Meeting{Day: fmt.Sprintf("day-%d", i), Place: "Sala"})
		}(i)
	}
	wg.Wait()

	list, err := repo.ListMeetings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 50)
}
