package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	require.NoError(t, err)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	// Nothing written until the first mutation
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.CreateEvent(ctx, &model.Event{ID: "evt-1", Name: "Adoption Event", Location: "Midtown", Urgency: model.UrgencyMedium, Date: "2025-10-13"}))
	require.NoError(t, s.SaveVolunteer(ctx, &model.Volunteer{ID: "vol-1", Name: "Alex Kim", Location: "Midtown", Skills: []string{"Dog Walking"}}))
	require.NoError(t, s.InsertAssignment(ctx, &model.Assignment{ID: "asg-1", VolunteerID: "vol-1", EventID: "evt-1", Hours: 2}))
	require.NoError(t, s.AddHistory(ctx, &model.HistoryEntry{VolunteerID: "vol-1", Date: "2025-10-13", Event: "Adoption Event", Hours: 2}))
	require.NoError(t, s.Close(ctx))

	reopened, err := Open(path)
	require.NoError(t, err)

	event, err := reopened.Event(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "Adoption Event", event.Name)

	assigned, err := reopened.IsAssigned(ctx, "vol-1", "evt-1")
	require.NoError(t, err)
	assert.True(t, assigned)

	history, err := reopened.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	// Sequence resumes past persisted entries
	next := &model.HistoryEntry{VolunteerID: "vol-1", Date: "2025-10-14", Event: "Cleanup", Hours: 1}
	require.NoError(t, reopened.AddHistory(ctx, next))
	assert.Equal(t, int64(2), next.ID)
}

func TestSoftDeletePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.CreateEvent(ctx, &model.Event{ID: "evt-1", Name: "Cleanup", Location: "Shelter", Urgency: model.UrgencyLow, Date: "2025-10-13"}))
	require.NoError(t, s.SoftDeleteEvent(ctx, "evt-1"))

	reopened, err := Open(path)
	require.NoError(t, err)
	_, err = reopened.Event(ctx, "evt-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestConcurrentMutationsPersistEverything(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	require.NoError(t, err)

	// Concurrent writers must not leave a stale snapshot on disk: the
	// blob on disk after the last rename has to carry every record
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				a := &model.Assignment{
					ID:          fmt.Sprintf("asg-%d-%d", g, i),
					VolunteerID: fmt.Sprintf("vol-%d-%d", g, i),
					EventID:     "evt-1",
				}
				assert.NoError(t, s.InsertAssignment(ctx, a))
			}
		}(g)
	}
	wg.Wait()

	reopened, err := Open(path)
	require.NoError(t, err)
	count, err := reopened.CountAssigned(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, 80, count)
}

func TestSeedIfEmptyWritesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SeedIfEmpty(ctx))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
