package board

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// randomLane picks any lane, occasionally the wrong one for the task
func randomLane(r *rand.Rand) models.Lane {
	lanes := models.Lanes()
	return lanes[r.Intn(len(lanes))]
}

// randomKnownID picks an id that exists or existed, or a bogus one
func randomKnownID(r *rand.Rand, known []types.TaskID) types.TaskID {
	if len(known) == 0 || r.Intn(10) == 0 {
		return "does-not-exist"
	}
	return known[r.Intn(len(known))]
}

// TestProperty_RandomSequences drives the store with random operations and
// checks the ownership invariant, move semantics and the save/load law
// after every step.
func TestProperty_RandomSequences(t *testing.T) {
	ctx := context.Background()

	for seed := int64(1); seed <= 25; seed++ {
		r := rand.New(rand.NewSource(seed))
		kv := database.NewMemoryStore()
		s := NewStore(database.NewBoardPersister(kv))
		s.Load(ctx)

		var known []types.TaskID
		created := 0
		deleted := 0

		for step := 0; step < 150; step++ {
			switch r.Intn(5) {
			case 0, 1:
				title := []string{"", "  ", "Buy milk", "Fix bug", "Write docs"}[r.Intn(5)]
				task, err := s.Create(ctx, randomLane(r), title, "d")
				if err == nil {
					known = append(known, task.ID)
					created++
				} else {
					assert.ErrorIs(t, err, ErrEmptyTitle)
				}
			case 2:
				_, err := s.Update(ctx, randomKnownID(r, known), randomLane(r), "Renamed", "")
				require.NoError(t, err)
			case 3:
				changed, err := s.Delete(ctx, randomKnownID(r, known), randomLane(r))
				require.NoError(t, err)
				if changed {
					deleted++
				}
			case 4:
				id := randomKnownID(r, known)
				from, to := randomLane(r), randomLane(r)
				before := s.Counts()
				changed, err := s.Move(ctx, id, from, to)
				require.NoError(t, err)

				after := s.Counts()
				if changed {
					require.NotEqual(t, from, to)
					assert.Equal(t, before[from]-1, after[from])
					assert.Equal(t, before[to]+1, after[to])
					dest := s.Tasks(to)
					assert.Equal(t, id, dest[len(dest)-1].ID, "moved task must be last in destination")
				} else {
					assert.Equal(t, before, after)
				}
			}

			snap := s.Snapshot()
			require.NoError(t, snap.Validate(), "seed %d step %d", seed, step)
			require.Equal(t, created-deleted, snap.Len(), "seed %d step %d", seed, step)
		}

		// Save then Load reproduces the board
		reloaded := NewStore(database.NewBoardPersister(kv))
		require.Equal(t, LoadedFromStorage, reloaded.Load(ctx))
		assert.Equal(t, s.Snapshot(), reloaded.Snapshot(), "seed %d", seed)
	}
}
