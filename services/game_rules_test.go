package services

import (
	"testing"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(i + 1)
	}
	return out
}

func notStartedGame() *models.Game {
	return &models.Game{ID: 1, TeamID: 1, Opponent: "Eagles", Status: models.GameStatusNotStarted}
}

func inProgressGame() *models.Game {
	game := notStartedGame()
	if err := setRoster(game, ids(8)); err != nil {
		panic(err)
	}
	if err := setStartingLineup(game, ids(5)); err != nil {
		panic(err)
	}
	if err := startGame(game, time.Now()); err != nil {
		panic(err)
	}
	return game
}

func TestSetRosterSizeBounds(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"empty", 0, ErrInvalidRosterSize},
		{"four", 4, ErrInvalidRosterSize},
		{"five", 5, nil},
		{"ten", 10, nil},
		{"fifteen", 15, nil},
		{"sixteen", 16, ErrInvalidRosterSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			game := notStartedGame()
			err := setRoster(game, ids(tc.size))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, game.Roster)
			} else {
				require.NoError(t, err)
				assert.Equal(t, ids(tc.size), []uint(game.Roster))
			}
		})
	}
}

func TestSetRosterRejectsDuplicates(t *testing.T) {
	game := notStartedGame()
	err := setRoster(game, []uint{1, 2, 3, 4, 4})
	assert.ErrorIs(t, err, ErrInvalidRosterSize)
}

func TestSetRosterRejectsStartedGame(t *testing.T) {
	game := inProgressGame()
	err := setRoster(game, ids(10))
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSetRosterClearsStaleLineup(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(8)))
	require.NoError(t, setStartingLineup(game, ids(5)))

	require.NoError(t, setRoster(game, []uint{20, 21, 22, 23, 24}))
	assert.Empty(t, game.StartingLineup)
	assert.Empty(t, game.CurrentLineup)
}

func TestSetStartingLineup(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(8)))

	require.NoError(t, setStartingLineup(game, ids(5)))
	assert.Equal(t, ids(5), []uint(game.StartingLineup))
	assert.Equal(t, ids(5), []uint(game.CurrentLineup))
	for _, id := range game.CurrentLineup {
		assert.True(t, containsID(game.Roster, id))
	}
}

func TestSetStartingLineupSize(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(8)))

	assert.ErrorIs(t, setStartingLineup(game, ids(4)), ErrInvalidLineupSize)
	assert.ErrorIs(t, setStartingLineup(game, ids(6)), ErrInvalidLineupSize)
	assert.ErrorIs(t, setStartingLineup(game, []uint{1, 2, 3, 4, 4}), ErrInvalidLineupSize)
}

func TestSetStartingLineupRequiresRosterMembers(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(8)))

	err := setStartingLineup(game, []uint{1, 2, 3, 4, 99})
	assert.ErrorIs(t, err, ErrPlayerNotOnRoster)
	assert.Empty(t, game.StartingLineup)
}

func TestStartGame(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(5)))
	require.NoError(t, setStartingLineup(game, ids(5)))

	now := time.Now()
	require.NoError(t, startGame(game, now))
	assert.Equal(t, models.GameStatusInProgress, game.Status)
	assert.Equal(t, 1, game.CurrentQuarter)
	require.NotNil(t, game.StartedAt)
	assert.Equal(t, now, *game.StartedAt)
}

func TestStartGameRequiresLineup(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(8)))

	assert.ErrorIs(t, startGame(game, time.Now()), ErrInvalidState)
	assert.Equal(t, models.GameStatusNotStarted, game.Status)
}

func TestStartGameTwice(t *testing.T) {
	game := inProgressGame()
	assert.ErrorIs(t, startGame(game, time.Now()), ErrInvalidState)
}

func TestAdvanceQuarter(t *testing.T) {
	game := inProgressGame()
	require.Equal(t, 1, game.CurrentQuarter)

	// Three advances reach the fourth quarter; the fourth attempt is refused
	// and leaves the counter alone.
	for want := 2; want <= 4; want++ {
		require.NoError(t, advanceQuarter(game))
		assert.Equal(t, want, game.CurrentQuarter)
	}
	assert.ErrorIs(t, advanceQuarter(game), ErrQuarterLimitReached)
	assert.Equal(t, 4, game.CurrentQuarter)
}

func TestAdvanceQuarterRequiresInProgress(t *testing.T) {
	game := notStartedGame()
	assert.ErrorIs(t, advanceQuarter(game), ErrInvalidState)

	done := inProgressGame()
	require.NoError(t, completeGame(done, time.Now()))
	assert.ErrorIs(t, advanceQuarter(done), ErrInvalidState)
}

func TestApplySubstitution(t *testing.T) {
	game := inProgressGame()

	require.NoError(t, applySubstitution(game, 3, 7))
	assert.False(t, containsID(game.CurrentLineup, 3))
	assert.True(t, containsID(game.CurrentLineup, 7))
	assert.Len(t, game.CurrentLineup, 5)
}

func TestApplySubstitutionFailures(t *testing.T) {
	cases := []struct {
		name      string
		playerOut uint
		playerIn  uint
		wantErr   error
	}{
		{"out player on bench", 7, 8, ErrPlayerNotOnCourt},
		{"in player not on roster", 1, 99, ErrPlayerNotEligible},
		{"in player already on court", 1, 2, ErrPlayerNotEligible},
		{"self substitution", 1, 1, ErrPlayerNotEligible},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			game := inProgressGame()
			before := append([]uint(nil), game.CurrentLineup...)

			err := applySubstitution(game, tc.playerOut, tc.playerIn)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, before, []uint(game.CurrentLineup))
		})
	}
}

func TestApplySubstitutionRequiresInProgress(t *testing.T) {
	game := notStartedGame()
	require.NoError(t, setRoster(game, ids(8)))
	require.NoError(t, setStartingLineup(game, ids(5)))

	assert.ErrorIs(t, applySubstitution(game, 1, 6), ErrInvalidState)
}

func TestCompleteGame(t *testing.T) {
	game := inProgressGame()
	now := time.Now()

	require.NoError(t, completeGame(game, now))
	assert.Equal(t, models.GameStatusCompleted, game.Status)
	require.NotNil(t, game.CompletedAt)
	assert.Equal(t, now, *game.CompletedAt)

	// Completed is terminal.
	assert.ErrorIs(t, completeGame(game, time.Now()), ErrInvalidState)
	assert.ErrorIs(t, startGame(game, time.Now()), ErrInvalidState)
}

func TestCompleteGameRequiresInProgress(t *testing.T) {
	game := notStartedGame()
	assert.ErrorIs(t, completeGame(game, time.Now()), ErrInvalidState)
}
