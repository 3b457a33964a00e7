package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeekIndex(t *testing.T) {
	games := Normalize([]Game{
		{Season: 2014, Date: "2014-09-14", TeamA: "Joe", TeamB: "Zook", ScoreA: 1, ScoreB: 2},
		{Season: 2014, Date: "2014-09-07", TeamA: "Joe", TeamB: "Ann", ScoreA: 1, ScoreB: 2},
		// double-header: same date as the Zook game
		{Season: 2014, Date: "2014-09-14", TeamA: "Joe", TeamB: "Bo", ScoreA: 3, ScoreB: 2},
		{Season: 2014, Date: "2014-09-21", TeamA: "Joe", TeamB: "Ann", ScoreA: 5, ScoreB: 2},
		{Season: 2015, Date: "2015-09-13", TeamA: "Joe", TeamB: "Ann", ScoreA: 5, ScoreB: 2},
	})
	idx := BuildWeekIndex(games)

	week := func(id int, team string) int {
		w, ok := idx.Week(id, team)
		require.True(t, ok)
		return w
	}

	assert.Equal(t, 2, week(0, "Joe"))
	assert.Equal(t, 1, week(1, "Joe"))
	assert.Equal(t, 2, week(2, "Joe"), "same date reuses the week")
	assert.Equal(t, 3, week(3, "Joe"))
	assert.Equal(t, 1, week(4, "Joe"), "weeks restart each season")

	// Zook only played once, so the game is its week 1.
	assert.Equal(t, 1, week(0, "Zook"))
	assert.Equal(t, 2, week(3, "Ann"))

	assert.Equal(t, 3, idx.Max())
	assert.Equal(t, []int{1, 2, 3}, idx.Universe())

	_, ok := idx.Week(0, "Nobody")
	assert.False(t, ok)
}

func TestAnnotate(t *testing.T) {
	games := Normalize([]Game{
		{Season: 2022, Date: "2022-09-11", TeamA: "Joe", TeamB: "Zook", ScoreA: 1, ScoreB: 2},
		{Season: 2022, Date: "2022-09-18", TeamA: "Zook", TeamB: "Joe", ScoreA: 1, ScoreB: 2},
	})
	BuildWeekIndex(games).Annotate(games)

	w, ok := games[1].WeekFor("Joe")
	require.True(t, ok)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, games[1].WeekA)

	_, ok = games[1].WeekFor("Ann")
	assert.False(t, ok)
}

func TestEmptyWeekIndex(t *testing.T) {
	idx := BuildWeekIndex(nil)
	assert.Equal(t, 0, idx.Max())
	assert.Empty(t, idx.Universe())
}
