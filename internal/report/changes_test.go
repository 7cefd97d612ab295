package report

import (
	"testing"

	"github.com/lepinkainen/paupercube/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareNames(t *testing.T) {
	previous := []NameRow{
		{CardName: "Ponder", Count: 2},
		{CardName: "Brainstorm", Count: 1},
		{CardName: "Preordain", Count: 3},
	}
	current := []NameRow{
		{CardName: "Ponder", Count: 2},
		{CardName: "Preordain", Count: 1},
		{CardName: "Kor Skyfisher", Count: 4},
		{CardName: "Counterspell", Count: 1},
	}

	changes := CompareNames(previous, current)

	assert.Equal(t, []string{"Counterspell", "Kor Skyfisher"}, changes.Added)
	assert.Equal(t, []string{"Brainstorm"}, changes.Removed)
	assert.Equal(t, []CountChange{{CardName: "Preordain", Before: 3, After: 1}}, changes.Counts)
	assert.False(t, changes.Empty())
}

func TestCompareNames_Unchanged(t *testing.T) {
	rows := []NameRow{{CardName: "Ponder", Count: 2}}
	assert.True(t, CompareNames(rows, rows).Empty())
}

func TestReadNameCSV(t *testing.T) {
	env := testutil.NewTestEnv(t)
	rows := []NameRow{
		{CardName: "Fire // Ice", Count: 2, Sets: "Apocalypse Dominaria Remastered", ManaCost: "{1}{R} // {1}{U}", TypeLine: "Instant // Instant"},
		{CardName: "Kaervek, the Spiteful", Count: 1, Sets: "Mirage", ManaCost: "{B}{B}{B}", TypeLine: "Legendary Creature"},
	}
	require.NoError(t, WriteNameCSV(env.Path("names.csv"), rows))

	got, err := ReadNameCSV(env.Path("names.csv"))
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadNameCSV_BadCount(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("names.csv", "Card Name,Occurrence Count,Sets,Mana Cost,Type Line\nPonder,two,Lorwyn,{U},Sorcery\n")

	_, err := ReadNameCSV(env.Path("names.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad occurrence count")
}
