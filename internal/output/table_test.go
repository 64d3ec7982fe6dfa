package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLines(t *testing.T, tbl *Table) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
}

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"plain", "Coin Drive", 10},
		{"bold", "\x1b[1mTriple Victory\x1b[0m", 14},
		{"stacked sequences", "\x1b[1m\x1b[32m✓\x1b[0m", 1},
		{"multibyte", "███░░", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, visualLen(tt.input))
		})
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "dice      ", pad("dice", 10))
	assert.Equal(t, "      dice", padLeft("dice", 10))
	assert.Equal(t, "card-battle", pad("card-battle", 4))
	assert.Equal(t, "card-battle", padLeft("card-battle", 4))
	assert.Equal(t, "\x1b[32m✓\x1b[0m  ", pad("\x1b[32m✓\x1b[0m", 3))
}

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Badge", "Game")
	tbl.AddRow("RPS Novice", "rock-paper-scissors")
	tbl.AddRow("Memory Novice", "memory-match")

	lines := renderLines(t, tbl)
	require.Len(t, lines, 4)
	assert.Equal(t, "Badge          Game               ", lines[0])
	assert.Equal(t, strings.Repeat("─", 13)+"  "+strings.Repeat("─", 19), lines[1])
	assert.Equal(t, "RPS Novice     rock-paper-scissors", lines[2])
	assert.Equal(t, "Memory Novice  memory-match       ", lines[3])
	assert.Equal(t, tbl.Render(), tbl.String())
}

func TestTable_NoHeaders(t *testing.T) {
	tbl := NewTable()
	tbl.AddRow("ignored")
	assert.Empty(t, tbl.Render())
}

func TestTable_RowShape(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Challenge", "Game", "Reward")
	tbl.AddRow("Lucky Roller")
	tbl.AddRow("Coin Drive", "idle-clicker", "25 coins", "extra")

	lines := renderLines(t, tbl)
	require.Len(t, lines, 4)
	assert.Equal(t, "Lucky Roller                        ", lines[2])
	assert.NotContains(t, lines[3], "extra")
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_AlignRight(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Challenge", "Reward").AlignRight(1)
	tbl.AddRow("Triple Victory", "50 coins")
	tbl.AddRow("Badge Hunter", "75 coins")
	tbl.AddRow("Master Completionist", "100 coins")

	lines := renderLines(t, tbl)
	require.Len(t, lines, 5)
	assert.Equal(t, "Challenge                Reward", lines[0])
	assert.Equal(t, "Triple Victory         50 coins", lines[2])
	assert.Equal(t, "Master Completionist  100 coins", lines[4])
}

func TestTable_Limit(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Badge").Limit(2)
	for _, title := range []string{"RPS Novice", "RPS Intermediate", "RPS Expert", "RPS Master"} {
		tbl.AddRow(title)
	}

	lines := renderLines(t, tbl)
	require.Len(t, lines, 5)
	assert.Equal(t, "RPS Intermediate", lines[3])
	assert.Equal(t, "... and 2 more", lines[4])
	assert.Equal(t, 4, tbl.Len())

	// Widths only count the rows that are shown.
	assert.Equal(t, 16, visualLen(lines[0]))
}

func TestTable_StyledCellsAlign(t *testing.T) {
	tbl := NewTable("Done", "Title")
	tbl.AddRow("\x1b[32m✓\x1b[0m", "RPS Champion")
	tbl.AddRow("·", "Lucky Guess")

	lines := renderLines(t, tbl)
	require.Len(t, lines, 4)
	assert.Equal(t, visualLen(lines[2]), visualLen(lines[3]))
}

func TestTable_Fprint(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Coins")
	tbl.AddRow("12,500")

	var buf bytes.Buffer
	require.NoError(t, tbl.Fprint(&buf))
	assert.Equal(t, tbl.Render(), buf.String())
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	assert.True(t, IsNoColor())
	assert.NotContains(t, StyleHeader.Render("Badges"), "\x1b[")

	SetNoColor(false)
	assert.False(t, IsNoColor())
}
