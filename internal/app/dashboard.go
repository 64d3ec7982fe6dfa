package app

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/model"
)

// mostPlayed names the game with the most plays, first in catalog order on
// ties.
func mostPlayed(p model.GameProgress) string {
	best, top := "", 0
	for _, g := range catalog.Games() {
		if n := p[g.ID].Int(model.FieldPlays); n > top {
			best, top = g.Name, n
		}
	}
	if top == 0 {
		return "None yet"
	}
	return fmt.Sprintf("%s (%d plays)", best, top)
}

// bestPerformance picks the strongest showing: the best win rate when any
// game records wins, otherwise a per-game score.
func bestPerformance(p model.GameProgress) string {
	var line string
	var metric float64

	for _, g := range catalog.Games() {
		st := p[g.ID]
		wins, plays := st.Int(model.FieldWins), st.Int(model.FieldPlays)
		if wins == 0 || plays == 0 {
			continue
		}
		if rate := float64(wins) / float64(plays); rate > metric {
			metric = rate
			line = fmt.Sprintf("%s (%.0f%% win rate)", g.Name, math.Round(rate*100))
		}
	}
	if line != "" {
		return line
	}

	for _, g := range catalog.Games() {
		st := p[g.ID]
		switch g.ID {
		case catalog.ReactionSpeed:
			if t := st.Int(model.FieldBestTime); t > 0 {
				if m := math.Max(0, 100-float64(t)/5); m > metric {
					metric = m
					line = fmt.Sprintf("%s (%.0f%% speed)", g.Name, math.Round(m))
				}
			}
		case catalog.MemoryMatch:
			if lvl := st.Int(model.FieldLevel); lvl > 0 {
				if m := float64(lvl * 25); m > metric {
					metric = m
					line = fmt.Sprintf("%s (Level %d)", g.Name, lvl)
				}
			}
		case catalog.TriviaQuiz:
			if b := st.Int(model.FieldBestScore); b > 0 {
				if m := float64(b * 20); m > metric {
					metric = m
					line = fmt.Sprintf("%s (Best Score %d)", g.Name, b)
				}
			}
		}
	}
	if line == "" {
		return "No competitive games played yet"
	}
	return line
}
