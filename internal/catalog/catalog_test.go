package catalog

import (
	"testing"

	"github.com/blackwell-systems/gameverse/internal/model"
)

func TestBadges_UniqueIDsAndKnownGames(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Badges() {
		if b.ID == "" {
			t.Fatalf("badge with empty id: %+v", b)
		}
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true

		if b.Game != AllGames {
			if _, ok := LookupGame(b.Game); !ok {
				t.Errorf("badge %q references unknown game %q", b.ID, b.Game)
			}
		}
		if b.Unlocked || b.UnlockedAt != nil {
			t.Errorf("catalog badge %q must start locked", b.ID)
		}
	}
	if len(seen) != 101 {
		t.Errorf("expected 101 badges, got %d", len(seen))
	}
}

func TestBadges_ReturnsCopy(t *testing.T) {
	a := Badges()
	a[0].Unlocked = true
	if Badges()[0].Unlocked {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestChallengeTemplates_PositiveRewards(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range ChallengeTemplates() {
		if c.RewardCoins <= 0 {
			t.Errorf("challenge %q has non-positive reward %d", c.ID, c.RewardCoins)
		}
		if seen[c.ID] {
			t.Errorf("duplicate challenge id %q", c.ID)
		}
		seen[c.ID] = true
		if !c.ExpiresAt.IsZero() || c.Completed {
			t.Errorf("template %q must not carry generation state", c.ID)
		}
	}
	if len(seen) != 23 {
		t.Errorf("expected 23 challenges, got %d", len(seen))
	}
}

func TestDefaultProgress_AllGamesZeroed(t *testing.T) {
	p := DefaultProgress()
	if len(p) != len(Games()) {
		t.Fatalf("expected %d games, got %d", len(Games()), len(p))
	}
	if got := p[MemoryMatch][model.FieldLevel]; got != 1 {
		t.Errorf("memory-match should start at level 1, got %v", got)
	}
	if _, ok := p[RockPaperScissors].Get(model.FieldStreak); !ok {
		t.Error("rock-paper-scissors should carry a streak field")
	}
	for id, st := range p {
		for field, v := range st {
			if !model.IsKnownField(field) {
				t.Errorf("%s: unknown default field %q", id, field)
			}
			if field != model.FieldLevel && v != 0 {
				t.Errorf("%s.%s should default to 0, got %v", id, field, v)
			}
		}
	}
}

func TestIsLowerBetter(t *testing.T) {
	tests := []struct {
		game, field string
		want        bool
	}{
		{NumberGuess, model.FieldBestScore, true},
		{TriviaQuiz, model.FieldBestScore, false},
		{GridPuzzle, model.FieldBestTime, true},
		{ReactionSpeed, model.FieldBestTime, true},
		{"unknown", model.FieldBestTime, false},
	}
	for _, tt := range tests {
		if got := IsLowerBetter(tt.game, tt.field); got != tt.want {
			t.Errorf("IsLowerBetter(%q, %q) = %v, want %v", tt.game, tt.field, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"daily-challenges":    "Daily Challenges",
		"rock-paper-scissors": "Rock Paper Scissors",
		"home":                "Home",
		"":                    "",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
	for _, g := range Games() {
		if got := DisplayName(g.ID); got != g.Name {
			t.Errorf("DisplayName(%q) = %q, want game name %q", g.ID, got, g.Name)
		}
	}
}
