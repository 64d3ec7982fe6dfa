package output

import (
	"os"
	"testing"
	"time"
)

func TestProgressBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 10, 10, "░░░░░░░░░░ 0/10"},
		{3, 10, 10, "███░░░░░░░ 3/10"},
		{10, 10, 10, "██████████ 10/10"},
		{12, 10, 5, "█████ 12/10"},
		{1, 0, 4, "░░░░ 1/0"},
	}
	for _, tc := range tests {
		if got := ProgressBar(tc.done, tc.total, tc.width); got != tc.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tc.done, tc.total, tc.width, got, tc.want)
		}
	}
	if got := ProgressBar(0, 101, 0); visualLen(got) != 20+len(" 0/101") {
		t.Errorf("default width not applied: %q", got)
	}
}

func TestCoins(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := Coins(12500); got != "12,500 coins" {
		t.Errorf("Coins(12500) = %q", got)
	}
	if got := Coins(0); got != "0 coins" {
		t.Errorf("Coins(0) = %q", got)
	}
}

func TestUntil(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	got := Until(now.Add(9*time.Hour), now)
	if got != "9 hours from now" {
		t.Errorf("Until() = %q", got)
	}
}

func TestCheck(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)
	if Check(true) != "✓" || Check(false) != "·" {
		t.Errorf("unexpected markers %q %q", Check(true), Check(false))
	}
}

func TestAutoColor_NonTerminal(t *testing.T) {
	defer SetNoColor(false)

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	AutoColor(f, true)
	if !IsNoColor() {
		t.Error("expected color disabled for a regular file")
	}
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
}
