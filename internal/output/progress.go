package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ProgressBar renders done out of total as a bar.
// Example: "████████░░ 8/10"
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case total > 0 && done >= total:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case filled*2 >= width:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleMuted.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/%d", done, total)))
}

// Check renders a completion marker.
func Check(done bool) string {
	if done {
		return StyleSuccess.Render("✓")
	}
	return StyleMuted.Render("·")
}

// Coins formats a coin amount with thousands separators.
func Coins(n int) string {
	return StyleCoins.Render(humanize.Comma(int64(n)) + " coins")
}

// Until describes t relative to now, such as "5 hours from now".
func Until(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
