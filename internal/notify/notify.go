// Package notify turns progress events into desktop notifications.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/blackwell-systems/gameverse/internal/progress"
)

// Notification is one desktop message.
type Notification struct {
	Title   string
	Message string
}

// FromEvent builds the notification for a store event. Only unlocks,
// completions and refreshes are worth interrupting the user for.
func FromEvent(ev progress.Event) (Notification, bool) {
	switch ev.Kind {
	case progress.BadgeUnlocked:
		return Notification{Title: "Badge Unlocked", Message: ev.Title}, true
	case progress.ChallengeCompleted:
		return Notification{
			Title:   "Challenge Complete",
			Message: fmt.Sprintf("%s (+%d coins)", ev.Title, ev.Coins),
		}, true
	case progress.ChallengesRefreshed:
		return Notification{Title: "New Daily Challenges", Message: "A fresh set of daily challenges is ready."}, true
	}
	return Notification{}, false
}

// Notifier delivers notifications. On macOS it uses osascript, on Linux it
// tries notify-send. If neither works it prints to the fallback writer.
type Notifier struct {
	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
	fallback io.Writer
	logger   *slog.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithFallback sets where notifications go when no desktop system works.
func WithFallback(w io.Writer) Option { return func(n *Notifier) { n.fallback = w } }

// WithLogger sets the logger for delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// New returns a Notifier for the running platform.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		fallback: os.Stderr,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify sends n.
func (n *Notifier) Notify(msg Notification) error {
	switch n.goos {
	case "darwin":
		return n.notifyMacOS(msg)
	case "linux":
		return n.notifyLinux(msg)
	default:
		return n.notifyFallback(msg)
	}
}

// Listener returns a store subscriber that notifies for notable events.
func (n *Notifier) Listener() func(progress.Event) {
	return func(ev progress.Event) {
		msg, ok := FromEvent(ev)
		if !ok {
			return
		}
		if err := n.Notify(msg); err != nil {
			n.logger.Warn("desktop notification failed", "event", string(ev.Kind), "error", err)
		}
	}
}

func (n *Notifier) notifyMacOS(msg Notification) error {
	script := fmt.Sprintf(
		`display notification %q with title "GameVerse" subtitle %q`,
		msg.Message, msg.Title,
	)
	if err := n.run("osascript", "-e", script); err != nil {
		return n.notifyFallback(msg)
	}
	return nil
}

func (n *Notifier) notifyLinux(msg Notification) error {
	if _, err := n.lookPath("notify-send"); err != nil {
		return n.notifyFallback(msg)
	}
	title := fmt.Sprintf("GameVerse: %s", msg.Title)
	if err := n.run("notify-send", title, msg.Message); err != nil {
		return n.notifyFallback(msg)
	}
	return nil
}

func (n *Notifier) notifyFallback(msg Notification) error {
	_, err := fmt.Fprintf(n.fallback, "[gameverse] %s: %s\n", msg.Title, msg.Message)
	return err
}
