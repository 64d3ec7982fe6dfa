// Package dispatch executes resolved intents against the hosting
// application: it speaks a reply and, after a short delay, navigates,
// closes or reloads.
package dispatch

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/gameverse/internal/catalog"
	"github.com/blackwell-systems/gameverse/internal/clock"
	"github.com/blackwell-systems/gameverse/internal/intent"
)

// Host is the application surface commands act on.
type Host interface {
	Navigate(path string)
	SetTheme(dark bool)
	Close()
	Reload()
	ClearChat()
	Mute()
}

// Responder shows or speaks an assistant reply.
type Responder interface {
	Respond(text string)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(text string)

func (f ResponderFunc) Respond(text string) { f(text) }

// CoinReader reports the player's coin total.
type CoinReader interface {
	TotalCoins() int
}

// Delays between the reply and the follow-up action.
type Delays struct {
	Navigate time.Duration
	Close    time.Duration
	Reply    time.Duration
}

// DefaultDelays match the chat window's pacing.
var DefaultDelays = Delays{
	Navigate: time.Second,
	Close:    1500 * time.Millisecond,
	Reply:    500 * time.Millisecond,
}

// Reply describes what a dispatch did.
type Reply struct {
	Text string
	// Path is the route the host will be sent to, if any.
	Path string
}

// Dispatcher executes intents. Follow-up actions are scheduled on the
// clock and can be cancelled with Stop.
type Dispatcher struct {
	host      Host
	responder Responder
	clock     clock.Clock
	coins     CoinReader
	delays    Delays
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[int]clock.Timer
	seq     int
	stopped bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the clock follow-up actions are scheduled on.
func WithClock(c clock.Clock) Option { return func(d *Dispatcher) { d.clock = c } }

// WithCoins supplies the coin total for the coins query.
func WithCoins(c CoinReader) Option { return func(d *Dispatcher) { d.coins = c } }

// WithDelays overrides DefaultDelays.
func WithDelays(delays Delays) Option { return func(d *Dispatcher) { d.delays = delays } }

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a Dispatcher.
func New(host Host, responder Responder, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		host:      host,
		responder: responder,
		clock:     clock.Real{},
		delays:    DefaultDelays,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		pending:   make(map[int]clock.Timer),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RoutePath maps a route id to its path; home is the root.
func RoutePath(route string) string {
	if route == intent.RouteHome {
		return "/"
	}
	return "/" + route
}

// GamePath is the path of a game's page.
func GamePath(gameID string) string {
	return "/games/" + gameID
}

// Dispatch carries out in and returns the reply it produced.
func (d *Dispatcher) Dispatch(in intent.Intent) Reply {
	d.logger.Debug("dispatching intent", "kind", in.Kind, "target", in.Target, "setting", in.Setting, "query", in.Query)

	switch in.Kind {
	case intent.Navigate:
		return d.navigate(fmt.Sprintf("Taking you to %s...", catalog.DisplayName(in.Target)), RoutePath(in.Target))

	case intent.PlayGame:
		return d.navigate(fmt.Sprintf("Opening %s...", catalog.DisplayName(in.Target)), GamePath(in.Target))

	case intent.Close:
		d.respond(in.Reply)
		d.after(d.delays.Close, d.host.Close)
		return Reply{Text: in.Reply}

	case intent.SettingsChange:
		return d.setting(in)

	case intent.Query:
		return d.query(in)
	}

	// Help and unknown carry their text.
	d.respond(in.Reply)
	return Reply{Text: in.Reply}
}

func (d *Dispatcher) navigate(text, path string) Reply {
	d.respond(text)
	d.after(d.delays.Navigate, func() { d.host.Navigate(path) })
	return Reply{Text: text, Path: path}
}

func (d *Dispatcher) setting(in intent.Intent) Reply {
	switch in.Setting {
	case intent.SettingThemeDark:
		d.host.SetTheme(true)
	case intent.SettingThemeLight:
		d.host.SetTheme(false)
	case intent.SettingMute:
		d.host.Mute()
	case intent.SettingClearChat:
		d.host.ClearChat()
	case intent.SettingReload:
		d.respond(in.Reply)
		d.after(d.delays.Navigate, d.host.Reload)
		return Reply{Text: in.Reply}
	}
	d.respond(in.Reply)
	return Reply{Text: in.Reply}
}

func (d *Dispatcher) query(in intent.Intent) Reply {
	switch in.Query {
	case intent.QueryTime:
		now := d.clock.Now()
		text := fmt.Sprintf("The current time is %s and today is %s.", now.Format("3:04:05 PM"), now.Format("Monday, January 2, 2006"))
		d.respond(text)
		return Reply{Text: text}

	case intent.QueryCoins:
		text := fmt.Sprintf("Taking you to %s...", catalog.DisplayName(intent.RouteDashboard))
		if d.coins != nil {
			text = fmt.Sprintf("You have %s coins. %s", humanize.Comma(int64(d.coins.TotalCoins())), text)
		}
		return d.navigate(text, RoutePath(intent.RouteDashboard))
	}
	d.respond(in.Reply)
	return Reply{Text: in.Reply}
}

func (d *Dispatcher) respond(text string) {
	if text == "" || d.responder == nil {
		return
	}
	d.after(d.delays.Reply, func() { d.responder.Respond(text) })
}

// after runs fn once delay has passed, or immediately for a zero delay.
func (d *Dispatcher) after(delay time.Duration, fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if delay <= 0 {
		d.mu.Unlock()
		fn()
		return
	}
	d.seq++
	id := d.seq
	d.pending[id] = d.clock.AfterFunc(delay, func() {
		d.mu.Lock()
		_, live := d.pending[id]
		delete(d.pending, id)
		d.mu.Unlock()
		if live {
			fn()
		}
	})
	d.mu.Unlock()
}

// Pending returns the number of scheduled follow-ups.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every scheduled reply and action. Later dispatches do
// nothing.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for id, t := range d.pending {
		t.Stop()
		delete(d.pending, id)
	}
}
