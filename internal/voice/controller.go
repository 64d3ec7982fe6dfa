package voice

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/gameverse/internal/clock"
	"github.com/blackwell-systems/gameverse/internal/intent"
)

// Speech holds synthesis parameters.
type Speech struct {
	Rate   float64
	Pitch  float64
	Volume float64
}

// DefaultSpeech matches the assistant's default voice.
var DefaultSpeech = Speech{Rate: 1, Pitch: 1, Volume: 1}

// Status is a snapshot of the controller state.
type Status struct {
	SessionID          string
	Supported          bool
	Mode               Mode
	Permission         Permission
	ConsecutiveErrors  int
	NeedsManualRestart bool
	Speaking           bool
	// RestartAt is the pending background restart, zero when none.
	RestartAt time.Time
}

// Controller owns the background wake-word recognizer, the foreground
// command recognizer and the restart timer. Only one recognizer listens at
// a time and at most one restart is pending.
type Controller struct {
	factory  RecognizerFactory
	synth    Synthesizer
	commands CommandHandler
	perms    *Permissions
	clock    clock.Clock
	logger   *slog.Logger
	timing   Timing
	lang     string
	speech   Speech
	notify   func(Notice)

	sessionID string
	speaking  atomic.Bool

	mu        sync.Mutex
	started   bool
	supported bool
	closed    bool
	bg, fg    Recognizer
	mode      Mode
	bgActive  bool
	fgActive  bool
	failures  int
	paused    bool

	restart   clock.Timer
	restartAt time.Time
	seq       int
	capture   clock.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source for restart and cooldown timers.
func WithClock(c clock.Clock) Option { return func(v *Controller) { v.clock = c } }

// WithTiming overrides DefaultTiming.
func WithTiming(t Timing) Option { return func(v *Controller) { v.timing = t } }

// WithLang sets the recognition language. Empty keeps "en-US".
func WithLang(lang string) Option {
	return func(v *Controller) {
		if lang != "" {
			v.lang = lang
		}
	}
}

// WithSpeech sets the voice used for spoken replies.
func WithSpeech(s Speech) Option { return func(v *Controller) { v.speech = s } }

// WithNoticeFunc receives user-facing notices. Notices are delivered
// without the controller lock held.
func WithNoticeFunc(fn func(Notice)) Option { return func(v *Controller) { v.notify = fn } }

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *Controller) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewController builds a controller. Recognizers are created on Start.
func NewController(factory RecognizerFactory, synth Synthesizer, commands CommandHandler, perms *Permissions, opts ...Option) *Controller {
	c := &Controller{
		factory:   factory,
		synth:     synth,
		commands:  commands,
		perms:     perms,
		clock:     clock.Real{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		timing:    DefaultTiming,
		lang:      "en-US",
		speech:    DefaultSpeech,
		notify:    func(Notice) {},
		sessionID: uuid.NewString(),
		supported: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", c.sessionID)
	return c
}

// Start creates both recognizers and begins background listening when
// microphone access has been granted.
func (c *Controller) Start() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if err := c.initLocked(); err != nil {
		c.mu.Unlock()
		if errors.Is(err, ErrUnsupported) {
			c.notify(notices[NoticeUnsupported])
		}
		return err
	}
	if n, ok := c.permissionNoticeLocked(); !ok {
		c.mu.Unlock()
		c.notify(n)
		return ErrPermissionDenied
	}
	if c.bgActive || c.fgActive {
		c.mu.Unlock()
		return nil
	}
	notes := c.startBackgroundLocked(false)
	c.mu.Unlock()
	c.deliver(notes)
	return nil
}

// ToggleListening switches between foreground command capture and
// background listening, mirroring the microphone button.
func (c *Controller) ToggleListening() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if err := c.initLocked(); err != nil {
		c.mu.Unlock()
		if errors.Is(err, ErrUnsupported) {
			c.notify(notices[NoticeUnsupported])
		}
		return err
	}
	if n, ok := c.permissionNoticeLocked(); !ok {
		c.mu.Unlock()
		c.notify(n)
		return ErrPermissionDenied
	}

	if c.fgActive || c.mode == ForegroundListening || c.mode == AwaitingCommand {
		c.stopCaptureLocked()
		c.mode = Idle
		c.scheduleResumeLocked()
		c.mu.Unlock()
		return nil
	}

	c.cancelRestartLocked()
	if c.bgActive {
		c.bgActive = false
		if err := c.bg.Stop(); err != nil {
			c.logger.Debug("stopping background recognizer", "error", err)
		}
	}
	if err := c.fg.Start(); err != nil {
		c.mode = Idle
		c.scheduleResumeLocked()
		c.mu.Unlock()
		return fmt.Errorf("starting voice capture: %w", err)
	}
	c.fgActive = true
	c.mode = ForegroundListening
	c.mu.Unlock()
	return nil
}

// RestartBackground is the manual restart affordance. It clears the
// paused state and, once listening resumes, the error counter.
func (c *Controller) RestartBackground() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if err := c.initLocked(); err != nil {
		return err
	}
	if !c.perms.Granted() {
		return ErrPermissionDenied
	}
	c.stopCaptureLocked()
	if c.bgActive {
		c.bgActive = false
		if err := c.bg.Abort(); err != nil {
			c.logger.Debug("aborting background recognizer", "error", err)
		}
	}
	c.paused = false
	c.mode = Idle
	c.scheduleRestartLocked(c.timing.ManualRestartDelay, true)
	return nil
}

// Close stops all recognition and speech and cancels pending timers. It is
// safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelRestartLocked()
	if c.capture != nil {
		c.capture.Stop()
		c.capture = nil
	}
	for _, r := range []Recognizer{c.bg, c.fg} {
		if r == nil {
			continue
		}
		if err := r.Abort(); err != nil {
			c.logger.Debug("aborting recognizer", "error", err)
		}
	}
	c.bgActive, c.fgActive = false, false
	c.mode = Idle
	c.mu.Unlock()
	c.StopSpeaking()
}

// Status returns the current state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		SessionID:          c.sessionID,
		Supported:          c.supported,
		Mode:               c.mode,
		Permission:         c.perms.Get(),
		ConsecutiveErrors:  c.failures,
		NeedsManualRestart: c.paused,
		Speaking:           c.speaking.Load(),
		RestartAt:          c.restartAt,
	}
}

func (c *Controller) initLocked() error {
	if !c.supported {
		return ErrUnsupported
	}
	if c.started {
		return nil
	}
	if c.factory == nil {
		c.supported = false
		return ErrUnsupported
	}
	bg, err := c.factory(RecognizerOptions{
		Continuous:      true,
		Lang:            c.lang,
		InterimResults:  false,
		MaxAlternatives: 1,
	}, backgroundEvents{c})
	if err == nil {
		var fg Recognizer
		fg, err = c.factory(RecognizerOptions{
			Continuous:      false,
			Lang:            c.lang,
			InterimResults:  false,
			MaxAlternatives: 1,
		}, foregroundEvents{c})
		c.fg = fg
	}
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			c.supported = false
			return ErrUnsupported
		}
		return fmt.Errorf("creating recognizer: %w", err)
	}
	c.bg = bg
	c.started = true
	return nil
}

func (c *Controller) permissionNoticeLocked() (Notice, bool) {
	switch c.perms.Get() {
	case PermissionGranted:
		return Notice{}, true
	case PermissionDenied:
		return notices[NoticePermissionDenied], false
	default:
		return notices[NoticePermissionRequired], false
	}
}

// startBackgroundLocked starts the wake-word recognizer. A failed start is
// counted like a recognition error.
func (c *Controller) startBackgroundLocked(manual bool) []Notice {
	if err := c.bg.Start(); err != nil {
		c.logger.Warn("starting background recognizer", "error", err)
		return c.backgroundErrorLocked(ErrorStartFailed)
	}
	c.bgActive = true
	c.mode = BackgroundListening
	if manual {
		c.failures = 0
	}
	c.logger.Debug("background listening")
	return nil
}

func (c *Controller) backgroundErrorLocked(code string) []Notice {
	c.bgActive = false
	c.mode = Idle
	if code == ErrorNotAllowed || code == ErrorServiceNotAllowed {
		c.cancelRestartLocked()
		if err := c.perms.Set(PermissionDenied); err != nil {
			c.logger.Warn("recording microphone denial", "error", err)
		}
		return []Notice{notices[NoticePermissionDenied]}
	}
	c.failures++
	if c.failures >= c.timing.MaxConsecutiveErrors {
		c.cancelRestartLocked()
		c.paused = true
		c.logger.Warn("background listening paused", "code", code, "consecutive", c.failures)
		return []Notice{notices[NoticePaused]}
	}
	delay := c.timing.Backoff(c.failures)
	c.logger.Warn("background recognizer error", "code", code, "consecutive", c.failures, "backoff", delay)
	c.scheduleRestartLocked(delay, false)
	return nil
}

// scheduleRestartLocked fills the single restart slot, replacing any
// restart already pending.
func (c *Controller) scheduleRestartLocked(d time.Duration, manual bool) {
	c.cancelRestartLocked()
	c.seq++
	seq := c.seq
	c.restartAt = c.clock.Now().Add(d)
	c.restart = c.clock.AfterFunc(d, func() { c.fireRestart(seq, manual) })
}

func (c *Controller) cancelRestartLocked() {
	if c.restart != nil {
		c.restart.Stop()
		c.restart = nil
	}
	c.restartAt = time.Time{}
}

// scheduleResumeLocked queues the post-command background resume unless
// automatic restarts are disabled.
func (c *Controller) scheduleResumeLocked() {
	if c.closed || c.paused || !c.perms.Granted() {
		return
	}
	c.scheduleRestartLocked(c.timing.Cooldown, false)
}

func (c *Controller) fireRestart(seq int, manual bool) {
	c.mu.Lock()
	if seq != c.seq || c.closed {
		c.mu.Unlock()
		return
	}
	c.restart = nil
	c.restartAt = time.Time{}
	if c.bgActive || c.fgActive || !c.perms.Granted() || (c.paused && !manual) {
		c.mu.Unlock()
		return
	}
	notes := c.startBackgroundLocked(manual)
	c.mu.Unlock()
	c.deliver(notes)
}

func (c *Controller) stopCaptureLocked() {
	if c.capture != nil {
		c.capture.Stop()
		c.capture = nil
	}
	if c.fgActive {
		c.fgActive = false
		if err := c.fg.Abort(); err != nil {
			c.logger.Debug("aborting voice capture", "error", err)
		}
	}
}

func (c *Controller) onBackgroundResult(transcript string) {
	c.mu.Lock()
	if !c.bgActive {
		c.mu.Unlock()
		return
	}
	c.failures = 0
	command, ok := intent.DetectWake(transcript)
	if !ok {
		c.mu.Unlock()
		c.logger.Debug("ignoring transcript", "transcript", transcript)
		return
	}
	c.bgActive = false
	if err := c.bg.Stop(); err != nil {
		c.logger.Debug("stopping background recognizer", "error", err)
	}
	c.logger.Debug("wake phrase detected", "transcript", transcript, "command", command)

	if command != "" {
		c.mode = Idle
		c.scheduleResumeLocked()
		c.mu.Unlock()
		c.handle(command)
		return
	}

	c.mode = AwaitingCommand
	c.cancelRestartLocked()
	c.capture = c.clock.AfterFunc(c.timing.PromptDelay, c.beginCapture)
	c.mu.Unlock()
	c.Speak(intent.ReplyWakePrompt)
}

func (c *Controller) beginCapture() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capture = nil
	if c.closed || c.mode != AwaitingCommand {
		return
	}
	if err := c.fg.Start(); err != nil {
		c.logger.Warn("starting voice capture", "error", err)
		c.mode = Idle
		c.scheduleResumeLocked()
		return
	}
	c.fgActive = true
}

func (c *Controller) onBackgroundError(code string) {
	c.mu.Lock()
	if !c.bgActive {
		c.mu.Unlock()
		return
	}
	notes := c.backgroundErrorLocked(code)
	c.mu.Unlock()
	c.deliver(notes)
}

func (c *Controller) onBackgroundEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bgActive {
		return
	}
	c.bgActive = false
	c.mode = Idle
	if c.closed || c.paused || !c.perms.Granted() {
		return
	}
	c.scheduleRestartLocked(c.timing.EndRestartDelay, false)
}

func (c *Controller) onCaptureResult(transcript string) {
	c.mu.Lock()
	if !c.fgActive {
		c.mu.Unlock()
		return
	}
	c.fgActive = false
	c.mode = Idle
	c.scheduleResumeLocked()
	c.mu.Unlock()
	c.handle(transcript)
}

func (c *Controller) onCaptureError(code string) {
	c.mu.Lock()
	if !c.fgActive {
		c.mu.Unlock()
		return
	}
	c.fgActive = false
	c.mode = Idle
	var notes []Notice
	if code == ErrorNotAllowed || code == ErrorServiceNotAllowed {
		c.cancelRestartLocked()
		if err := c.perms.Set(PermissionDenied); err != nil {
			c.logger.Warn("recording microphone denial", "error", err)
		}
		notes = append(notes, notices[NoticePermissionDenied])
	} else {
		c.logger.Warn("voice capture error", "code", code)
		c.scheduleResumeLocked()
	}
	c.mu.Unlock()
	c.deliver(notes)
}

func (c *Controller) onCaptureEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fgActive {
		return
	}
	c.fgActive = false
	c.mode = Idle
	c.scheduleResumeLocked()
}

func (c *Controller) handle(command string) {
	if c.commands == nil {
		return
	}
	c.commands.HandleCommand(command)
}

func (c *Controller) deliver(notes []Notice) {
	for _, n := range notes {
		c.notify(n)
	}
}

type backgroundEvents struct{ c *Controller }

func (e backgroundEvents) OnResult(t string)   { e.c.onBackgroundResult(t) }
func (e backgroundEvents) OnError(code string) { e.c.onBackgroundError(code) }
func (e backgroundEvents) OnEnd()              { e.c.onBackgroundEnd() }

type foregroundEvents struct{ c *Controller }

func (e foregroundEvents) OnResult(t string)   { e.c.onCaptureResult(t) }
func (e foregroundEvents) OnError(code string) { e.c.onCaptureError(code) }
func (e foregroundEvents) OnEnd()              { e.c.onCaptureEnd() }
