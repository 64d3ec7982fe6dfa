// Package voice runs the wake-word listener and command capture on top of
// platform speech recognition and synthesis, which are consumed through the
// small capability interfaces below.
package voice

import (
	"errors"
	"time"
)

var (
	// ErrUnsupported means the platform has no speech recognition.
	ErrUnsupported = errors.New("voice recognition not supported")
	// ErrPermissionDenied means microphone access has not been granted.
	ErrPermissionDenied = errors.New("microphone permission not granted")
)

// RecognizerOptions configures one recognition session.
type RecognizerOptions struct {
	Continuous      bool
	Lang            string
	InterimResults  bool
	MaxAlternatives int
}

// Events receives recognition callbacks. Implementations of Recognizer must
// not deliver events from inside Start, Stop or Abort.
type Events interface {
	OnResult(transcript string)
	OnError(code string)
	OnEnd()
}

// Recognizer is a platform speech recognition session.
type Recognizer interface {
	Start() error
	Stop() error
	Abort() error
}

// RecognizerFactory creates a recognizer wired to events. It returns
// ErrUnsupported when recognition is unavailable.
type RecognizerFactory func(opts RecognizerOptions, events Events) (Recognizer, error)

// Utterance is text to speak. OnStart and OnEnd, when set, are called by
// the synthesizer; OnEnd is also called when speech fails or is cancelled.
type Utterance struct {
	Text    string
	Rate    float64
	Pitch   float64
	Volume  float64
	OnStart func()
	OnEnd   func()
}

// Synthesizer is a platform text-to-speech engine.
type Synthesizer interface {
	Speak(u Utterance) error
	Cancel()
}

// CommandHandler receives every captured command.
type CommandHandler interface {
	HandleCommand(command string)
}

// CommandFunc adapts a function to CommandHandler.
type CommandFunc func(command string)

func (f CommandFunc) HandleCommand(command string) { f(command) }

// Recognition error codes with special handling.
const (
	ErrorNotAllowed        = "not-allowed"
	ErrorServiceNotAllowed = "service-not-allowed"
	ErrorStartFailed       = "start-failed"
)

// Mode is the controller's listening state.
type Mode int

const (
	Idle Mode = iota
	BackgroundListening
	ForegroundListening
	AwaitingCommand
)

func (m Mode) String() string {
	switch m {
	case BackgroundListening:
		return "background-listening"
	case ForegroundListening:
		return "foreground-listening"
	case AwaitingCommand:
		return "awaiting-command"
	default:
		return "idle"
	}
}

// Timing holds every delay the controller uses.
type Timing struct {
	// PromptDelay separates the spoken prompt from the command capture.
	PromptDelay time.Duration
	// Cooldown precedes background resumption after a command.
	Cooldown           time.Duration
	EndRestartDelay    time.Duration
	ManualRestartDelay time.Duration
	BackoffBase        time.Duration
	BackoffMax         time.Duration
	// MaxConsecutiveErrors stops automatic restarts once reached.
	MaxConsecutiveErrors int
}

// DefaultTiming is the chat assistant's pacing.
var DefaultTiming = Timing{
	PromptDelay:          time.Second,
	Cooldown:             5 * time.Second,
	EndRestartDelay:      time.Second,
	ManualRestartDelay:   500 * time.Millisecond,
	BackoffBase:          3 * time.Second,
	BackoffMax:           15 * time.Second,
	MaxConsecutiveErrors: 3,
}

// Backoff returns the restart delay after n consecutive errors.
func (t Timing) Backoff(n int) time.Duration {
	d := t.BackoffBase * time.Duration(n)
	if t.BackoffMax > 0 && d > t.BackoffMax {
		return t.BackoffMax
	}
	return d
}

// NoticeKind identifies a user-facing voice notice.
type NoticeKind string

const (
	NoticeUnsupported        NoticeKind = "voice-unsupported"
	NoticePermissionRequired NoticeKind = "permission-required"
	NoticePermissionDenied   NoticeKind = "permission-denied"
	NoticePaused             NoticeKind = "background-paused"
)

// Notice is a non-blocking message for the user.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

var notices = map[NoticeKind]Notice{
	NoticeUnsupported: {
		Kind:    NoticeUnsupported,
		Title:   "Voice Recognition Not Supported",
		Message: "Voice commands are unavailable on this device.",
	},
	NoticePermissionRequired: {
		Kind:    NoticePermissionRequired,
		Title:   "Microphone Access Needed",
		Message: "Grant microphone access to use voice commands.",
	},
	NoticePermissionDenied: {
		Kind:    NoticePermissionDenied,
		Title:   "Microphone Access Denied",
		Message: "Microphone access denied. Voice commands are disabled.",
	},
	NoticePaused: {
		Kind:    NoticePaused,
		Title:   "Voice Recognition Issue",
		Message: "Background listening has been paused. Click the microphone button to use voice commands.",
	},
}
