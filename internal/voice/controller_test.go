package voice

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/gameverse/internal/clock"
	"github.com/blackwell-systems/gameverse/internal/storage"
)

type fakeRecognizer struct {
	opts     RecognizerOptions
	events   Events
	starts   int
	stops    int
	aborts   int
	startErr error
}

func (r *fakeRecognizer) Start() error {
	if r.startErr != nil {
		return r.startErr
	}
	r.starts++
	return nil
}

func (r *fakeRecognizer) Stop() error  { r.stops++; return nil }
func (r *fakeRecognizer) Abort() error { r.aborts++; return nil }

type fakeSynth struct {
	mu      sync.Mutex
	spoken  []string
	cancels int
	last    Utterance
}

func (s *fakeSynth) Speak(u Utterance) error {
	s.mu.Lock()
	s.spoken = append(s.spoken, u.Text)
	s.last = u
	s.mu.Unlock()
	if u.OnStart != nil {
		u.OnStart()
	}
	return nil
}

func (s *fakeSynth) Cancel() {
	s.mu.Lock()
	s.cancels++
	s.mu.Unlock()
}

type harness struct {
	ctl      *Controller
	clk      *clock.Fake
	bg, fg   *fakeRecognizer
	synth    *fakeSynth
	perms    *Permissions
	commands []string
	notices  []Notice
}

var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newHarness(t *testing.T, perm Permission) *harness {
	t.Helper()
	h := &harness{
		clk:   clock.NewFake(testNow),
		synth: &fakeSynth{},
		perms: NewPermissions(storage.NewMemory()),
	}
	if perm != PermissionUnset {
		require.NoError(t, h.perms.Set(perm))
	}
	factory := func(opts RecognizerOptions, events Events) (Recognizer, error) {
		r := &fakeRecognizer{opts: opts, events: events}
		if opts.Continuous {
			h.bg = r
		} else {
			h.fg = r
		}
		return r, nil
	}
	h.ctl = NewController(factory, h.synth,
		CommandFunc(func(cmd string) { h.commands = append(h.commands, cmd) }),
		h.perms,
		WithClock(h.clk),
		WithNoticeFunc(func(n Notice) { h.notices = append(h.notices, n) }),
	)
	return h
}

func startedHarness(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t, PermissionGranted)
	require.NoError(t, h.ctl.Start())
	require.Equal(t, BackgroundListening, h.ctl.Status().Mode)
	return h
}

func TestStart_Unsupported(t *testing.T) {
	var got []Notice
	ctl := NewController(nil, nil, nil, NewPermissions(storage.NewMemory()),
		WithNoticeFunc(func(n Notice) { got = append(got, n) }))

	assert.ErrorIs(t, ctl.Start(), ErrUnsupported)
	assert.False(t, ctl.Status().Supported)
	require.Len(t, got, 1)
	assert.Equal(t, NoticeUnsupported, got[0].Kind)

	factory := func(RecognizerOptions, Events) (Recognizer, error) {
		return nil, ErrUnsupported
	}
	ctl = NewController(factory, nil, nil, NewPermissions(storage.NewMemory()))
	assert.ErrorIs(t, ctl.ToggleListening(), ErrUnsupported)
}

func TestStart_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	factory := func(RecognizerOptions, Events) (Recognizer, error) { return nil, boom }
	ctl := NewController(factory, nil, nil, NewPermissions(storage.NewMemory()))
	err := ctl.Start()
	assert.ErrorIs(t, err, boom)
	assert.True(t, ctl.Status().Supported)
}

func TestStart_RequiresPermission(t *testing.T) {
	h := newHarness(t, PermissionUnset)
	assert.ErrorIs(t, h.ctl.Start(), ErrPermissionDenied)
	assert.Equal(t, 0, h.bg.starts)
	assert.Equal(t, Idle, h.ctl.Status().Mode)
	require.Len(t, h.notices, 1)
	assert.Equal(t, NoticePermissionRequired, h.notices[0].Kind)

	h = newHarness(t, PermissionDenied)
	assert.ErrorIs(t, h.ctl.Start(), ErrPermissionDenied)
	require.Len(t, h.notices, 1)
	assert.Equal(t, NoticePermissionDenied, h.notices[0].Kind)
}

func TestStart_RecognizerOptions(t *testing.T) {
	h := startedHarness(t)
	assert.Equal(t, RecognizerOptions{Continuous: true, Lang: "en-US", MaxAlternatives: 1}, h.bg.opts)
	assert.Equal(t, RecognizerOptions{Continuous: false, Lang: "en-US", MaxAlternatives: 1}, h.fg.opts)
	assert.Equal(t, 1, h.bg.starts)

	_, err := uuid.Parse(h.ctl.Status().SessionID)
	assert.NoError(t, err)
}

func TestWakeWithCommand_DispatchesDirectly(t *testing.T) {
	h := startedHarness(t)

	h.bg.events.OnResult("hey buddy open dashboard")

	assert.Equal(t, []string{"open dashboard"}, h.commands)
	assert.Equal(t, 1, h.bg.stops)
	assert.Equal(t, 0, h.fg.starts)
	st := h.ctl.Status()
	assert.Equal(t, Idle, st.Mode)
	assert.Equal(t, testNow.Add(5*time.Second), st.RestartAt)

	h.clk.Advance(5 * time.Second)
	assert.Equal(t, 2, h.bg.starts)
	assert.Equal(t, BackgroundListening, h.ctl.Status().Mode)
}

func TestWakeAlone_PromptsAndCaptures(t *testing.T) {
	h := startedHarness(t)

	h.bg.events.OnResult("Hey Buddy")

	assert.Equal(t, []string{"How can I help you?"}, h.synth.spoken)
	assert.Equal(t, AwaitingCommand, h.ctl.Status().Mode)
	assert.True(t, h.ctl.Status().Speaking)
	assert.Empty(t, h.commands)

	h.clk.Advance(time.Second)
	assert.Equal(t, 1, h.fg.starts)

	h.fg.events.OnResult("play trivia")
	assert.Equal(t, []string{"play trivia"}, h.commands)
	assert.Equal(t, Idle, h.ctl.Status().Mode)

	h.clk.Advance(5 * time.Second)
	assert.Equal(t, 2, h.bg.starts)
	assert.Equal(t, BackgroundListening, h.ctl.Status().Mode)
}

func TestBackground_IgnoresNonWakeSpeech(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnResult("what a nice day")
	assert.Empty(t, h.commands)
	assert.Equal(t, 0, h.bg.stops)
	assert.Equal(t, BackgroundListening, h.ctl.Status().Mode)
}

func TestBackgroundErrors_BackoffThenPause(t *testing.T) {
	h := startedHarness(t)

	h.bg.events.OnError("network")
	st := h.ctl.Status()
	assert.Equal(t, 1, st.ConsecutiveErrors)
	assert.Equal(t, testNow.Add(3*time.Second), st.RestartAt)
	h.clk.Advance(3 * time.Second)
	assert.Equal(t, 2, h.bg.starts)

	h.bg.events.OnError("network")
	assert.Equal(t, h.clk.Now().Add(6*time.Second), h.ctl.Status().RestartAt)
	h.clk.Advance(6 * time.Second)
	assert.Equal(t, 3, h.bg.starts)

	h.bg.events.OnError("network")
	st = h.ctl.Status()
	assert.Equal(t, 3, st.ConsecutiveErrors)
	assert.True(t, st.NeedsManualRestart)
	assert.True(t, st.RestartAt.IsZero())
	assert.Equal(t, 0, h.clk.Pending())
	require.Len(t, h.notices, 1)
	assert.Equal(t, NoticePaused, h.notices[0].Kind)
	assert.Equal(t, "Background listening has been paused. Click the microphone button to use voice commands.", h.notices[0].Message)

	h.clk.Advance(time.Minute)
	assert.Equal(t, 3, h.bg.starts)

	require.NoError(t, h.ctl.RestartBackground())
	h.clk.Advance(500 * time.Millisecond)
	st = h.ctl.Status()
	assert.Equal(t, 4, h.bg.starts)
	assert.Equal(t, 0, st.ConsecutiveErrors)
	assert.False(t, st.NeedsManualRestart)
	assert.Equal(t, BackgroundListening, st.Mode)
}

func TestBackgroundErrors_BackoffCapped(t *testing.T) {
	tm := DefaultTiming
	tm.BackoffMax = 5 * time.Second
	assert.Equal(t, 3*time.Second, tm.Backoff(1))
	assert.Equal(t, 5*time.Second, tm.Backoff(2))
	assert.Equal(t, 15*time.Second, DefaultTiming.Backoff(5))
}

func TestBackgroundResult_ResetsErrorCount(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnError("no-speech")
	h.clk.Advance(3 * time.Second)
	require.Equal(t, 1, h.ctl.Status().ConsecutiveErrors)

	h.bg.events.OnResult("just talking")
	assert.Equal(t, 0, h.ctl.Status().ConsecutiveErrors)
}

func TestBackgroundEnd_RestartsAfterDelay(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnEnd()
	assert.Equal(t, Idle, h.ctl.Status().Mode)
	h.clk.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, h.bg.starts)
	h.clk.Advance(time.Millisecond)
	assert.Equal(t, 2, h.bg.starts)
	assert.Equal(t, 0, h.ctl.Status().ConsecutiveErrors)
}

func TestBackground_StaleEventsIgnored(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnError("network")
	h.bg.events.OnEnd()
	assert.Equal(t, 1, h.ctl.Status().ConsecutiveErrors)
	assert.Equal(t, 1, h.clk.Pending())
}

func TestRestart_SingleSlot(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnResult("hey buddy go home")
	require.Equal(t, 1, h.clk.Pending())

	require.NoError(t, h.ctl.RestartBackground())
	assert.Equal(t, 1, h.clk.Pending())

	h.clk.Advance(10 * time.Second)
	assert.Equal(t, 2, h.bg.starts)
	assert.Equal(t, 0, h.clk.Pending())
}

func TestStartFailure_CountsAsError(t *testing.T) {
	h := newHarness(t, PermissionGranted)
	h.ctl.initLocked()
	h.bg.startErr = errors.New("busy")

	require.NoError(t, h.ctl.Start())
	st := h.ctl.Status()
	assert.Equal(t, Idle, st.Mode)
	assert.Equal(t, 1, st.ConsecutiveErrors)
	assert.False(t, st.RestartAt.IsZero())
}

func TestToggleListening(t *testing.T) {
	h := startedHarness(t)

	require.NoError(t, h.ctl.ToggleListening())
	assert.Equal(t, 1, h.bg.stops)
	assert.Equal(t, 1, h.fg.starts)
	assert.Equal(t, ForegroundListening, h.ctl.Status().Mode)

	require.NoError(t, h.ctl.ToggleListening())
	assert.Equal(t, 1, h.fg.aborts)
	st := h.ctl.Status()
	assert.Equal(t, Idle, st.Mode)
	assert.Equal(t, testNow.Add(5*time.Second), st.RestartAt)
}

func TestToggleListening_CaptureDispatches(t *testing.T) {
	h := startedHarness(t)
	require.NoError(t, h.ctl.ToggleListening())
	h.fg.events.OnResult("what time is it")
	assert.Equal(t, []string{"what time is it"}, h.commands)
	assert.Equal(t, Idle, h.ctl.Status().Mode)
}

func TestPermissionDeniedError_Persisted(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnError(ErrorNotAllowed)

	assert.Equal(t, PermissionDenied, h.perms.Get())
	assert.Equal(t, 0, h.clk.Pending())
	require.Len(t, h.notices, 1)
	assert.Equal(t, NoticePermissionDenied, h.notices[0].Kind)
	assert.ErrorIs(t, h.ctl.RestartBackground(), ErrPermissionDenied)
}

func TestClose_ReleasesEverything(t *testing.T) {
	h := startedHarness(t)
	h.bg.events.OnResult("hey buddy")
	require.Equal(t, 1, h.clk.Pending())

	h.ctl.Close()
	h.ctl.Close()

	assert.Equal(t, 1, h.bg.aborts)
	assert.Equal(t, 1, h.fg.aborts)
	assert.Equal(t, 0, h.clk.Pending())
	assert.False(t, h.ctl.Status().Speaking)
	assert.GreaterOrEqual(t, h.synth.cancels, 2)

	h.bg.events.OnResult("hey buddy open games")
	h.clk.Advance(time.Minute)
	assert.Empty(t, h.commands)
	assert.Equal(t, 1, h.bg.starts)
	assert.Equal(t, 0, h.fg.starts)
	assert.NoError(t, h.ctl.Start())
	assert.Equal(t, 1, h.bg.starts)
}

func TestSpeak_TracksSpeaking(t *testing.T) {
	h := startedHarness(t)
	h.ctl.Respond("Opening Trivia Quiz...")
	assert.True(t, h.ctl.Speaking())
	assert.Equal(t, 1.0, h.synth.last.Rate)

	h.synth.last.OnEnd()
	assert.False(t, h.ctl.Speaking())

	h.ctl.Respond("again")
	h.ctl.StopSpeaking()
	assert.False(t, h.ctl.Speaking())
}
