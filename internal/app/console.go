package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/voice"
)

// syncWriter serialises writes from timer callbacks and the input loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// consoleHost prints the actions a dispatched command takes.
type consoleHost struct {
	w     io.Writer
	close func()
	mute  func()
}

func (h *consoleHost) Navigate(path string) { h.action("navigate %s", path) }

func (h *consoleHost) SetTheme(dark bool) {
	if dark {
		h.action("theme dark")
		return
	}
	h.action("theme light")
}

func (h *consoleHost) Close() {
	h.action("close chat")
	if h.close != nil {
		h.close()
	}
}

func (h *consoleHost) Reload() { h.action("reload") }

func (h *consoleHost) ClearChat() { h.action("clear chat") }

func (h *consoleHost) Mute() {
	h.action("mute")
	if h.mute != nil {
		h.mute()
	}
}

func (h *consoleHost) action(format string, args ...any) {
	fmt.Fprintln(h.w, output.StyleMuted.Render("→ "+fmt.Sprintf(format, args...)))
}

// consoleSynth "speaks" by printing the assistant's line.
type consoleSynth struct {
	w io.Writer
}

func (s consoleSynth) Speak(u voice.Utterance) error {
	if u.OnStart != nil {
		u.OnStart()
	}
	_, err := fmt.Fprintf(s.w, "%s %s\n", output.StyleHeader.Render("buddy:"), u.Text)
	if u.OnEnd != nil {
		u.OnEnd()
	}
	return err
}

func (consoleSynth) Cancel() {}

// consoleHub stands in for the platform recognizer: lines typed at the
// console are delivered to whichever recognizer is listening.
type consoleHub struct {
	mu          sync.Mutex
	recognizers []*consoleRecognizer
}

type consoleRecognizer struct {
	hub        *consoleHub
	events     voice.Events
	continuous bool
	listening  bool
}

func (h *consoleHub) factory(opts voice.RecognizerOptions, events voice.Events) (voice.Recognizer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r := &consoleRecognizer{hub: h, events: events, continuous: opts.Continuous}
	h.recognizers = append(h.recognizers, r)
	return r, nil
}

func (r *consoleRecognizer) Start() error {
	r.hub.mu.Lock()
	defer r.hub.mu.Unlock()
	if r.listening {
		return fmt.Errorf("recognizer already started")
	}
	r.listening = true
	return nil
}

func (r *consoleRecognizer) Stop() error {
	r.hub.mu.Lock()
	r.listening = false
	r.hub.mu.Unlock()
	return nil
}

func (r *consoleRecognizer) Abort() error { return r.Stop() }

// listening returns the active recognizer, preferring command capture over
// the wake-word listener.
func (h *consoleHub) listening() *consoleRecognizer {
	h.mu.Lock()
	defer h.mu.Unlock()
	var bg *consoleRecognizer
	for _, r := range h.recognizers {
		if !r.listening {
			continue
		}
		if !r.continuous {
			return r
		}
		bg = r
	}
	return bg
}

// result delivers a transcript. Single-shot sessions end after one result.
func (h *consoleHub) result(transcript string) bool {
	r := h.listening()
	if r == nil {
		return false
	}
	if !r.continuous {
		r.Stop()
	}
	r.events.OnResult(transcript)
	return true
}

// fail ends the listening session with an error code.
func (h *consoleHub) fail(code string) bool {
	r := h.listening()
	if r == nil {
		return false
	}
	r.Stop()
	r.events.OnError(code)
	return true
}

// end ends the listening session as if the platform timed it out.
func (h *consoleHub) end() bool {
	r := h.listening()
	if r == nil {
		return false
	}
	r.Stop()
	r.events.OnEnd()
	return true
}
