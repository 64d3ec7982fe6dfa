package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/gameverse/internal/clock"
	"github.com/blackwell-systems/gameverse/internal/dispatch"
	"github.com/blackwell-systems/gameverse/internal/intent"
	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/progress"
	"github.com/blackwell-systems/gameverse/internal/voice"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Run an interactive voice session on the terminal",
	Long: `Start the voice assistant with typed lines standing in for speech. The
session listens for the wake phrase ("hey buddy"), captures the command that
follows and carries it out. Daily challenges roll over at midnight while the
session runs.

Console commands:
  !mic            toggle command capture (the microphone button)
  !restart        restart background listening
  !error <code>   simulate a recognition error, e.g. !error network
  !end            simulate the recognizer timing out
  !status         show the listener state
  !quit           end the session (ctrl-d also works)

Requires microphone permission: gameverse mic grant`,
	Args: cobra.NoArgs,
	RunE: runVoice,
}

func init() {
	rootCmd.AddCommand(voiceCmd)
}

func runVoice(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return runVoiceConsole(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), true)
}

func voiceUtterance(text string) voice.Utterance {
	return voice.Utterance{Text: text, Rate: 1, Pitch: 1, Volume: 1}
}

// runVoiceConsole wires the controller, dispatcher and midnight scheduler to
// the console and runs until input ends, the chat is closed or a shutdown
// signal arrives.
func runVoiceConsole(ctx context.Context, s *session, in io.Reader, w io.Writer, watchSignals bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := &syncWriter{w: w}
	hub := &consoleHub{}
	host := &consoleHost{w: out, close: cancel}

	var disp *dispatch.Dispatcher
	handler := voice.CommandFunc(func(command string) {
		fmt.Fprintf(out, "%s %s\n", output.StyleBold.Render("you:"), command)
		disp.Dispatch(intent.Resolve(command))
	})

	ctl := voice.NewController(hub.factory, consoleSynth{w: out}, handler, voice.NewPermissions(s.kv),
		voice.WithTiming(voiceTiming(s.cfg)),
		voice.WithLang(s.cfg.Voice.Lang),
		voice.WithSpeech(voiceSpeech(s.cfg)),
		voice.WithLogger(s.logger),
		voice.WithNoticeFunc(func(n voice.Notice) {
			fmt.Fprintf(out, "%s %s\n", output.StyleWarning.Render(n.Title+":"), n.Message)
		}),
	)
	host.mute = ctl.StopSpeaking
	disp = dispatch.New(host, ctl,
		dispatch.WithCoins(s.store),
		dispatch.WithDelays(consoleDelays(s.cfg)),
		dispatch.WithLogger(s.logger),
	)
	defer ctl.Close()
	defer disp.Stop()

	if err := ctl.Start(); err != nil {
		if errors.Is(err, voice.ErrPermissionDenied) {
			return fmt.Errorf("%w; run 'gameverse mic grant' first", err)
		}
		return fmt.Errorf("starting voice session: %w", err)
	}
	fmt.Fprintf(out, "Listening for \"hey buddy\" (session %s). Type what you would say; !quit to stop.\n",
		ctl.Status().SessionID)

	sched := progress.NewScheduler(s.store, clock.Real{})
	unsubscribe := s.store.Subscribe(func(ev progress.Event) {
		if ev.Kind == progress.ChallengesRefreshed {
			fmt.Fprintln(out, output.StyleMuted.Render("New daily challenges are available."))
		}
	})
	defer unsubscribe()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sched.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if watchSignals {
		g.Go(func() error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, shutdownSignals...)
			defer signal.Stop(sigCh)
			select {
			case <-sigCh:
				cancel()
			case <-gctx.Done():
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				if quit := handleConsoleLine(strings.TrimSpace(line), hub, ctl, out); quit {
					return nil
				}
			}
		}
	})
	return g.Wait()
}

// handleConsoleLine runs one console line and reports whether to quit.
func handleConsoleLine(line string, hub *consoleHub, ctl *voice.Controller, w io.Writer) bool {
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "!") {
		if !hub.result(line) {
			fmt.Fprintln(w, output.StyleMuted.Render("(not listening; use !mic or !restart)"))
		}
		return false
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return false
	}
	var err error
	switch fields[0] {
	case "quit", "exit":
		return true
	case "mic":
		err = ctl.ToggleListening()
	case "restart":
		err = ctl.RestartBackground()
	case "error":
		code := "network"
		if len(fields) > 1 {
			code = fields[1]
		}
		if !hub.fail(code) {
			fmt.Fprintln(w, output.StyleMuted.Render("(no recognizer is listening)"))
		}
	case "end":
		if !hub.end() {
			fmt.Fprintln(w, output.StyleMuted.Render("(no recognizer is listening)"))
		}
	case "status":
		printVoiceStatus(w, ctl.Status(), time.Now())
	default:
		fmt.Fprintf(w, "unknown console command %q\n", fields[0])
	}
	if err != nil {
		fmt.Fprintln(w, output.StyleError.Render(err.Error()))
	}
	return false
}

func printVoiceStatus(w io.Writer, st voice.Status, now time.Time) {
	restart := "none"
	if !st.RestartAt.IsZero() {
		restart = "in " + st.RestartAt.Sub(now).Round(100*time.Millisecond).String()
	}
	tbl := output.NewTable("Session", "Mode", "Errors", "Restart", "Paused", "Permission").AlignRight(2)
	tbl.AddRow(st.SessionID[:8], st.Mode.String(), fmt.Sprintf("%d", st.ConsecutiveErrors), restart,
		fmt.Sprintf("%t", st.NeedsManualRestart), describePermission(st.Permission))
	_ = tbl.Fprint(w)
}
