package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/dispatch"
	"github.com/blackwell-systems/gameverse/internal/intent"
	"github.com/blackwell-systems/gameverse/internal/output"
)

var askCmd = &cobra.Command{
	Use:   "ask <message...>",
	Short: "Send one typed message to the assistant",
	Long: `Resolve a typed message the way the chat assistant does and print the
reply and the action it triggers. A leading wake phrase is optional.

Examples:
  gameverse ask open the dashboard
  gameverse ask "hey buddy, play trivia"
  gameverse ask how many coins do I have`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	w := cmd.OutOrStdout()
	in := intent.Resolve(strings.Join(args, " "))
	s.logger.Debug("resolved intent", "kind", string(in.Kind), "target", in.Target)

	host := &consoleHost{w: w}
	synth := consoleSynth{w: w}
	respond := dispatch.ResponderFunc(func(text string) {
		if err := synth.Speak(voiceUtterance(text)); err != nil {
			fmt.Fprintln(w, output.StyleError.Render(err.Error()))
		}
	})
	d := dispatch.New(host, respond,
		dispatch.WithCoins(s.store),
		dispatch.WithLogger(s.logger),
		dispatch.WithDelays(dispatch.Delays{}),
	)
	d.Dispatch(in)
	return nil
}
