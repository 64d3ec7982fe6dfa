package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gameverse/internal/output"
	"github.com/blackwell-systems/gameverse/internal/voice"
)

var micCmd = &cobra.Command{
	Use:   "mic <grant|deny|reset|status>",
	Short: "Manage the microphone permission for voice commands",
	Long: `Voice commands only listen after microphone access has been granted.
The decision is stored with the rest of the progress data.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"grant", "deny", "reset", "status"},
	RunE:      runMic,
}

func init() {
	rootCmd.AddCommand(micCmd)
}

func runMic(cmd *cobra.Command, args []string) error {
	var want voice.Permission
	switch args[0] {
	case "grant":
		want = voice.PermissionGranted
	case "deny":
		want = voice.PermissionDenied
	case "reset":
		want = voice.PermissionUnset
	case "status":
	default:
		return fmt.Errorf("unknown mic action %q; use grant, deny, reset or status", args[0])
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	perms := voice.NewPermissions(s.kv)
	if args[0] != "status" {
		if err := perms.Set(want); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Microphone permission: %s\n", describePermission(perms.Get()))
	return nil
}

func describePermission(p voice.Permission) string {
	switch p {
	case voice.PermissionGranted:
		return output.StyleSuccess.Render("granted")
	case voice.PermissionDenied:
		return output.StyleError.Render("denied")
	default:
		return output.StyleMuted.Render("not set")
	}
}
