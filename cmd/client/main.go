package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Schmolo/nhplus-umsetzung/internal/adapter"
	"github.com/Schmolo/nhplus-umsetzung/internal/client/commands"
	"github.com/Schmolo/nhplus-umsetzung/internal/client/session"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"

	sess *session.Session

	serverAddr  string
	sessionPath string
	timeout     time.Duration
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nhplus",
	Short: "nhplus - records management client",
	Long: `nhplus is the command line client of the nhplus records server.
It manages patients, caregivers and treatments, applies retention locks,
and exports record listings.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		sess, err = session.Load(sessionPath)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:8080", "Server address")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", "", "Session file path (default: $HOME/.nhplus/session.json)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")

	addCommands()
}

// addCommands adds all subcommands to the root command.
func addCommands() {
	// Closures give commands lazy access to the session and the adapter so
	// both reflect the parsed flag values.
	deps := commands.Deps{
		Session: func() *session.Session { return sess },
		Adapter: func() (adapter.ServerAdapter, error) {
			api, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
				BaseURL: serverAddr,
				Timeout: timeout,
			})
			if err != nil {
				return nil, err
			}
			if sess != nil && sess.LoggedIn() {
				api.SetToken(sess.Token)
			}
			return api, nil
		},
	}

	rootCmd.AddCommand(commands.NewAuthCommands(deps)...)
	rootCmd.AddCommand(commands.NewPatientCommands(deps))
	rootCmd.AddCommand(commands.NewCaregiverCommands(deps))
	rootCmd.AddCommand(commands.NewTreatmentCommands(deps))
	rootCmd.AddCommand(commands.NewVersionCommand(deps, version, commit, buildDate))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
