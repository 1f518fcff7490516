package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. It prints the client build
// information and, when reachable, the server version.
func NewVersionCommand(deps Deps, version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display client and server version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("nhplus CLI\n")
			fmt.Printf("Version:    %s\n", version)
			fmt.Printf("Commit:     %s\n", commit)
			fmt.Printf("Build Date: %s\n", buildDate)

			api, err := deps.Adapter()
			if err != nil {
				return nil
			}
			if serverVersion, err := api.Version(cmd.Context()); err == nil {
				fmt.Printf("Server:     %s\n", serverVersion)
			}
			return nil
		},
	}
}
