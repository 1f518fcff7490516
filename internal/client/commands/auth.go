// Package commands defines the cobra command tree of the nhplus CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Schmolo/nhplus-umsetzung/internal/adapter"
	"github.com/Schmolo/nhplus-umsetzung/internal/client/session"
)

// Deps gives commands lazy access to the server adapter and the persisted
// session. The adapter is constructed on first use so flag parsing has
// already resolved the server address.
type Deps struct {
	Adapter func() (adapter.ServerAdapter, error)
	Session func() *session.Session
}

// NewAuthCommands returns the login and logout commands.
func NewAuthCommands(deps Deps) []*cobra.Command {
	return []*cobra.Command{newLoginCmd(deps), newLogoutCmd(deps)}
}

func newLoginCmd(deps Deps) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			result, err := api.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			sess := deps.Session()
			sess.Token = result.Token
			sess.CaregiverID = result.CaregiverID
			sess.DisplayName = result.DisplayName
			sess.Admin = result.Admin
			if err := sess.Save(); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", result.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the current session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := deps.Session()
			if !sess.LoggedIn() {
				return fmt.Errorf("not logged in")
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			if err := api.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}

			if err := sess.Clear(); err != nil {
				return err
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}
