package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLockCmd builds the lock subcommand shared by every record kind. The
// operation is irreversible: the record disappears from listings and is
// erased after the retention period.
func newLockCmd(deps Deps, kind string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "lock <id>",
		Short: fmt.Sprintf("Retention-lock a %s record (irreversible)", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				return fmt.Errorf("locking is irreversible; re-run with --yes to confirm")
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			if err := api.LockRecord(cmd.Context(), kind, id); err != nil {
				return err
			}

			fmt.Printf("%s %d locked\n", kind, id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the irreversible lock")

	return cmd
}

// newDeleteCmd builds the delete subcommand shared by every record kind.
// Hard deletes are restricted to administrators on the server side.
func newDeleteCmd(deps Deps, kind string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Permanently delete a %s record", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				return fmt.Errorf("deletion is permanent; re-run with --yes to confirm")
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			if err := api.DeleteRecord(cmd.Context(), kind, id); err != nil {
				return err
			}

			fmt.Printf("%s %d deleted\n", kind, id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the permanent deletion")

	return cmd
}
