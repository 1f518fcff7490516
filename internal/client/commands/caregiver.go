package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// NewCaregiverCommands returns the caregiver command group.
func NewCaregiverCommands(deps Deps) *cobra.Command {
	caregiverCmd := &cobra.Command{
		Use:   "caregiver",
		Short: "Caregiver account commands",
	}

	caregiverCmd.AddCommand(
		newCaregiverListCmd(deps),
		newCaregiverRegisterCmd(deps),
		newCaregiverPasswdCmd(deps),
		newLockCmd(deps, models.KindCaregiver),
		newDeleteCmd(deps, models.KindCaregiver),
	)

	return caregiverCmd
}

func newCaregiverListCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all caregivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			caregivers, err := api.ListCaregivers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(caregivers)
		},
	}
}

func newCaregiverRegisterCmd(deps Deps) *cobra.Command {
	var (
		username, password, firstName, surname, phone string
		dateOfBirth                                   string
		admin                                         bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a caregiver account (administrators only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			caregiver := models.Caregiver{
				PersonName:  models.PersonName{FirstName: firstName, Surname: surname},
				Username:    username,
				PhoneNumber: phone,
				Admin:       admin,
			}
			if dateOfBirth != "" {
				dob, err := time.Parse("2006-01-02", dateOfBirth)
				if err != nil {
					return fmt.Errorf("invalid --date-of-birth, expected YYYY-MM-DD: %w", err)
				}
				caregiver.DateOfBirth = dob
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			created, err := api.RegisterCaregiver(cmd.Context(), caregiver, password)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Initial password")
	cmd.Flags().StringVar(&firstName, "firstname", "", "First name")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&dateOfBirth, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant administrator rights")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("firstname")
	cmd.MarkFlagRequired("surname")

	return cmd
}

func newCaregiverPasswdCmd(deps Deps) *cobra.Command {
	var newPassword string

	cmd := &cobra.Command{
		Use:   "passwd <id>",
		Short: "Change a caregiver's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			if err := api.ChangePassword(cmd.Context(), id, newPassword); err != nil {
				return err
			}

			fmt.Println("Password changed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&newPassword, "new-password", "p", "", "New password")
	cmd.MarkFlagRequired("new-password")

	return cmd
}
