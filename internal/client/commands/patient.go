package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// NewPatientCommands returns the patient command group.
func NewPatientCommands(deps Deps) *cobra.Command {
	patientCmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient record commands",
	}

	patientCmd.AddCommand(
		newPatientListCmd(deps),
		newPatientGetCmd(deps),
		newPatientCreateCmd(deps),
		newPatientUpdateCmd(deps),
		newPatientTreatmentsCmd(deps),
		newPatientExportCmd(deps),
		newLockCmd(deps, models.KindPatient),
		newDeleteCmd(deps, models.KindPatient),
	)

	return patientCmd
}

func newPatientListCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			patients, err := api.ListPatients(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(patients)
		},
	}
}

func newPatientGetCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one patient",
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

			patient, err := api.GetPatient(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(patient)
		},
	}
}

func newPatientCreateCmd(deps Deps) *cobra.Command {
	var (
		firstName, surname, careLevel, room string
		dateOfBirth                         string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a patient record",
		RunE: func(cmd *cobra.Command, args []string) error {
			dob, err := time.Parse("2006-01-02", dateOfBirth)
			if err != nil {
				return fmt.Errorf("invalid --date-of-birth, expected YYYY-MM-DD: %w", err)
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			created, err := api.CreatePatient(cmd.Context(), models.Patient{
				PersonName:  models.PersonName{FirstName: firstName, Surname: surname},
				DateOfBirth: dob,
				CareLevel:   careLevel,
				RoomNumber:  room,
			})
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}

	cmd.Flags().StringVar(&firstName, "firstname", "", "First name")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&dateOfBirth, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&careLevel, "care-level", "", "Care level")
	cmd.Flags().StringVar(&room, "room", "", "Room number")
	cmd.MarkFlagRequired("firstname")
	cmd.MarkFlagRequired("surname")
	cmd.MarkFlagRequired("date-of-birth")

	return cmd
}

func newPatientUpdateCmd(deps Deps) *cobra.Command {
	var (
		firstName, surname, careLevel, room string
		dateOfBirth                         string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a patient record",
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

			patient, err := api.GetPatient(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("firstname") {
				patient.FirstName = firstName
			}
			if cmd.Flags().Changed("surname") {
				patient.Surname = surname
			}
			if cmd.Flags().Changed("date-of-birth") {
				dob, err := time.Parse("2006-01-02", dateOfBirth)
				if err != nil {
					return fmt.Errorf("invalid --date-of-birth, expected YYYY-MM-DD: %w", err)
				}
				patient.DateOfBirth = dob
			}
			if cmd.Flags().Changed("care-level") {
				patient.CareLevel = careLevel
			}
			if cmd.Flags().Changed("room") {
				patient.RoomNumber = room
			}

			if err := api.UpdatePatient(cmd.Context(), patient); err != nil {
				return err
			}

			fmt.Println("Patient updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "firstname", "", "First name")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&dateOfBirth, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&careLevel, "care-level", "", "Care level")
	cmd.Flags().StringVar(&room, "room", "", "Room number")

	return cmd
}

func newPatientTreatmentsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "treatments <id>",
		Short: "List the treatments of one patient",
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

			treatments, err := api.ListTreatmentsOfPatient(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(treatments)
		},
	}
}

func newPatientExportCmd(deps Deps) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all patients as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			csvData, err := api.ExportPatientsCSV(cmd.Context())
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = os.Stdout.Write(csvData)
				return err
			}

			if err := os.WriteFile(outPath, csvData, 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write CSV to file instead of stdout")

	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
