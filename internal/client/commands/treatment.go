package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// NewTreatmentCommands returns the treatment command group.
func NewTreatmentCommands(deps Deps) *cobra.Command {
	treatmentCmd := &cobra.Command{
		Use:   "treatment",
		Short: "Treatment record commands",
	}

	treatmentCmd.AddCommand(
		newTreatmentListCmd(deps),
		newTreatmentGetCmd(deps),
		newTreatmentCreateCmd(deps),
		newTreatmentUpdateCmd(deps),
		newLockCmd(deps, models.KindTreatment),
		newDeleteCmd(deps, models.KindTreatment),
	)

	return treatmentCmd
}

func newTreatmentListCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all treatments",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			treatments, err := api.ListTreatments(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(treatments)
		},
	}
}

func newTreatmentGetCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one treatment",
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

			treatment, err := api.GetTreatment(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(treatment)
		},
	}
}

func newTreatmentCreateCmd(deps Deps) *cobra.Command {
	var (
		patientID            int64
		date, begin, end     string
		description, remarks string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a treatment record",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}

			api, err := deps.Adapter()
			if err != nil {
				return err
			}

			created, err := api.CreateTreatment(cmd.Context(), models.Treatment{
				PatientID:   patientID,
				Date:        day,
				Begin:       begin,
				End:         end,
				Description: description,
				Remarks:     remarks,
			})
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}

	cmd.Flags().Int64Var(&patientID, "patient", 0, "Patient id")
	cmd.Flags().StringVar(&date, "date", "", "Treatment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&begin, "begin", "", "Start time (hh:mm)")
	cmd.Flags().StringVar(&end, "end", "", "End time (hh:mm)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Free-form remarks")
	cmd.MarkFlagRequired("patient")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newTreatmentUpdateCmd(deps Deps) *cobra.Command {
	var (
		date, begin, end     string
		description, remarks string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a treatment record",
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

			treatment, err := api.GetTreatment(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("date") {
				day, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
				}
				treatment.Date = day
			}
			if cmd.Flags().Changed("begin") {
				treatment.Begin = begin
			}
			if cmd.Flags().Changed("end") {
				treatment.End = end
			}
			if cmd.Flags().Changed("description") {
				treatment.Description = description
			}
			if cmd.Flags().Changed("remarks") {
				treatment.Remarks = remarks
			}

			if err := api.UpdateTreatment(cmd.Context(), treatment); err != nil {
				return err
			}

			fmt.Println("Treatment updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Treatment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&begin, "begin", "", "Start time (hh:mm)")
	cmd.Flags().StringVar(&end, "end", "", "End time (hh:mm)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Free-form remarks")

	return cmd
}
