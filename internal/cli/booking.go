package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	bookAppointmentUC "github.com/serenio-app/Serenio-Client/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/serenio-app/Serenio-Client/internal/usecase/get_available_slots"
	"github.com/serenio-app/Serenio-Client/pkg/types"
)

func newPsychologistsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "psychologists",
		Short: "List available psychologists",
		RunE: func(cmd *cobra.Command, args []string) error {
			dtos, err := app.Client.ListPsychologists(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSPECIALIZATION\tPRICE\tAVAILABLE")
			for i := range dtos {
				p := dtos[i].ToDomain()
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%v\n",
					p.ID, p.Name, p.Specialization, p.EffectivePrice(), p.Available)
			}
			return w.Flush()
		},
	}
}

func newSlotsCmd(app *App) *cobra.Command {
	var psychologistID, date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show free time slots of a psychologist for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse(domain.DateFormat, date)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
			}

			resp, err := app.AvailableSlots.Execute(cmd.Context(), &getAvailableSlotsUC.Request{
				PsychologistID: psychologistID,
				Date:           day,
			})
			if err != nil {
				return friendlyError(err)
			}

			if len(resp.Slots) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No free slots on %s\n", date)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Free slots on %s:\n", date)
			for _, slot := range resp.Slots {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", slot)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&psychologistID, "psychologist", "", "psychologist ID")
	cmd.Flags().StringVar(&date, "date", "", "appointment date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("psychologist")
	cmd.MarkFlagRequired("date")

	return cmd
}

func newBookCmd(app *App) *cobra.Command {
	var psychologistID, date, slot, reason string
	var pay bool

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			psychologist, err := findPsychologist(cmd.Context(), app, psychologistID)
			if err != nil {
				return friendlyError(err)
			}

			timeSlot, err := types.NewTimeStringFromString(slot)
			if err != nil {
				return fmt.Errorf("invalid slot %q, expected HH:MM", slot)
			}

			resp, err := app.BookingUC.Execute(cmd.Context(), &bookAppointmentUC.Draft{
				Psychologist: psychologist,
				Date:         date,
				TimeSlot:     timeSlot,
				Reason:       reason,
			})
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Booked appointment %s with %s on %s at %s\n",
				resp.Appointment.ID, psychologist.Name, date, slot)

			if !pay {
				fmt.Fprintf(cmd.OutOrStdout(), "Session price: %.2f (use --pay to create a payment intent)\n",
					resp.Payment.Price)
				return nil
			}

			intent, err := app.Payment.CreateIntent(cmd.Context(), resp.Payment.Price, "")
			if err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Payment intent %s created for %d %s minor units\n",
				intent.PaymentIntentID, intent.Amount, intent.Currency)
			fmt.Fprintf(cmd.OutOrStdout(), "Complete the payment with client secret: %s\n", intent.ClientSecret)
			return nil
		},
	}

	cmd.Flags().StringVar(&psychologistID, "psychologist", "", "psychologist ID")
	cmd.Flags().StringVar(&date, "date", "", "appointment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&slot, "slot", "", "time slot (HH:MM)")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the visit")
	cmd.Flags().BoolVar(&pay, "pay", false, "create a payment intent after booking")
	cmd.MarkFlagRequired("psychologist")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("slot")

	return cmd
}

func newAppointmentsCmd(app *App) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Appointments.List(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTIME\tPSYCHOLOGIST\tSTATUS")
			for _, a := range list.Appointments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.Date, a.TimeSlot, a.PsychologistName, a.Status)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if stats {
				s := app.Appointments.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d (booked: %d, completed: %d, cancelled: %d)\n",
					s.Total, s.Booked, s.Completed, s.Cancelled)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print a status summary")

	return cmd
}

func newCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel a booked appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Отмена работает по локальной копии списка - загружаем при необходимости
			if _, err := app.Appointments.List(cmd.Context()); err != nil {
				return friendlyError(err)
			}

			if err := app.Appointments.Cancel(cmd.Context(), args[0]); err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Appointment %s cancelled\n", args[0])
			return nil
		},
	}
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <appointment-id>",
		Short: "Mark an appointment as completed (psychologists only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Appointments.Complete(cmd.Context(), args[0]); err != nil {
				return friendlyError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Appointment %s completed\n", args[0])
			return nil
		},
	}
}

// findPsychologist ищет психолога в каталоге по ID
func findPsychologist(ctx context.Context, app *App, id string) (*domain.Psychologist, error) {
	dtos, err := app.Client.ListPsychologists(ctx)
	if err != nil {
		return nil, err
	}

	for i := range dtos {
		if dtos[i].ID == id {
			return dtos[i].ToDomain(), nil
		}
	}

	return nil, fmt.Errorf("psychologist %q not found in the directory", id)
}
