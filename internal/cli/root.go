package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
	"github.com/serenio-app/Serenio-Client/internal/service/appointments"
	"github.com/serenio-app/Serenio-Client/internal/service/chat"
	"github.com/serenio-app/Serenio-Client/internal/service/insights"
	"github.com/serenio-app/Serenio-Client/internal/service/payment"
	"github.com/serenio-app/Serenio-Client/internal/session"
	bookAppointmentUC "github.com/serenio-app/Serenio-Client/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/serenio-app/Serenio-Client/internal/usecase/get_available_slots"
)

// App собранное приложение: все сервисы и use cases, связанные в main
type App struct {
	Client  *serenioapi.Client
	Session *session.Manager

	AvailableSlots *getAvailableSlotsUC.UseCase
	BookingUC      *bookAppointmentUC.UseCase

	Appointments *appointments.Service
	Chat         *chat.Service
	Payment      *payment.Service
	Insights     *insights.Service
}

// NewRootCommand собирает дерево команд CLI
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "serenio",
		Short:         "Serenio mental wellness client",
		Long:          "Command line client for the Serenio mental wellness platform: booking, chat support and wellness insights.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPsychologistsCmd(app),
		newSlotsCmd(app),
		newBookCmd(app),
		newAppointmentsCmd(app),
		newCancelCmd(app),
		newCompleteCmd(app),
		newChatCmd(app),
		newChatSessionsCmd(app),
		newChatReportCmd(app),
		newMoodCmd(app),
		newReportsCmd(app),
	)

	return root
}

// friendlyError переводит сентинелы в сообщения для пользователя
// Неопознанные ошибки возвращаются как есть
func friendlyError(err error) error {
	switch {
	case errors.Is(err, serenioapi.ErrAuthExpired):
		return fmt.Errorf("your session has expired, please log in again")
	case errors.Is(err, serenioapi.ErrNetwork):
		return fmt.Errorf("could not reach the Serenio backend, check your connection")
	case errors.Is(err, bookAppointmentUC.ErrSlotConflict):
		return fmt.Errorf("that slot was just taken, refresh availability and pick another")
	case errors.Is(err, bookAppointmentUC.ErrLocalConflict):
		return fmt.Errorf("you already have an appointment at that date and time")
	case errors.Is(err, bookAppointmentUC.ErrSubmissionInFlight):
		return fmt.Errorf("a booking is already being submitted, please wait")
	case errors.Is(err, getAvailableSlotsUC.ErrAvailabilityUnknown):
		return fmt.Errorf("availability is unknown right now, try again")
	case errors.Is(err, appointments.ErrCannotCancel):
		return fmt.Errorf("only booked appointments can be cancelled")
	default:
		return err
	}
}
