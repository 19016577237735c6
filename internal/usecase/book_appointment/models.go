package book_appointment

import (
	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// State состояние попытки бронирования
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateRejected   State = "rejected"
)

// Draft черновик бронирования - transient состояние, заполняемое пользователем
// Отбрасывается после успешной отправки
type Draft struct {
	Psychologist *domain.Psychologist // Выбранный психолог (nil = не выбран)
	Date         string               // Ввод пользователя, "2006-01-02"
	TimeSlot     types.TimeString     // Выбранный слот
	Reason       string               // Причина обращения
}

// PaymentHandoff непрозрачное состояние для шага оплаты
// Сама обработка платежа выполняется отдельным потоком
type PaymentHandoff struct {
	Psychologist *domain.Psychologist
	Price        float64
	Appointment  *domain.Appointment
}

// Response результат успешного бронирования
type Response struct {
	Appointment *domain.Appointment
	Payment     *PaymentHandoff
}
