package serenioapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

// GetAvailableSlots получает свободные слоты психолога на дату
// Ответ - снимок на момент запроса; при ошибке доступность считается
// неизвестной, а не пустой
func (c *Client) GetAvailableSlots(ctx context.Context, psychologistID string, date time.Time) (*AvailableSlotsResponse, error) {
	query := url.Values{}
	query.Set("psychologistId", psychologistID)
	query.Set("date", date.Format(domain.DateFormat))

	var resp AvailableSlotsResponse
	err := c.do(ctx, call{
		endpoint:      "available_slots",
		method:        http.MethodGet,
		path:          "/api/appointments/available-slots",
		query:         query,
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// BookAppointment отправляет подтвержденный черновик бронирования
// idempotencyKey защищает от дублей при повторной отправке того же черновика
func (c *Client) BookAppointment(ctx context.Context, req *BookAppointmentRequest, idempotencyKey string) (*Appointment, error) {
	c.log.Info("BookAppointment: psychologist=%s, date=%s, slot=%s",
		req.PsychologistID, req.Date, req.TimeSlot)

	var resp BookAppointmentResponse
	err := c.do(ctx, call{
		endpoint:      "book_appointment",
		method:        http.MethodPost,
		path:          "/api/appointments/book",
		body:          req,
		out:           &resp,
		authenticated: true,
		headers:       map[string]string{"Idempotency-Key": idempotencyKey},
	})
	if err != nil {
		return nil, err
	}

	if resp.Appointment == nil {
		return nil, ErrServer
	}

	c.log.Info("BookAppointment: created appointment id=%s", resp.Appointment.ID)
	return resp.Appointment, nil
}

// GetMyAppointments получает все записи текущего пользователя
func (c *Client) GetMyAppointments(ctx context.Context) (*MyAppointmentsResponse, error) {
	var resp MyAppointmentsResponse
	err := c.do(ctx, call{
		endpoint:      "my_appointments",
		method:        http.MethodGet,
		path:          "/api/appointments/my",
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// CancelAppointment отменяет запись пользователя
// Возвращает обновленную запись от сервера
func (c *Client) CancelAppointment(ctx context.Context, appointmentID string) (*Appointment, error) {
	c.log.Info("CancelAppointment: cancelling id=%s", appointmentID)

	var resp Appointment
	err := c.do(ctx, call{
		endpoint:      "cancel_appointment",
		method:        http.MethodPut,
		path:          "/api/appointments/cancel/" + appointmentID,
		body:          struct{}{},
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("CancelAppointment: cancelled id=%s", appointmentID)
	return &resp, nil
}

// CompleteAppointment помечает запись завершенной (действие психолога)
func (c *Client) CompleteAppointment(ctx context.Context, appointmentID string) (*Appointment, error) {
	c.log.Info("CompleteAppointment: completing id=%s", appointmentID)

	var resp Appointment
	err := c.do(ctx, call{
		endpoint:      "complete_appointment",
		method:        http.MethodPut,
		path:          "/api/appointments/complete/" + appointmentID,
		body:          struct{}{},
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// ListPsychologists получает каталог психологов для выбора
func (c *Client) ListPsychologists(ctx context.Context) ([]Psychologist, error) {
	var resp []Psychologist
	err := c.do(ctx, call{
		endpoint:      "psychologists",
		method:        http.MethodGet,
		path:          "/api/psychologists",
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
