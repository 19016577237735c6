package serenioapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/pkg/types"
)

// ErrorResponse модель ошибки от backend
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// UserMessage возвращает текст для показа пользователю
func (e *ErrorResponse) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Auth модели

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse ответ с токенами сессии
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Appointment модели

// AvailableSlotsResponse ответ со свободными слотами на дату
type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// BookAppointmentRequest запрос на бронирование
type BookAppointmentRequest struct {
	PsychologistID string  `json:"psychologistId"`
	Date           string  `json:"date"` // "2006-01-02"
	TimeSlot       string  `json:"timeSlot"`
	Reason         *string `json:"reason,omitempty"`
}

// PsychologistRef денормализованные данные психолога внутри записи
// Backend отдает либо строковый ID, либо вложенный объект - оба варианта
// парсятся в этот тип
type PsychologistRef struct {
	ID             string `json:"_id,omitempty"`
	Name           string `json:"name,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// UnmarshalJSON принимает строковый ID или объект психолога
func (p *PsychologistRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		p.ID = id
		return nil
	}

	type alias PsychologistRef
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = PsychologistRef(obj)
	return nil
}

// PaymentRef денормализованный статус платежа внутри записи
type PaymentRef struct {
	ID            string `json:"_id,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// UnmarshalJSON принимает строковый ID или объект платежа
func (p *PaymentRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		p.ID = id
		return nil
	}

	type alias PaymentRef
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = PaymentRef(obj)
	return nil
}

// Appointment модель записи на прием от backend
type Appointment struct {
	ID           string           `json:"_id"`
	UserID       string           `json:"userId"`
	Psychologist *PsychologistRef `json:"psychologistId,omitempty"`
	Date         string           `json:"date"`
	TimeSlot     string           `json:"timeSlot"`
	Reason       *string          `json:"reason,omitempty"`
	Status       string           `json:"status"`
	Payment      *PaymentRef      `json:"paymentId,omitempty"`
	CreatedAt    string           `json:"createdAt,omitempty"`
	UpdatedAt    string           `json:"updatedAt,omitempty"`
}

// MyAppointmentsResponse ответ со списком записей пользователя
type MyAppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

// BookAppointmentResponse ответ на бронирование
type BookAppointmentResponse struct {
	Appointment *Appointment `json:"appointment,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// ToDomain конвертирует DTO в domain модель
// Дата в ответах backend может быть как "2006-01-02", так и полным RFC 3339
// с временной компонентой - сравнение дальше идет только по календарному дню
func (a *Appointment) ToDomain() (*domain.Appointment, error) {
	date, err := parseFlexibleDate(a.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(a.TimeSlot)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ID:       a.ID,
		UserID:   a.UserID,
		Date:     date,
		TimeSlot: slot,
		Reason:   a.Reason,
		Status:   domain.AppointmentStatus(a.Status),
	}

	// Отсутствие статуса трактуется как Booked (историческое поведение backend)
	if a.Status == "" {
		appt.Status = domain.StatusBooked
	}

	if a.Psychologist != nil {
		appt.PsychologistID = a.Psychologist.ID
		appt.PsychologistName = a.Psychologist.Name
		appt.Specialization = a.Psychologist.Specialization
	}

	if a.Payment != nil && a.Payment.PaymentStatus != "" {
		status := a.Payment.PaymentStatus
		appt.PaymentStatus = &status
	}

	if a.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, a.CreatedAt); err == nil {
			appt.CreatedAt = t
		}
	}
	if a.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339, a.UpdatedAt); err == nil {
			appt.UpdatedAt = t
		}
	}

	return appt, nil
}

// parseFlexibleDate парсит дату в формате YYYY-MM-DD или RFC 3339
func parseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unsupported date format %q", ErrServer, s)
}

// Psychologist модель психолога из каталога
type Psychologist struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	SessionPrice   *float64 `json:"sessionPrice,omitempty"`
	HourlyRate     *float64 `json:"hourlyRate,omitempty"`
	Available      bool     `json:"available"`
}

// ToDomain конвертирует DTO в domain модель
func (p *Psychologist) ToDomain() *domain.Psychologist {
	return &domain.Psychologist{
		ID:             p.ID,
		Name:           p.Name,
		Specialization: p.Specialization,
		SessionPrice:   p.SessionPrice,
		HourlyRate:     p.HourlyRate,
		Available:      p.Available,
	}
}

// Chat модели

// ChatMessageRequest запрос к чат-боту
type ChatMessageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatMessageResponse ответ чат-бота
type ChatMessageResponse struct {
	BotReply string `json:"botReply"`
}

// ChatLogRequest запрос на сохранение сообщения в журнал сессии
type ChatLogRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Response  string `json:"response"`
}

// ChatLog запись журнала чат-сессии
type ChatLog struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Payment модели

// PaymentIntentRequest запрос на создание платежного намерения
// Сумма передается в минимальных единицах валюты (пайсы для PKR)
type PaymentIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentIntentResponse непрозрачные данные для завершения платежа на стороне Stripe
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// Wellness модели

// MoodLogRequest запрос на сохранение настроения
type MoodLogRequest struct {
	Sentiment string `json:"sentiment"`
}

// ReportEntry запись отчета пользователя
type ReportEntry struct {
	ID             string `json:"_id,omitempty"`
	SessionID      string `json:"sessionId,omitempty"`
	Sentiment      string `json:"sentiment,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}
