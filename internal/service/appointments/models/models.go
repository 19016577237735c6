package models

import (
	"time"

	"github.com/serenio-app/Serenio-Client/internal/domain"
)

// AppointmentView представление записи для отображения
type AppointmentView struct {
	ID               string  `json:"id"`
	PsychologistID   string  `json:"psychologistId"`
	PsychologistName string  `json:"psychologistName,omitempty"`
	Specialization   string  `json:"specialization,omitempty"`
	Date             string  `json:"date"`     // "2025-10-15"
	TimeSlot         string  `json:"timeSlot"` // "10:00"
	Status           string  `json:"status"`
	Reason           *string `json:"reason,omitempty"`
	PaymentStatus    *string `json:"paymentStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse список записей в порядке отображения
type AppointmentListResponse struct {
	Appointments []AppointmentView `json:"appointments"`
}

// Stats сводка по статусам записей
type Stats struct {
	Total     int `json:"total"`
	Booked    int `json:"booked"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentView {
	if a == nil {
		return nil
	}

	return &AppointmentView{
		ID:               a.ID,
		PsychologistID:   a.PsychologistID,
		PsychologistName: a.PsychologistName,
		Specialization:   a.Specialization,
		Date:             a.Date.Format(domain.DateFormat),
		TimeSlot:         a.TimeSlot.String(),
		Status:           string(a.Status),
		Reason:           a.Reason,
		PaymentStatus:    a.PaymentStatus,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentView, 0, len(appointments)),
	}

	for i := range appointments {
		if view := FromDomainAppointment(&appointments[i]); view != nil {
			resp.Appointments = append(resp.Appointments, *view)
		}
	}

	return resp
}
