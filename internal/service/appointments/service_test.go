package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenio-app/Serenio-Client/internal/domain"
	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	appointments []serenioapi.Appointment
	fetchErr     error
	cancelErr    error
	completeErr  error
	cancelled    []string
	completed    []string
}

func (f *fakeClient) GetMyAppointments(ctx context.Context) (*serenioapi.MyAppointmentsResponse, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &serenioapi.MyAppointmentsResponse{Appointments: f.appointments}, nil
}

func (f *fakeClient) CancelAppointment(ctx context.Context, id string) (*serenioapi.Appointment, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return &serenioapi.Appointment{ID: id, Date: "2026-09-10", TimeSlot: "10:00", Status: "Cancelled"}, nil
}

func (f *fakeClient) CompleteAppointment(ctx context.Context, id string) (*serenioapi.Appointment, error) {
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	f.completed = append(f.completed, id)
	return &serenioapi.Appointment{ID: id, Date: "2026-09-10", TimeSlot: "10:00", Status: "Completed"}, nil
}

func dto(id, date, slot, status string) serenioapi.Appointment {
	return serenioapi.Appointment{ID: id, UserID: "u1", Date: date, TimeSlot: slot, Status: status}
}

func TestRefresh_SortsForDisplay(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("cancelled-early", "2026-09-01", "09:00", "Cancelled"),
		dto("booked-late", "2026-09-20", "10:00", "Booked"),
		dto("completed", "2026-09-05", "11:00", "Completed"),
		dto("booked-early", "2026-09-02", "12:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})

	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Cached()
	ids := make([]string, len(got))
	for i, a := range got {
		ids[i] = a.ID
	}

	// Booked раньше Completed раньше Cancelled, внутри статуса по дате
	assert.Equal(t, []string{"booked-early", "booked-late", "completed", "cancelled-early"}, ids)
}

func TestRefresh_SkipsMalformedEntries(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("ok", "2026-09-02", "10:00", "Booked"),
		dto("broken", "someday", "10:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})

	require.NoError(t, svc.Refresh(context.Background()))
	got := svc.Cached()
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestRefresh_ReplacesWholesale(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("a1", "2026-09-02", "10:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	client.appointments = []serenioapi.Appointment{
		dto("a2", "2026-09-03", "11:00", "Booked"),
	}
	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Cached()
	require.Len(t, got, 1)
	assert.Equal(t, "a2", got[0].ID)
}

func TestCancel_Optimistic(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("a1", "2026-09-10", "10:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Cancel(context.Background(), "a1"))

	got := svc.Cached()
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusCancelled, got[0].Status)
	assert.Equal(t, []string{"a1"}, client.cancelled)
}

func TestCancel_RevertsOnServerFailure(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("a1", "2026-09-10", "10:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	client.cancelErr = serenioapi.ErrNetwork
	err := svc.Cancel(context.Background(), "a1")
	assert.ErrorIs(t, err, serenioapi.ErrNetwork)

	// Статус вернулся к Booked: отмена не прошла
	got := svc.Cached()
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusBooked, got[0].Status)
}

func TestCancel_NotFoundOnServer(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("a1", "2026-09-10", "10:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	client.cancelErr = serenioapi.ErrNotFound
	err := svc.Cancel(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_OnlyBookedCanBeCancelled(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("done", "2026-09-10", "10:00", "Completed"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Cancel(context.Background(), "done")
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, client.cancelled)
}

func TestCancel_UnknownAppointment(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Cancel(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestComplete_RefreshesList(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("a1", "2026-09-10", "10:00", "Booked"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	client.appointments = []serenioapi.Appointment{
		dto("a1", "2026-09-10", "10:00", "Completed"),
	}
	require.NoError(t, svc.Complete(context.Background(), "a1"))

	got := svc.Cached()
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusCompleted, got[0].Status)
	assert.Equal(t, []string{"a1"}, client.completed)
}

func TestStats(t *testing.T) {
	client := &fakeClient{appointments: []serenioapi.Appointment{
		dto("a1", "2026-09-01", "09:00", "Booked"),
		dto("a2", "2026-09-02", "10:00", "Booked"),
		dto("a3", "2026-09-03", "11:00", "Completed"),
		dto("a4", "2026-09-04", "12:00", "Cancelled"),
	}}
	svc := NewService(client, noopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	stats := svc.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Booked)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
}
