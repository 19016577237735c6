package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
	"github.com/serenio-app/Serenio-Client/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeClient позволяет подменить ответ и выполнить действие в момент fetch
type fakeClient struct {
	slots   []string
	err     error
	onFetch func()
}

func (f *fakeClient) GetAvailableSlots(ctx context.Context, psychologistID string, date time.Time) (*serenioapi.AvailableSlotsResponse, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &serenioapi.AvailableSlotsResponse{AvailableSlots: f.slots}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(client *fakeClient) *UseCase {
	uc := NewUseCase(client, "09:00", "17:00", 60, noopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func testDate() time.Time {
	return time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
}

func TestExecute_CanonicalOrder(t *testing.T) {
	// Сервер отдает слоты вперемешку - ответ должен быть в каноническом порядке
	client := &fakeClient{slots: []string{"15:00", "09:00", "11:00"}}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "11:00", "15:00"}, resp.Slots)
}

func TestExecute_DropsNonCanonicalSlots(t *testing.T) {
	client := &fakeClient{slots: []string{"09:00", "09:17", "26:00"}}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00"}, resp.Slots)
}

func TestExecute_EmptyAvailability(t *testing.T) {
	client := &fakeClient{slots: nil}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FetchFailureIsUnknownNotEmpty(t *testing.T) {
	client := &fakeClient{err: serenioapi.ErrNetwork}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Nil(t, uc.LastKnown())
}

func TestExecute_AuthExpiredPassthrough(t *testing.T) {
	client := &fakeClient{err: serenioapi.ErrAuthExpired}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	assert.ErrorIs(t, err, serenioapi.ErrAuthExpired)
}

func TestExecute_SupersededResultDiscarded(t *testing.T) {
	client := &fakeClient{slots: []string{"09:00"}}
	uc := newTestUseCase(client)

	// Пока первый запрос в полете, пользователь переключает дату:
	// моделируем это сбросом снимка, который выпускает новый номер запроса
	client.onFetch = func() {
		client.onFetch = nil
		uc.Invalidate()
	}

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Nil(t, uc.LastKnown())
}

func TestExecute_SupersededBeatsFetchError(t *testing.T) {
	// Устаревший результат отбрасывается даже если сам запрос провалился
	client := &fakeClient{err: serenioapi.ErrNetwork}
	uc := newTestUseCase(client)

	client.onFetch = func() {
		client.onFetch = nil
		uc.Invalidate()
	}

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	assert.ErrorIs(t, err, ErrSuperseded)
}

func TestExecute_SnapshotStored(t *testing.T) {
	client := &fakeClient{slots: []string{"09:00", "10:00"}}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	require.NoError(t, err)

	snapshot := uc.LastKnown()
	require.NotNil(t, snapshot)
	assert.Equal(t, resp.Slots, snapshot.Slots)
}

func TestInvalidate_ClearsSnapshot(t *testing.T) {
	client := &fakeClient{slots: []string{"09:00"}}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: "p1", Date: testDate()})
	require.NoError(t, err)
	require.NotNil(t, uc.LastKnown())

	uc.Invalidate()
	assert.Nil(t, uc.LastKnown())
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeClient{})

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: "", Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PsychologistID: "p1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		PsychologistID: "p1",
		Date:           time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
