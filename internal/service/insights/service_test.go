package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	loggedMoods []string
	entries     []serenioapi.ReportEntry
	err         error
}

func (f *fakeClient) LogMood(ctx context.Context, sentiment string) error {
	if f.err != nil {
		return f.err
	}
	f.loggedMoods = append(f.loggedMoods, sentiment)
	return nil
}

func (f *fakeClient) GetUserReports(ctx context.Context) ([]serenioapi.ReportEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func TestLogMood(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, noopLogger{})

	require.NoError(t, svc.LogMood(context.Background(), "Positive"))
	require.NoError(t, svc.LogMood(context.Background(), "Negative"))
	require.NoError(t, svc.LogMood(context.Background(), "Neutral"))
	assert.Equal(t, []string{"Positive", "Negative", "Neutral"}, client.loggedMoods)
}

func TestLogMood_RejectsUnknownLabel(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, noopLogger{})

	err := svc.LogMood(context.Background(), "ecstatic")
	assert.ErrorIs(t, err, ErrInvalidMood)
	assert.Empty(t, client.loggedMoods)
}

func TestReports(t *testing.T) {
	client := &fakeClient{entries: []serenioapi.ReportEntry{
		{ID: "r1", SessionID: "s1", Sentiment: "Negative", Recommendation: "take a break", CreatedAt: "2026-08-20T10:00:00Z"},
		{ID: "r2", SessionID: "s2", Sentiment: "Positive", CreatedAt: "bad timestamp"},
	}}
	svc := NewService(client, noopLogger{})

	reports, err := svc.Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "r1", reports[0].ID)
	assert.Equal(t, "take a break", reports[0].Recommendation)
	assert.Equal(t, 2026, reports[0].CreatedAt.Year())

	// Битая дата не роняет отчет
	assert.True(t, reports[1].CreatedAt.IsZero())
}

func TestReports_PassesThroughError(t *testing.T) {
	client := &fakeClient{err: serenioapi.ErrAuthExpired}
	svc := NewService(client, noopLogger{})

	_, err := svc.Reports(context.Background())
	assert.ErrorIs(t, err, serenioapi.ErrAuthExpired)
}
