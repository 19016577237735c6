package serenioapi

import (
	"context"
	"net/http"
)

// LogMood сохраняет отметку настроения пользователя
func (c *Client) LogMood(ctx context.Context, sentiment string) error {
	return c.do(ctx, call{
		endpoint:      "mood_log",
		method:        http.MethodPost,
		path:          "/api/mood/log",
		body:          &MoodLogRequest{Sentiment: sentiment},
		authenticated: true,
	})
}

// GetUserReports получает отчеты текущего пользователя
func (c *Client) GetUserReports(ctx context.Context) ([]ReportEntry, error) {
	var resp []ReportEntry
	err := c.do(ctx, call{
		endpoint:      "reports_user",
		method:        http.MethodGet,
		path:          "/api/reports/user",
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
