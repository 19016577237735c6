package serenioapi

import (
	"context"
	"net/http"
)

// SendChatMessage отправляет сообщение чат-боту и возвращает ответ
// Инференс выполняется на стороне backend; клиент видит только текст ответа
func (c *Client) SendChatMessage(ctx context.Context, req *ChatMessageRequest) (*ChatMessageResponse, error) {
	var resp ChatMessageResponse
	err := c.do(ctx, call{
		endpoint:      "chatbot_message",
		method:        http.MethodPost,
		path:          "/api/chatbot/message",
		body:          req,
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// SaveChatLog сохраняет сообщение пользователя в журнал сессии
func (c *Client) SaveChatLog(ctx context.Context, req *ChatLogRequest) error {
	return c.do(ctx, call{
		endpoint:      "chatlogs_save",
		method:        http.MethodPost,
		path:          "/api/chatlogs",
		body:          req,
		authenticated: true,
	})
}

// GetChatSessions получает идентификаторы чат-сессий пользователя
func (c *Client) GetChatSessions(ctx context.Context) ([]string, error) {
	var resp []string
	err := c.do(ctx, call{
		endpoint:      "chatlogs_sessions",
		method:        http.MethodGet,
		path:          "/api/chatlogs/sessions",
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// GetSessionLogs получает журнал одной чат-сессии
func (c *Client) GetSessionLogs(ctx context.Context, sessionID string) ([]ChatLog, error) {
	var resp []ChatLog
	err := c.do(ctx, call{
		endpoint:      "chatlogs_session",
		method:        http.MethodGet,
		path:          "/api/chatlogs/session/" + sessionID,
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
