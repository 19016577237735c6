package chat

import (
	"context"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// SerenioClient интерфейс клиента backend API
type SerenioClient interface {
	SendChatMessage(ctx context.Context, req *serenioapi.ChatMessageRequest) (*serenioapi.ChatMessageResponse, error)
	SaveChatLog(ctx context.Context, req *serenioapi.ChatLogRequest) error
	GetChatSessions(ctx context.Context) ([]string, error)
	GetSessionLogs(ctx context.Context, sessionID string) ([]serenioapi.ChatLog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
