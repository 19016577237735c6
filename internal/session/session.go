package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/serenio-app/Serenio-Client/internal/integrations/serenioapi"
)

// AuthAPI интерфейс аутентификационных вызовов backend
type AuthAPI interface {
	Login(ctx context.Context, req *serenioapi.LoginRequest) (*serenioapi.AuthResponse, error)
	Register(ctx context.Context, req *serenioapi.RegisterRequest) (*serenioapi.AuthResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session аутентифицированная сессия пользователя
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	UserID       string    `json:"userId"`
	Role         string    `json:"role"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
}

// Manager явный объект сессии: хранит токен и claims в памяти и в файле,
// выдает токен транспортному клиенту и очищается при истечении сессии.
// Замена неявного localStorage оригинального приложения.
type Manager struct {
	api  AuthAPI
	path string
	log  Logger

	mu      sync.RWMutex
	current *Session
}

// NewManager создает менеджер сессии с файловым хранилищем
// Существующая сессия загружается из файла (best-effort)
func NewManager(api AuthAPI, path string, log Logger) *Manager {
	m := &Manager{
		api:  api,
		path: path,
		log:  log,
	}
	m.loadFromFile()
	return m
}

// Login выполняет вход и сохраняет новую сессию
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := m.api.Login(ctx, &serenioapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return m.adopt(resp)
}

// Register регистрирует пользователя и сохраняет новую сессию
// Пустая роль означает роль по умолчанию на стороне backend
func (m *Manager) Register(ctx context.Context, name, email, password, role string) (*Session, error) {
	resp, err := m.api.Register(ctx, &serenioapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	return m.adopt(resp)
}

// adopt разбирает claims токена и персистит сессию
func (m *Manager) adopt(resp *serenioapi.AuthResponse) (*Session, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: backend returned no access token", ErrInternal)
	}

	claims, err := parseClaims(resp.AccessToken)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       claims.UserID,
		Role:         claims.Role,
		ExpiresAt:    claims.ExpiresAt,
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	if err := m.saveToFile(sess); err != nil {
		m.log.Warn("session: failed to persist session: %v", err)
	}

	m.log.Info("session: established for user=%s role=%s", sess.UserID, sess.Role)
	return sess, nil
}

// Current возвращает активную сессию или nil
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}

	// Истекшая сессия эквивалентна отсутствующей
	if !m.current.ExpiresAt.IsZero() && time.Now().After(m.current.ExpiresAt) {
		return nil
	}

	copied := *m.current
	return &copied
}

// AccessToken реализует serenioapi.TokenSource
func (m *Manager) AccessToken() string {
	sess := m.Current()
	if sess == nil {
		return ""
	}
	return sess.AccessToken
}

// Logout завершает сессию и удаляет файл
func (m *Manager) Logout() error {
	m.Clear()
	m.log.Info("session: logged out")
	return nil
}

// Clear сбрасывает сессию в памяти и на диске
// Используется и как обработчик ErrAuthExpired от транспортного клиента
func (m *Manager) Clear() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		m.log.Warn("session: failed to remove session file: %v", err)
	}
}

func (m *Manager) loadFromFile() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		m.log.Warn("session: corrupt session file, ignoring: %v", err)
		return
	}

	if sess.AccessToken == "" {
		return
	}

	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()
}

func (m *Manager) saveToFile(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return nil
}
