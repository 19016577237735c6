package serenioapi

import (
	"context"
	"net/http"
)

// Login выполняет вход и возвращает токены сессии
// Единственные вызовы без bearer-токена - login и register
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	c.log.Info("Login: authenticating %s", req.Email)

	var resp AuthResponse
	err := c.do(ctx, call{
		endpoint: "auth_login",
		method:   http.MethodPost,
		path:     "/api/auth/login",
		body:     req,
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("Login: authenticated %s", req.Email)
	return &resp, nil
}

// Register регистрирует нового пользователя и возвращает токены сессии
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	c.log.Info("Register: creating account for %s", req.Email)

	var resp AuthResponse
	err := c.do(ctx, call{
		endpoint: "auth_register",
		method:   http.MethodPost,
		path:     "/api/auth/register",
		body:     req,
		out:      &resp,
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("Register: account created for %s", req.Email)
	return &resp, nil
}
