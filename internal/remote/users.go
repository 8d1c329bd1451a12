package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

// User is the signed-in admin's profile.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, in validation.LoginInput) (string, json.RawMessage, error) {
	body, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/user/admin-login", JSON: in,
		Fail: "Login failed!"})
	if err != nil {
		return "", nil, err
	}
	var token string
	if err := DecodeField(body, "access_token", &token); err != nil || token == "" {
		return "", nil, &APIError{Message: "Login failed!", Err: err}
	}
	return token, body, nil
}

// Profile returns the user the context's token belongs to. It returns
// (nil, nil) when there is no token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	if TokenFrom(ctx) == "" {
		return nil, nil
	}
	body, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/user",
		Fail: "Failed to fetch profile!"})
	if err != nil {
		return nil, err
	}
	var u User
	if err := DecodeField(body, "user", &u); err != nil {
		return nil, &APIError{Message: "Failed to fetch profile!", Err: err}
	}
	if u.ID == "" && u.Email == "" {
		return nil, nil
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/user/logout",
		Fail: "Logout failed!"})
}

func (c *Client) ForgotPassword(ctx context.Context, in validation.ForgotPasswordInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/user/forget-password", JSON: in,
		Fail: "Forgot password mail send failed!"})
}

func (c *Client) ResetPassword(ctx context.Context, token string, in validation.ResetPasswordInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/user/reset-password/" + pathID(token), JSON: in,
		Fail: "Reset password failed!"})
}

func (c *Client) ListUsers(ctx context.Context, p Page) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/user/all", Query: p.query(),
		Tags: []string{TagUser}, NoStore: true, Fail: "Failed to fetch users!"})
}

func (c *Client) SetUserStatus(ctx context.Context, id string, in validation.StatusInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/user/active-inactive/" + pathID(id), JSON: in,
		Fail: "Failed to active/inactive user!"})
}
