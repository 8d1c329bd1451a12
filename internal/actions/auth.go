package actions

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/metrics"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

// Login checks the credentials against the remote API. On success the
// returned token is to be stored in the session.
func (s *Service) Login(ctx context.Context, in validation.LoginInput) (Result, string) {
	if errs := validation.Check(s.forms, in, validation.LoginMessages); errs != nil {
		s.record(ctx, "auth.login", metrics.ValidationFailed)
		return invalid(errs), ""
	}
	token, body, err := s.client.Login(ctx, in)
	if err != nil {
		s.record(ctx, "auth.login", metrics.RemoteFailed)
		return failed(err), ""
	}
	s.record(ctx, "auth.login", metrics.ActionSucceeded)
	return ok(withoutToken(body)), token
}

// Logout tells the remote API the token is done with. The caller clears
// the session whatever the outcome.
func (s *Service) Logout(ctx context.Context) Result {
	body, err := s.client.Logout(ctx)
	if err != nil {
		s.log.Info("remote logout failed", zap.Error(err))
		s.record(ctx, "auth.logout", metrics.RemoteFailed)
		return failed(err)
	}
	s.record(ctx, "auth.logout", metrics.ActionSucceeded)
	return ok(body)
}

func (s *Service) ForgotPassword(ctx context.Context, in validation.ForgotPasswordInput) Result {
	if errs := validation.Check(s.forms, in, validation.LoginMessages); errs != nil {
		s.record(ctx, "auth.forgot-password", metrics.ValidationFailed)
		return invalid(errs)
	}
	body, err := s.client.ForgotPassword(ctx, in)
	if err != nil {
		s.record(ctx, "auth.forgot-password", metrics.RemoteFailed)
		return failed(err)
	}
	s.record(ctx, "auth.forgot-password", metrics.ActionSucceeded)
	return ok(body)
}

func (s *Service) ResetPassword(ctx context.Context, token string, in validation.ResetPasswordInput) Result {
	if errs := validation.Check(s.forms, in, validation.ResetPasswordMessages); errs != nil {
		s.record(ctx, "auth.reset-password", metrics.ValidationFailed)
		return invalid(errs)
	}
	body, err := s.client.ResetPassword(ctx, token, in)
	if err != nil {
		s.record(ctx, "auth.reset-password", metrics.RemoteFailed)
		return failed(err)
	}
	s.record(ctx, "auth.reset-password", metrics.ActionSucceeded)
	return ok(body)
}

// withoutToken keeps the access token out of the browser-visible result;
// it only ever travels in the HTTP-only cookie.
func withoutToken(body json.RawMessage) json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return body
	}
	delete(m, "access_token")
	out, err := json.Marshal(m)
	if err != nil {
		return body
	}
	return out
}
