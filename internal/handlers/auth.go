package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/session"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (h *handler) login(c *gin.Context) {
	var in validation.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	res, token := h.actions.Login(c.Request.Context(), in)
	if res.Success {
		if err := h.sessions.SetToken(c.Writer, c.Request, token); err != nil {
			h.log.Error("save session failed", zap.Error(err))
			respond(c, actions.FromError(err))
			return
		}
	}
	respond(c, res)
}

// logout always ends the local session, even when the remote call fails or
// there was no session to begin with.
func (h *handler) logout(c *gin.Context) {
	res := h.actions.Logout(c.Request.Context())
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.log.Warn("clear session failed", zap.Error(err))
	}
	if !res.Success {
		res = actions.Result{Success: true, Message: "Logged out"}
	}
	respond(c, res)
}

func (h *handler) me(c *gin.Context) {
	u, err := session.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, actions.Result{Message: "Unauthorized!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

func (h *handler) forgotPassword(c *gin.Context) {
	var in validation.ForgotPasswordInput
	if !bindJSON(c, &in) {
		return
	}
	respond(c, h.actions.ForgotPassword(c.Request.Context(), in))
}

func (h *handler) resetPassword(c *gin.Context) {
	var in validation.ResetPasswordInput
	if !bindJSON(c, &in) {
		return
	}
	respond(c, h.actions.ResetPassword(c.Request.Context(), c.Param("token"), in))
}
