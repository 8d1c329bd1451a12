package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/idempotency"
	"github.com/imrishuroy/go-ecom-admin/internal/session"
)

// IdempotencyHeader carries the client-chosen key of a form submission.
const IdempotencyHeader = "Idempotency-Key"

// bodyRecorder keeps a copy of what the handler writes.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// idempotencyKey namespaces a client key by the signed-in admin, so two
// admins reusing a key never see each other's responses.
func idempotencyKey(actor, key string) string {
	return actor + "|" + key
}

// idempotent makes a create route safe to resubmit with the same key: a
// completed submission is replayed, one still running answers 409, and a
// failed one runs again. Requests without the header are not tracked.
func (h *handler) idempotent() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if h.idem == nil || key == "" {
			c.Next()
			return
		}
		key = idempotencyKey(session.Actor(c), key)
		ctx := c.Request.Context()
		scope := c.Request.Method + " " + c.FullPath()

		decision, rec, err := h.idem.Begin(ctx, key, scope)
		if errors.Is(err, idempotency.ErrKeyReused) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
				actions.Result{Message: "Idempotency key was already used for another request"})
			return
		}
		if err != nil {
			h.log.Error("idempotency check failed", zap.String("key", key), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				actions.Result{Message: "idempotency check failed"})
			return
		}

		switch decision {
		case idempotency.Replay:
			status := rec.ResponseStatus
			if status == 0 {
				status = http.StatusOK
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(status, "application/json; charset=utf-8", []byte(rec.ResponseBody))
			c.Abort()
			return
		case idempotency.Busy:
			c.AbortWithStatusJSON(http.StatusConflict, actions.Result{Message: "request already in progress"})
			return
		}

		w := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		// only successes are replayed; a rejected form may be fixed and resent
		status := w.Status()
		if status >= 200 && status < 300 {
			err = h.idem.MarkDone(ctx, key, w.buf.String(), status)
		} else {
			err = h.idem.MarkFailed(ctx, key, fmt.Sprintf("status %d", status))
		}
		if err != nil {
			h.log.Warn("idempotency update failed", zap.String("key", key), zap.Error(err))
		}
	}
}
