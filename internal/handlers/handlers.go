// Package handlers exposes the admin API over gin: authentication, page
// data, reads forwarded to the remote API and the server actions.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/audit"
	"github.com/imrishuroy/go-ecom-admin/internal/idempotency"
	"github.com/imrishuroy/go-ecom-admin/internal/logging"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/session"
)

// HandlerConfig groups dependencies for the admin routes.
type HandlerConfig struct {
	Client   *remote.Client
	Actions  *actions.Service
	Sessions *session.Manager
	// Idempotency guards create submissions. Nil disables it.
	Idempotency *idempotency.Store
	// Audit serves mutation history. Nil disables the history route.
	Audit  *audit.Store
	Logger *zap.Logger
}

type handler struct {
	client   *remote.Client
	actions  *actions.Service
	sessions *session.Manager
	idem     *idempotency.Store
	audit    *audit.Store
	log      *zap.Logger
}

// RegisterRoutes registers the auth and admin routes on r. The session
// middleware must already be installed on r.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	h := &handler{
		client:   cfg.Client,
		actions:  cfg.Actions,
		sessions: cfg.Sessions,
		idem:     cfg.Idempotency,
		audit:    cfg.Audit,
		log:      cfg.Logger,
	}
	if h.log == nil {
		h.log = zap.L()
	}

	auth := r.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/forgot-password", h.forgotPassword)
	auth.POST("/reset-password/:token", h.resetPassword)

	signedIn := r.Group("/", session.RequireUser(cfg.Client))
	signedIn.GET("/auth/me", h.me)
	r.POST("/auth/logout", h.logout)

	admin := signedIn.Group("/admin")
	admin.GET("/dashboard", h.dashboardPage)
	h.discountRoutes(admin.Group("/discounts"))
	h.productRoutes(admin.Group("/products"))
	h.categoryRoutes(admin.Group("/categories"))
	h.brandRoutes(admin.Group("/brands"))
	h.variantRoutes(admin.Group("/variants"))
	h.shippingRoutes(admin.Group("/shipping"))
	h.orderRoutes(admin.Group("/orders"))
	h.userRoutes(admin.Group("/users"))
	if h.audit != nil {
		admin.GET("/audit/:resourceId", h.auditHistory)
	}
}

func caller(c *gin.Context) actions.Caller {
	return actions.Caller{Actor: session.Actor(c), RequestID: logging.RequestID(c)}
}

func respond(c *gin.Context, res actions.Result) {
	c.JSON(res.HTTPStatus(), res)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, actions.Result{Message: msg})
}

// forward answers with the remote body of a read, or the failure.
func forward(c *gin.Context, read func(ctx context.Context) (json.RawMessage, error)) {
	body, err := read(c.Request.Context())
	if err != nil {
		respond(c, actions.FromError(err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func pageOf(c *gin.Context) remote.Page {
	var p remote.Page
	_ = c.ShouldBindQuery(&p)
	return p
}
