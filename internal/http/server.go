package http

import (
	"context"
	"log"
	"net/http"

	"invoicing-backend/internal/action"
	"invoicing-backend/internal/auth"
	"invoicing-backend/internal/cache"
	"invoicing-backend/internal/config"
	"invoicing-backend/internal/http/middleware"
	"invoicing-backend/internal/metrics"
	"invoicing-backend/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, mysqlDB *sqlx.DB, rds *redis.Client, zlog *zap.Logger) *Server {
	// repos
	invoicesRepo := repository.NewInvoicesRepository(mysqlDB)
	customersRepo := repository.NewCustomersRepository(mysqlDB)
	usersRepo := repository.NewUsersRepository(mysqlDB)

	// collaborators
	listing := cache.NewListing(rds, cfg.Cache.ListingTTL, zlog)
	verifier := auth.NewCredentialVerifier(usersRepo)
	tokens := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL)

	// actions
	invoiceActions := action.NewInvoices(invoicesRepo, listing, zlog)
	sessionActions := action.NewSessions(verifier)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// auth (the login page itself is rendered elsewhere)
	e.GET("/login", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "login required"})
	})
	e.POST("/login", loginHandler(sessionActions, tokens))
	e.POST("/logout", logoutHandler())

	// invoice routes behind the session cookie
	sessionMW := middleware.SessionMiddleware(tokens)

	inv := e.Group("/invoices", sessionMW)
	inv.GET("", listInvoicesHandler(invoicesRepo, listing))
	inv.GET("/summary", summaryHandler(invoicesRepo))
	inv.POST("", createInvoiceHandler(invoiceActions))
	inv.POST("/:id", updateInvoiceHandler(invoiceActions))
	inv.POST("/:id/delete", deleteInvoiceHandler(invoiceActions))

	e.GET("/customers", listCustomersHandler(customersRepo), sessionMW)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	log.Printf("http: listening on %s", addr)
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
