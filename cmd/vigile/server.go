package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"

	"github.com/plumesocial/vigile/moderation"
	"github.com/plumesocial/vigile/moderation/detectors"
	"github.com/plumesocial/vigile/moderation/engine"
	"github.com/plumesocial/vigile/moderation/modstore"
	"github.com/plumesocial/vigile/moderation/offenderstore"
)

type Server struct {
	logger  *slog.Logger
	engine  *moderation.Engine
	records modstore.Store
}

type Config struct {
	DatabaseURL      string
	MaxDBConnections int
	RedisURL         string
	AdminWebhookURL  string
	Logger           *slog.Logger
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	db, err := setupDatabase(config.DatabaseURL, config.MaxDBConnections)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	records, err := modstore.NewGormStore(db)
	if err != nil {
		return nil, fmt.Errorf("initializing record store: %w", err)
	}

	var offenders offenderstore.OffenderStore
	var notifier engine.Notifier
	if config.RedisURL != "" {
		offenders, err = offenderstore.NewRedisOffenderStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis offender store: %w", err)
		}
		notifier, err = engine.NewRedisQueueNotifier(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis notifier: %w", err)
		}
		logger.Info("using redis offender store and notification queue")
	} else {
		offenders, err = offenderstore.NewGormOffenderStore(db)
		if err != nil {
			return nil, fmt.Errorf("initializing offender store: %w", err)
		}
		if config.AdminWebhookURL != "" {
			notifier, err = engine.NewWebhookNotifier(config.AdminWebhookURL)
			if err != nil {
				return nil, err
			}
		}
	}

	eng := &moderation.Engine{
		Logger:    logger,
		Detectors: detectors.Defaults(),
		Offenders: offenders,
		Records:   records,
		Notifier:  notifier,
	}

	return &Server{
		logger:  logger,
		engine:  eng,
		records: records,
	}, nil
}

func (srv *Server) RunAPI(bind string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(srv.logger))
	e.Use(middleware.Recover())

	e.GET("/_health", srv.handleHealthCheck)
	e.POST("/api/moderation/evaluate", srv.handleEvaluate)
	e.GET("/api/moderation/records", srv.handleListRecords)
	e.GET("/api/moderation/summary", srv.handleSummary)

	srv.logger.Info("moderation API listening", "bind", bind)
	return e.Start(bind)
}

func (srv *Server) RunMetrics(listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, mux)
}

type GenericStatus struct {
	Daemon string `json:"daemon"`
	Status string `json:"status"`
}

func (srv *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "vigile"})
}

type evaluateRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	AuthorID    string `json:"authorId"`
}

// Synchronous evaluation boundary consumed by the post/comment/message
// services. If shouldBlock is true in the response, the caller must not
// persist the underlying content.
func (srv *Server) handleEvaluate(c echo.Context) error {
	var req evaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	verdict, err := srv.engine.Evaluate(c.Request().Context(), moderation.SubmissionContext{
		Content:     req.Content,
		ContentType: moderation.ContentType(req.ContentType),
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(200, engine.NewVerdictView(verdict))
}

// Read-only admin review surface: recent moderation records, optionally
// filtered by severity and time window.
func (srv *Server) handleListRecords(c echo.Context) error {
	q := modstore.RecordQuery{
		Severity: c.QueryParam("severity"),
	}
	if raw := c.QueryParam("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid 'since' timestamp")
		}
		q.Since = since
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid 'limit'")
		}
		q.Limit = limit
	}

	recs, err := srv.records.List(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recs == nil {
		recs = []modstore.ModerationRecord{}
	}
	return c.JSON(200, recs)
}

// Aggregate counts for the admin dashboard, split in to warnings and blocks.
func (srv *Server) handleSummary(c echo.Context) error {
	q := modstore.RecordQuery{
		Severity: c.QueryParam("severity"),
	}
	if raw := c.QueryParam("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid 'since' timestamp")
		}
		q.Since = since
	}

	sum, err := srv.records.Summarize(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(200, sum)
}
