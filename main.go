package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/Junate-World/talented-league/config"
	"github.com/Junate-World/talented-league/db"
	"github.com/Junate-World/talented-league/handlers"
	"github.com/Junate-World/talented-league/league"
	applog "github.com/Junate-World/talented-league/logger"
	mw "github.com/Junate-World/talented-league/middleware"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	standings := league.NewStandingsService(bdb, logger)
	matches := league.NewMatchService(bdb, standings, logger)
	h := handlers.New(bdb, matches, standings, cfg.JWTKey())

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	api := e.Group("/api")
	api.POST("/signin", h.Signin)
	api.GET("/table", h.Table)
	api.GET("/stats", h.Stats)
	api.GET("/seasons", h.Seasons)
	api.GET("/teams", h.Teams)
	api.GET("/teams/:id/comments", h.TeamComments)
	api.POST("/teams/:id/comments", h.CreateTeamComment)
	api.GET("/players", h.Players)
	api.GET("/matches", h.Matches)
	api.GET("/matches/:id", h.MatchDetail)

	// Protected – require valid JWT in Authorization header
	admin := e.Group("/admin", mw.JWT(cfg.JWTKey()))
	admin.POST("/seasons", h.CreateSeason)
	admin.POST("/seasons/:id/activate", h.ActivateSeason)
	admin.POST("/seasons/:id/teams", h.AddSeasonTeam)
	admin.POST("/seasons/:id/recompute", h.RecomputeStandings)
	admin.POST("/teams", h.CreateTeam)
	admin.POST("/players", h.CreatePlayer)
	admin.POST("/matches", h.CreateMatch)
	admin.POST("/matches/:id/result", h.RecordResult)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
