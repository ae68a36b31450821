package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"postboard/internal/app/server/api"
	healthAPI "postboard/internal/app/server/api/http/health"
	"postboard/internal/config"
	"postboard/internal/core/apiclient"
	"postboard/internal/core/metrics"
	postsAccessor "postboard/internal/features/posts/api"
	"postboard/internal/features/posts/application"
	"postboard/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)

	m := metrics.New()
	client := apiclient.NewClient(conf.API.BaseURL,
		apiclient.WithHTTPClient(&http.Client{Transport: m.InstrumentTransport(nil)}),
		apiclient.WithLogger(log),
	)

	router := api.New(api.Deps{
		Posts:     application.NewService(postsAccessor.New(client), log),
		Upstream:  healthAPI.UpstreamCheck(client, "/posts/1"),
		Metrics:   m,
		HomeLimit: conf.Posts.HomeLimit,
		PageLimit: conf.Posts.PageLimit,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server",
			slog.String("addr", conf.Server.RunAddress),
			slog.String("api_base_url", conf.API.BaseURL),
			slog.String("env", conf.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Err(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
