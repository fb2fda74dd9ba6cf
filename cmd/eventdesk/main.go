package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/config"
	"github.com/geocoder89/eventdesk/internal/console"
	"github.com/geocoder89/eventdesk/internal/notifications"
	"github.com/geocoder89/eventdesk/internal/observability"
	"github.com/geocoder89/eventdesk/internal/repo/textfile"
	"github.com/geocoder89/eventdesk/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, auth.ErrAccessDenied) {
			fmt.Fprintf(os.Stderr, "eventdesk: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := observability.NewLogger(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := config.WithTimeout(5 * time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := observability.NewProm(reg)
	defer writeMetrics(log, cfg.MetricsTextfile, reg)

	users := textfile.NewUsersRepo(cfg.UsersFile, log, prom)
	sessionMetrics := observability.NewSessionMetrics()

	svc := service.New(service.Deps{
		Events:        textfile.NewEventsRepo(cfg.EventsFile, log, prom),
		Registrations: textfile.NewRegistrationsRepo(cfg.RegistrationsFile, log, prom),
		Users:         users,
		Notifier: notifications.NewProtectedNotifier(
			notifications.NewLogNotifier(log),
			notifications.ProtectedNotifierConfig{},
		),
		Log:     log,
		Prom:    prom,
		Session: sessionMetrics,
	})

	session := auth.NewSession(auth.NewAuthenticator(users, log, prom), cfg.MaxLoginAttempts)

	sh := console.New(svc, session, os.Stdin, os.Stdout,
		console.WithTerminal(os.Stdin),
		console.WithLogger(log),
		console.WithSessionMetrics(sessionMetrics),
	)

	log.Debug("eventdesk starting", "env", cfg.Env, "data_dir", cfg.DataDir)
	return sh.Run(ctx)
}

func writeMetrics(log *slog.Logger, path string, g prometheus.Gatherer) {
	if err := observability.WriteTextfile(path, g); err != nil {
		log.Error("write metrics textfile failed", "path", path, "err", err)
	}
}
