package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/eventdesk/internal/config"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/observability"
	"github.com/geocoder89/eventdesk/internal/repo/textfile"
	"github.com/geocoder89/eventdesk/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Exit codes: 0 consistent (or repaired), 1 error, 2 drift found.
const exitDrift = 2

func main() {
	repair := flag.Bool("repair", false, "rewrite events and registrations to a consistent state")
	flag.Parse()

	code, err := run(*repair, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventdesk-check: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(repair bool, out io.Writer) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 1, err
	}

	log := observability.NewLogger(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.ServiceName+"-check", cfg.OTLPEndpoint)
	if err != nil {
		return 1, err
	}
	defer func() {
		ctx, cancel := config.WithTimeout(5 * time.Second)
		defer cancel()
		_ = shutdownTracer(ctx)
	}()

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)
	defer func() {
		if err := observability.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			log.Error("write metrics textfile failed", "err", err)
		}
	}()

	svc := service.New(service.Deps{
		Events:        textfile.NewEventsRepo(cfg.EventsFile, log, prom),
		Registrations: textfile.NewRegistrationsRepo(cfg.RegistrationsFile, log, prom),
		Log:           log,
		Prom:          prom,
	})

	return check(ctx, svc, repair, out)
}

func check(ctx context.Context, svc *service.Service, repair bool, out io.Writer) (int, error) {
	var (
		report registration.Report
		err    error
	)
	if repair {
		report, err = svc.RepairConsistency(ctx)
	} else {
		report, err = svc.CheckConsistency(ctx)
	}
	if err != nil {
		return 1, err
	}

	if report.Consistent() {
		fmt.Fprintln(out, "ok: events and registrations are consistent")
		return 0, nil
	}

	for _, m := range report.Mismatches {
		fmt.Fprintf(out, "count mismatch: %q stores %d, ledger has %d\n", m.EventName, m.Stored, m.Actual)
	}
	for _, d := range report.Dangling {
		fmt.Fprintf(out, "dangling registration: %s -> %q (%s)\n", d.StudentUsername, d.EventName, d.RegistrationDate)
	}

	if repair {
		fmt.Fprintln(out, "repaired")
		return 0, nil
	}
	return exitDrift, nil
}
