package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"unistat-gateway/internal/config"
	"unistat-gateway/internal/display"
	"unistat-gateway/internal/opsserver"
	"unistat-gateway/internal/statserver"
	"unistat-gateway/internal/sysinfo"
)

func main() {
	cfg := config.LoadFromEnv()
	sys := sysinfo.NewCollector()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sys); err != nil {
		log.Fatal(err)
	}
}

// run serves until a fatal startup error or until ctx is done (SIGINT or
// SIGTERM in main), then closes the listeners so the process exits.
func run(ctx context.Context, cfg config.Config, sys *sysinfo.Collector) error {
	var ops *http.Server
	if cfg.OpsAddr != "" {
		r, err := opsserver.NewRouter(cfg, sys)
		if err != nil {
			return fmt.Errorf("ops router init: %w", err)
		}

		ops = &http.Server{
			Addr:              cfg.OpsAddr,
			Handler:           r,
			ReadHeaderTimeout: 2 * time.Second,
		}
		go func() {
			log.Printf("ops server listening on %s", cfg.OpsAddr)
			if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("ops server: %v", err)
			}
		}()
	}

	if cfg.SerialPort != "" {
		d := display.New(cfg.SerialPort, cfg.SerialBaud)
		go d.Run(ctx, sys.Snapshot, cfg.DisplayInterval)
	}

	log.Println("Welcome to the Unikernel World!")

	srv := statserver.New(cfg.ListenAddr, sys)
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	_ = srv.Close()

	if ops != nil {
		sdctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = ops.Shutdown(sdctx)
	}
	return nil
}
