/*
Package main is the entry point for the Ukulima development proxy.

It loads configuration, initializes the global logging system, starts
the HTTP server fronting the marketplace API, and handles interrupt
signals (SIGINT, SIGTERM) for a graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mukky254/ukulima-go/internal/configs"
	"github.com/mukky254/ukulima-go/internal/pkg/logx"
	"github.com/mukky254/ukulima-go/internal/proxy"
)

func main() {
	cfg, err := configs.LoadProxyConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.Init(true)
	logx.Info("configuration loaded",
		"port", cfg.Port,
		"upstream", cfg.UpstreamURL,
		"allowed_origins", cfg.AllowedOrigins,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := proxy.NewMetrics()

	handler, err := proxy.New(cfg, metrics)
	if err != nil {
		logx.Fatal(err, "failed to build proxy handler")
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("devproxy listening on http://localhost%s, forwarding /api to %s", serverAddr, cfg.UpstreamURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "proxy failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("received shutdown signal, starting graceful shutdown")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "proxy forced to shutdown")
	}

	logx.Info("devproxy stopped")
}
