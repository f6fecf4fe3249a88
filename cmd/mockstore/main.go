package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"shopgrip/internal/mockstore"
)

func main() {
	var (
		addr    string
		token   string
		latency time.Duration
		verbose bool
	)
	flag.StringVar(&addr, "addr", "127.0.0.1:8088", "Address to listen on")
	flag.StringVar(&token, "token", "", "Require this storefront access token")
	flag.DurationVar(&latency, "latency", 0, "Delay every response")
	flag.BoolVar(&verbose, "v", false, "Log every request")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	store := mockstore.New(mockstore.WithToken(token), mockstore.WithLatency(latency))
	srv := &http.Server{
		Addr:              addr,
		Handler:           store.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("mock storefront listening on http://%s/api/2025-01/graphql.json", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("mock storefront failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
		os.Exit(1)
	}
}
