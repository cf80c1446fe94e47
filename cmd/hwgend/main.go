// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// hwgend serves the hwgen code generators over HTTP.
//
// Settings are read from a .env file, command line flags and HWGEN_*
// environment variables. HTTP/2 is accepted without TLS.
//
package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/db47h/hwgen/internal/config"
	"github.com/db47h/hwgen/service"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	log.SetPrefix("hwgend: ")

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	svc, err := service.New(service.Config{
		Options:   cfg.Options(),
		CacheSize: cfg.CacheSize,
		Strict:    cfg.Strict,
		Logger:    log.Default(),
	})
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(svc.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("listening on %s", ln.Addr())
	if err := serve(ctx, srv, ln, 5*time.Second); err != nil {
		log.Fatal(err)
	}
	hits, misses := svc.Stats()
	log.Printf("stopped: %d cache hits, %d misses", hits, misses)
}

// serve serves srv on ln until ctx is done, then shuts it down. It returns
// once the in-flight requests have completed or the grace period has expired.
//
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		done <- srv.Shutdown(sctx)
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve returns as soon as Shutdown starts.
	return errors.Wrap(<-done, "shutdown")
}
