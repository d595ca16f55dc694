package api

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/animeflow/animeflow/session"
	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type ServerConfig struct {
	// ShowStartBanner indicates whether to show or hide the server start console message.
	ShowStartBanner bool

	// HttpAddr is the TCP address to listen on (eg. `127.0.0.1:8085`).
	HttpAddr string

	// AllowedOrigins lists the CORS origins. Empty sends no CORS headers, so
	// browsers only reach the API from its own origin.
	AllowedOrigins []string

	// AccessLog prints one line per request to stdout.
	AccessLog bool

	// ShutdownTimeout bounds how long in-flight requests may finish once ctx is done.
	ShutdownTimeout time.Duration
}


// Serve runs the API until ctx is cancelled.
func Serve(ctx context.Context, service *session.Service, cfg *ServerConfig) error {
	app := NewApp(service, cfg)

	server := &http.Server{
		Handler:           adaptor.FiberApp(app),
		Addr:              cfg.HttpAddr,
		ReadHeaderTimeout: 30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	if cfg.ShowStartBanner {
		banner(server.Addr)
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	ttw := cfg.ShutdownTimeout
	if ttw == 0 {
		ttw = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ttw)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func banner(addr string) {
	const schema = "http"

	date := new(strings.Builder)
	log.New(date, "", log.LstdFlags).Print()

	bold := color.New(color.Bold).Add(color.FgGreen)
	bold.Printf(
		"%s Server started at %s\n",
		strings.TrimSpace(date.String()),
		color.CyanString("%s://%s", schema, addr),
	)

	regular := color.New()
	regular.Printf("├─ Catalog: %s\n", color.CyanString("%s://%s%s", schema, addr, catalogURL))
	regular.Printf("├─ Search: %s\n", color.CyanString("%s://%s%s?q=", schema, addr, searchURL))
	regular.Printf("├─ Episodes: %s\n", color.CyanString("%s://%s%s?url=", schema, addr, episodesURL))
	regular.Printf("├─ Video: %s\n", color.CyanString("%s://%s%s?url=", schema, addr, videoURL))
	regular.Printf("└─ History: %s\n", color.CyanString("%s://%s%s", schema, addr, historyURL))
}
