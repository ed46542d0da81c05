package serve

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/grephuman/grephuman/pkg/db"
	"github.com/grephuman/grephuman/pkg/fetcher"
	"github.com/grephuman/grephuman/pkg/serp"
	"github.com/grephuman/grephuman/pkg/storage"
)

func ServeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
		gin.SetMode(gin.ReleaseMode)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	input := c.String("input")
	rawURL := c.String("url")
	if input == "" && rawURL == "" {
		fmt.Fprintln(os.Stderr, "Error: No page provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  grephuman serve --input serp.html`)
		fmt.Fprintln(os.Stderr, `  grephuman serve --url "https://www.google.com/search?q=best+laptops"`)
		os.Exit(1)
	}

	var rawHTML []byte
	var err error
	if rawURL != "" {
		f := fetcher.NewFetcher()
		rawHTML, err = f.Fetch(context.Background(), rawURL)
		if err != nil {
			logger.Error("failed to fetch page", "url", rawURL, "error", err)
			os.Exit(2)
		}
	} else {
		s := &storage.Storage{}
		rawHTML, err = s.ReadFile(input)
		if err != nil {
			logger.Error("failed to read input", "input", input, "error", err)
			os.Exit(2)
		}
	}

	page, err := serp.Parse(rawURL, bytes.NewReader(rawHTML))
	if err != nil {
		logger.Error("failed to parse page", "error", err)
		os.Exit(2)
	}
	page.InjectStyles()

	server := NewServer(page)
	pass := server.LabelAll()
	logger.Info("Initial labeling pass", "labeled", pass.Labeled, "slop", pass.Slop, "skipped", pass.Skipped)

	if database, err := db.Open(); err != nil {
		logger.Warn("Failed to open database, runs will not be recorded", "error", err)
	} else {
		defer database.Close()
		_, err := database.InsertRun(db.RunRecord{
			Source:  "serve",
			Total:   pass.Labeled + pass.Skipped,
			NotAI:   pass.NotAI,
			MaybeAI: pass.MaybeAI,
			Slop:    pass.Slop,
			Skipped: pass.Skipped,
		})
		if err != nil {
			logger.Warn("Failed to record run", "error", err)
		}
	}

	addr := c.String("addr")
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("Listening", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(2)
	}

	logger.Info("Server stopped")
	return nil
}
