package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/config"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/handler"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/handler/stream"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/track"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/service/ai"
	interviewService "github.com/akshtaaaaa/excel-mock-interviewer/internal/service/interview"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	recorder := logbook.NewRecorder(cfg.Interview.LogDir)
	if removed := recorder.Cleanup(cfg.Interview.RetentionDays); removed > 0 {
		log.Printf("removed %d expired log file(s)", removed)
	}

	aiService, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}
	log.Println("AI service initialized successfully")

	trackStore := track.NewMemoryStore(track.Seed())
	interviewSvc := interviewService.NewService(trackStore, aiService, recorder, cfg.Interview.DefaultMaxTurns)
	streamHandler := stream.New(interviewSvc, aiService, recorder)

	router := handler.NewRouter(interviewSvc, streamHandler)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Excel interviewer backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
