package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	interviewHandler "github.com/akshtaaaaa/excel-mock-interviewer/internal/handler/interview"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/handler/stream"
	middlewarePkg "github.com/akshtaaaaa/excel-mock-interviewer/internal/middleware"
	interviewService "github.com/akshtaaaaa/excel-mock-interviewer/internal/service/interview"
	"github.com/akshtaaaaa/excel-mock-interviewer/pkg/utils"
)

// NewRouter wires HTTP routes to core services. streamHandler may be nil
// when streaming is not wanted; the JSON endpoints cover the full flow.
func NewRouter(interviewSvc *interviewService.Service, streamHandler *stream.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	ivHandler := interviewHandler.New(interviewSvc)

	r.Route("/api", func(api chi.Router) {
		ivHandler.RegisterRoutes(api)

		api.Get("/stream/{sessionID}/question", func(w http.ResponseWriter, r *http.Request) {
			if streamHandler == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "question streaming unavailable")
				return
			}

			sessionID := chi.URLParam(r, "sessionID")
			if err := streamHandler.HandleQuestionStream(r.Context(), w, sessionID); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	// The chat frontend.
	r.Handle("/*", newStaticHandler())

	return r
}
