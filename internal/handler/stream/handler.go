package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/service/ai"
	interviewService "github.com/akshtaaaaa/excel-mock-interviewer/internal/service/interview"
	"github.com/akshtaaaaa/excel-mock-interviewer/pkg/utils"
)

// Handler streams question generation to the chat UI via Server-Sent
// Events so the candidate sees the question appear as the model writes it.
type Handler struct {
	svc       *interviewService.Service
	generator ai.Generator
	recorder  *logbook.Recorder
}

// New creates the stream handler.
func New(svc *interviewService.Service, generator ai.Generator, recorder *logbook.Recorder) *Handler {
	return &Handler{svc: svc, generator: generator, recorder: recorder}
}

// StreamResponse is one SSE chunk.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Index     int    `json:"index,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleQuestionStream generates the session's next question and streams
// the deltas. The turn is only opened once the full question has arrived,
// so a broken stream leaves the session unchanged.
func (h *Handler) HandleQuestionStream(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	req, err := h.svc.QuestionRequest(sessionID)
	if err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})

	started := time.Now()
	content, err := h.streamGeneration(ctx, w, flusher, sessionID, req)
	if err != nil {
		h.recorder.RecordError("question_stream", err)
		h.sendSSEError(w, flusher, fmt.Sprintf("question generation failed: %v", err))
		return err
	}
	h.recorder.RecordAPICall("question", 0, 0, time.Since(started))

	turn, err := h.svc.AcceptQuestion(sessionID, content)
	if err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "question",
		SessionID: sessionID,
		Index:     turn.Index,
		Content:   turn.Question,
	})
	h.sendSSE(w, flusher, StreamResponse{Event: "end", SessionID: sessionID, Finished: true})

	log.Printf("[stream] session=%s streamed question %d", sessionID, turn.Index)
	return nil
}

func (h *Handler) streamGeneration(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, sessionID string, req ai.Request) (string, error) {
	stream, err := h.generator.GenerateStream(ctx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.sendSSE(w, flusher, StreamResponse{
				Event:     "delta",
				SessionID: sessionID,
				Content:   chunk.Content,
			})
		}
	}

	message, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", err
	}
	return message.Content, nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEChunk(w, flusher, response)
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{Event: "error", Error: errorMsg})
}
