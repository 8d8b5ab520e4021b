package stream

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/logbook"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/interview"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/model/track"
	"github.com/akshtaaaaa/excel-mock-interviewer/internal/service/ai"
	interviewService "github.com/akshtaaaaa/excel-mock-interviewer/internal/service/interview"
)

type chunkGenerator struct {
	chunks []string
	err    error
}

func (g *chunkGenerator) Generate(_ context.Context, _ ai.Request) (ai.Reply, error) {
	if g.err != nil {
		return ai.Reply{}, g.err
	}
	return ai.Reply{Content: strings.Join(g.chunks, "")}, nil
}

func (g *chunkGenerator) GenerateStream(_ context.Context, _ ai.Request) (*schema.StreamReader[*schema.Message], error) {
	if g.err != nil {
		return nil, g.err
	}
	messages := make([]*schema.Message, 0, len(g.chunks))
	for _, chunk := range g.chunks {
		messages = append(messages, schema.AssistantMessage(chunk, nil))
	}
	return schema.StreamReaderFromArray(messages), nil
}

func setupStream(t *testing.T, gen ai.Generator) (*Handler, *interviewService.Service) {
	t.Helper()
	recorder := logbook.NewRecorder(t.TempDir())
	svc := interviewService.NewService(track.NewMemoryStore(track.Seed()), gen, recorder, 5)
	return New(svc, gen, recorder), svc
}

func TestHandleQuestionStream(t *testing.T) {
	gen := &chunkGenerator{chunks: []string{"How would you ", "use VLOOKUP?"}}
	handler, svc := setupStream(t, gen)

	session, err := svc.StartSession("", "beginner", 3)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	resp := httptest.NewRecorder()
	if err := handler.HandleQuestionStream(context.Background(), resp, session.ID); err != nil {
		t.Fatalf("stream failed: %v", err)
	}

	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}

	body := resp.Body.String()
	for _, want := range []string{
		`"event":"start"`,
		`"event":"delta","content":"How would you "`,
		`"content":"use VLOOKUP?"`,
		`"event":"question"`,
		`"event":"end"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}

	got, err := svc.GetSession(session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(got.Turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(got.Turns))
	}
	turn := got.Turns[0]
	if turn.Question != "How would you use VLOOKUP?" || turn.State != interview.TurnOpen {
		t.Fatalf("unexpected turn: %+v", turn)
	}
}

func TestHandleQuestionStreamGatewayError(t *testing.T) {
	gen := &chunkGenerator{err: errors.New("gateway down")}
	handler, svc := setupStream(t, gen)

	session, err := svc.StartSession("", "beginner", 3)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	resp := httptest.NewRecorder()
	if err := handler.HandleQuestionStream(context.Background(), resp, session.ID); err == nil {
		t.Fatal("expected stream error")
	}

	if !strings.Contains(resp.Body.String(), `"event":"error"`) {
		t.Fatalf("expected error event in body:\n%s", resp.Body.String())
	}

	got, err := svc.GetSession(session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(got.Turns) != 0 {
		t.Fatalf("broken stream must leave the session unchanged, got %d turns", len(got.Turns))
	}
}

func TestHandleQuestionStreamUnknownSession(t *testing.T) {
	handler, _ := setupStream(t, &chunkGenerator{chunks: []string{"Q?"}})

	resp := httptest.NewRecorder()
	if err := handler.HandleQuestionStream(context.Background(), resp, "missing"); err == nil {
		t.Fatal("expected error for unknown session")
	}
	if !strings.Contains(resp.Body.String(), `"event":"error"`) {
		t.Fatalf("expected error event in body:\n%s", resp.Body.String())
	}
}
