// FILE: internal/service/chat_service_test.go
package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	"freedbot-be/internal/dto"
	"freedbot-be/internal/pkg/logger"
	"freedbot-be/pkg/bot/costing"
	"freedbot-be/pkg/bot/pipeline"
	"freedbot-be/pkg/bot/retrieval"
	"freedbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubSearcher struct{}

func (stubSearcher) SearchManuals(context.Context, string) ([]retrieval.Document, error) {
	return nil, nil
}
func (stubSearcher) SearchIssues(context.Context, string) ([]retrieval.Issue, error) {
	return nil, nil
}
func (stubSearcher) ListCatalogParts(context.Context, string, int) ([]retrieval.Part, error) {
	return nil, nil
}
func (stubSearcher) StagePreset(context.Context, int) (*retrieval.Preset, error) {
	return nil, nil
}

type stubProvider struct {
	reply string
	err   error
}

func (s stubProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.reply, s.err
}
func (s stubProvider) Generate(context.Context, string, ...llm.Option) (string, error) {
	return s.reply, s.err
}
func (s stubProvider) ChatWithImage(context.Context, []llm.Message, string, ...llm.Option) (string, error) {
	return s.reply, s.err
}

type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}

func newTestChatService(provider llm.LLMProvider, publisher IPublisherService) IChatService {
	quiet := log.New(io.Discard, "", 0)
	return NewChatService(
		pipeline.NewDiagnosis(stubSearcher{}, provider, 0, quiet),
		pipeline.NewModification(stubSearcher{}, provider, costing.DefaultRates(), 0, quiet),
		pipeline.NewVision(provider, 0, quiet),
		publisher,
		nopLogger{},
	)
}

func TestProcessEmptyMessage(t *testing.T) {
	publisher := &capturePublisher{}
	svc := newTestChatService(stubProvider{reply: "x"}, publisher)

	res, err := svc.Process(context.Background(), &dto.ProcessMessageRequest{
		UserId:  "628123",
		Message: "   ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Silakan ketik pesan Anda.", res.Response)
	assert.Equal(t, "empty", res.Intent)
	assert.Empty(t, publisher.payloads, "empty turns are not logged")
}

func TestProcessGreeting(t *testing.T) {
	publisher := &capturePublisher{}
	svc := newTestChatService(stubProvider{reply: "x"}, publisher)

	res, err := svc.Process(context.Background(), &dto.ProcessMessageRequest{
		UserId:  "628123",
		Message: "halo",
	})

	assert.NoError(t, err)
	assert.Equal(t, "greeting", res.Intent)
	assert.Contains(t, res.Response, "SELAMAT DATANG")

	assert.Len(t, publisher.payloads, 1)
	var event dto.ChatProcessedMessage
	assert.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
	assert.Equal(t, "628123", event.CallerId)
	assert.Equal(t, "greeting", event.Category)
	assert.Equal(t, len(res.Response), event.ResponseChars)
}

func TestProcessDiagnosticDispatch(t *testing.T) {
	svc := newTestChatService(stubProvider{reply: "Cek freon dan kompresor."}, &capturePublisher{})

	res, err := svc.Process(context.Background(), &dto.ProcessMessageRequest{
		UserId:  "628123",
		Message: "AC tidak dingin",
	})

	assert.NoError(t, err)
	assert.Equal(t, "diagnostic", res.Intent)
	assert.Contains(t, res.Response, "Cek freon dan kompresor.")
}

func TestProcessRateLimitedFallsBackToBusy(t *testing.T) {
	svc := newTestChatService(stubProvider{err: llm.ErrRateLimited}, &capturePublisher{})

	res, err := svc.Process(context.Background(), &dto.ProcessMessageRequest{
		UserId:  "628123",
		Message: "cvt getar",
	})

	assert.NoError(t, err, "pipeline failures surface as canned replies, not errors")
	assert.Equal(t, "error", res.Intent)
	assert.Contains(t, res.Response, "SISTEM SIBUK")
}

func TestProcessGenericFailure(t *testing.T) {
	svc := newTestChatService(stubProvider{err: assert.AnError}, &capturePublisher{})

	res, err := svc.Process(context.Background(), &dto.ProcessMessageRequest{
		UserId:  "628123",
		Message: "mobil bunyi aneh",
	})

	assert.NoError(t, err)
	assert.Equal(t, "error", res.Intent)
	assert.Contains(t, res.Response, "TERJADI KESALAHAN")
	assert.NotContains(t, res.Response, "SISTEM SIBUK")
}

func TestProcessImageTriage(t *testing.T) {
	tests := []struct {
		name       string
		provider   stubProvider
		wantIntent string
		wantText   string
	}{
		{
			name:       "success",
			provider:   stubProvider{reply: "Oli bocor di gasket."},
			wantIntent: "vision",
			wantText:   "DIAGNOSA VISUAL HONDA FREED",
		},
		{
			name:       "rate limited",
			provider:   stubProvider{err: llm.ErrRateLimited},
			wantIntent: "error",
			wantText:   "SISTEM SIBUK",
		},
		{
			name:       "invalid image",
			provider:   stubProvider{err: llm.ErrInvalidInput},
			wantIntent: "error",
			wantText:   "GAMBAR TIDAK VALID",
		},
		{
			name:       "generic failure",
			provider:   stubProvider{err: assert.AnError},
			wantIntent: "error",
			wantText:   "gagal memproses gambar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestChatService(tt.provider, &capturePublisher{})

			res, err := svc.ProcessImage(context.Background(), &dto.ProcessImageRequest{
				UserId:      "628123",
				Message:     "mesin atas",
				ImageBase64: "aGVsbG8=",
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantIntent, res.Intent)
			assert.True(t, strings.Contains(res.Response, tt.wantText),
				"missing %q in %q", tt.wantText, res.Response)
		})
	}
}
