package pipeline

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"freedbot-be/pkg/bot/costing"
	"freedbot-be/pkg/bot/retrieval"
	"freedbot-be/pkg/llm"
)

type fakeSearcher struct {
	docs   []retrieval.Document
	issues []retrieval.Issue
	parts  []retrieval.Part
	preset *retrieval.Preset
	err    error
}

func (f *fakeSearcher) SearchManuals(_ context.Context, _ string) ([]retrieval.Document, error) {
	return f.docs, f.err
}

func (f *fakeSearcher) SearchIssues(_ context.Context, _ string) ([]retrieval.Issue, error) {
	return f.issues, f.err
}

func (f *fakeSearcher) ListCatalogParts(_ context.Context, _ string, _ int) ([]retrieval.Part, error) {
	return f.parts, f.err
}

func (f *fakeSearcher) StagePreset(_ context.Context, _ int) (*retrieval.Preset, error) {
	return f.preset, f.err
}

type fakeProvider struct {
	reply      string
	err        error
	lastPrompt string
	lastOpts   llm.Options
}

func (f *fakeProvider) applyOpts(opts []llm.Option) {
	f.lastOpts = llm.Options{}
	for _, opt := range opts {
		opt(&f.lastOpts)
	}
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.lastPrompt = history[len(history)-1].Content
	f.applyOpts(opts)
	return f.reply, f.err
}

func (f *fakeProvider) Generate(_ context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	f.applyOpts(opts)
	return f.reply, f.err
}

func (f *fakeProvider) ChatWithImage(_ context.Context, history []llm.Message, _ string, opts ...llm.Option) (string, error) {
	f.lastPrompt = history[len(history)-1].Content
	f.applyOpts(opts)
	return f.reply, f.err
}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestDiagnosisRunHappyPath(t *testing.T) {
	searcher := &fakeSearcher{
		docs:   []retrieval.Document{{Section: "CVT", Content: "Ganti fluid HCF-2."}},
		issues: []retrieval.Issue{{Symptom: "CVT judder", Causes: []string{"fluid degradasi"}}},
	}
	provider := &fakeProvider{reply: "Kemungkinan penyebab: CVT fluid."}

	p := NewDiagnosis(searcher, provider, 0, discard())
	got, err := p.Run(context.Background(), "cvt getar saat akselerasi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "DIAGNOSA HONDA FREED") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "Kemungkinan penyebab: CVT fluid.") {
		t.Errorf("missing generated diagnosis in %q", got)
	}
	if !strings.Contains(provider.lastPrompt, "Ganti fluid HCF-2.") {
		t.Error("retrieved context missing from prompt")
	}
}

func TestPipelinesPassConfiguredTemperature(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeProvider{reply: "ok"}

	p := NewDiagnosis(searcher, provider, 0.7, discard())
	if _, err := p.Run(context.Background(), "cvt getar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastOpts.Temperature != 0.7 {
		t.Errorf("diagnosis temperature = %v, want 0.7", provider.lastOpts.Temperature)
	}

	v := NewVision(provider, 0.7, discard())
	if _, err := v.Run(context.Background(), "cek foto", "aW1n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastOpts.Temperature != 0.7 {
		t.Errorf("vision temperature = %v, want 0.7", provider.lastOpts.Temperature)
	}
}

func TestPipelineTemperatureDefaultsWhenUnset(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}

	p := NewDiagnosis(&fakeSearcher{}, provider, 0, discard())
	if _, err := p.Run(context.Background(), "cvt getar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastOpts.Temperature != defaultTemperature {
		t.Errorf("temperature = %v, want %v", provider.lastOpts.Temperature, defaultTemperature)
	}
}

func TestDiagnosisRunDegradesOnRetrievalFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("database unreachable")}
	provider := &fakeProvider{reply: "Diagnosa dari pengetahuan umum."}

	p := NewDiagnosis(searcher, provider, 0, discard())
	got, err := p.Run(context.Background(), "mobil getar")
	if err != nil {
		t.Fatalf("retrieval failure must not abort the run: %v", err)
	}
	if !strings.Contains(got, "Diagnosa dari pengetahuan umum.") {
		t.Errorf("missing diagnosis in %q", got)
	}
	if !strings.Contains(provider.lastPrompt, "Tidak ada data spesifik ditemukan.") {
		t.Error("empty-context sentinel missing from prompt")
	}
}

func TestDiagnosisRunGenerationFailureIsFatal(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeProvider{err: llm.ErrRateLimited}

	p := NewDiagnosis(searcher, provider, 0, discard())
	_, err := p.Run(context.Background(), "ac tidak dingin")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Errorf("sentinel lost in %v", err)
	}
}

func TestModificationRunHappyPath(t *testing.T) {
	searcher := &fakeSearcher{
		preset: &retrieval.Preset{Stage: 1, Name: "Street Sleeper", HPTotal: 140},
		parts: []retrieval.Part{
			{Name: "Cold Air Intake", Price: retrieval.CostRange{Min: 1_000_000, Max: 2_000_000}},
			{Name: "ECU Tune", Price: retrieval.CostRange{Min: 4_000_000, Max: 6_000_000}},
		},
	}
	provider := &fakeProvider{reply: "Pasang intake dulu, lalu tuning."}

	p := NewModification(searcher, provider, costing.DefaultRates(), 0, discard())
	got, err := p.Run(context.Background(), "stage 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"MODIFICATION PLAN HONDA FREED",
		"*STAGE 1 - Street Sleeper*",
		"Pasang intake dulu, lalu tuning.",
		"ESTIMASI BIAYA",
		"Parts: Rp 5.000.000 - Rp 8.000.000",
		"Install: Rp 1.000.000 - Rp 2.400.000",
		"*TOTAL: Rp 6.000.000 - Rp 10.400.000*",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestModificationRunFallbackStageName(t *testing.T) {
	// No preset row for the stage: the header still names the stage from the
	// built-in table.
	searcher := &fakeSearcher{}
	provider := &fakeProvider{reply: "plan"}

	p := NewModification(searcher, provider, costing.DefaultRates(), 0, discard())
	got, err := p.Run(context.Background(), "stage 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "*STAGE 3 - Track Monster*") {
		t.Errorf("missing fallback stage header in %q", got)
	}
}

func TestModificationRunGenerationFailureIsFatal(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeProvider{err: errors.New("upstream 500")}

	p := NewModification(searcher, provider, costing.DefaultRates(), 0, discard())
	if _, err := p.Run(context.Background(), "modif mesin"); err == nil {
		t.Fatal("expected error")
	}
}

func TestVisionRun(t *testing.T) {
	provider := &fakeProvider{reply: "Terlihat kebocoran oli pada gasket."}

	p := NewVision(provider, 0, discard())
	got, err := p.Run(context.Background(), "mesin bagian atas", "aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "DIAGNOSA VISUAL HONDA FREED") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "Terlihat kebocoran oli pada gasket.") {
		t.Errorf("missing diagnosis in %q", got)
	}
	if !strings.Contains(provider.lastPrompt, "mesin bagian atas") {
		t.Error("user context missing from prompt")
	}
}

func TestVisionRunPreservesErrorType(t *testing.T) {
	provider := &fakeProvider{err: llm.ErrInvalidInput}

	p := NewVision(provider, 0, discard())
	_, err := p.Run(context.Background(), "", "not-base64")
	if !errors.Is(err, llm.ErrInvalidInput) {
		t.Errorf("sentinel lost in %v", err)
	}
}
