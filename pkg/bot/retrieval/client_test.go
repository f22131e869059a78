package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"freedbot-be/internal/model"
	"freedbot-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) Generate(_ context.Context, _ string, _ string) ([]float32, error) {
	return f.vector, f.err
}

type fakeManualRepo struct {
	contract.ManualRepository
	scored []*contract.ScoredManualChunk
	err    error

	gotLimit     int
	gotThreshold float64
}

func (f *fakeManualRepo) SearchSimilarWithScore(_ context.Context, _ []float32, limit int, threshold float64) ([]*contract.ScoredManualChunk, error) {
	f.gotLimit = limit
	f.gotThreshold = threshold
	return f.scored, f.err
}

type fakeIssueRepo struct {
	contract.IssueRepository
	scored []*contract.ScoredCommonIssue
	err    error
}

func (f *fakeIssueRepo) SearchSimilarWithScore(_ context.Context, _ []float32, _ int, _ float64) ([]*contract.ScoredCommonIssue, error) {
	return f.scored, f.err
}

type fakePresetRepo struct {
	contract.StagePresetRepository
	preset *model.StagePreset
	err    error
}

func (f *fakePresetRepo) FindByStage(_ context.Context, _ int) (*model.StagePreset, error) {
	return f.preset, f.err
}

type fakeCatalogRepo struct {
	contract.CatalogRepository
	rows []*model.CatalogPart
	err  error
}

func (f *fakeCatalogRepo) FindFiltered(_ context.Context, _ string, _ int, _ int) ([]*model.CatalogPart, error) {
	return f.rows, f.err
}

func newTestClient(embedder *fakeEmbedder, manual *fakeManualRepo, issue *fakeIssueRepo, preset *fakePresetRepo, catalog *fakeCatalogRepo) *Client {
	return NewClient(
		embedder, manual, issue, preset, catalog,
		DefaultConfig(),
		log.New(io.Discard, "", 0),
	)
}

func TestSearchManuals(t *testing.T) {
	manual := &fakeManualRepo{
		scored: []*contract.ScoredManualChunk{
			{
				Chunk:      &model.ManualChunk{Section: "AC System", Content: "Tekanan normal."},
				Similarity: 0.82,
			},
		},
	}
	c := newTestClient(&fakeEmbedder{vector: []float32{0.1}}, manual, &fakeIssueRepo{}, &fakePresetRepo{}, &fakeCatalogRepo{})

	docs, err := c.SearchManuals(context.Background(), "ac tidak dingin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].Section != "AC System" || docs[0].Score != 0.82 {
		t.Errorf("unexpected docs: %+v", docs)
	}
	if manual.gotLimit != 5 || manual.gotThreshold != 0.5 {
		t.Errorf("config not applied: limit=%d threshold=%v", manual.gotLimit, manual.gotThreshold)
	}
}

func TestSearchManualsEmbeddingFailure(t *testing.T) {
	c := newTestClient(&fakeEmbedder{err: errors.New("quota")}, &fakeManualRepo{}, &fakeIssueRepo{}, &fakePresetRepo{}, &fakeCatalogRepo{})

	if _, err := c.SearchManuals(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSearchIssuesMapsCost(t *testing.T) {
	issue := &fakeIssueRepo{
		scored: []*contract.ScoredCommonIssue{
			{
				Issue: &model.CommonIssue{
					Id:              uuid.New(),
					Symptom:         "CVT judder",
					ProbableCauses:  datatypes.NewJSONSlice([]string{"fluid degradasi"}),
					CostEstimateIDR: datatypes.NewJSONType(model.CostRange{Min: 500_000, Max: 2_500_000}),
				},
				Similarity: 0.74,
			},
		},
	}
	c := newTestClient(&fakeEmbedder{vector: []float32{0.1}}, &fakeManualRepo{}, issue, &fakePresetRepo{}, &fakeCatalogRepo{})

	issues, err := c.SearchIssues(context.Background(), "cvt getar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	got := issues[0]
	if got.Symptom != "CVT judder" || got.Cost.Min != 500_000 || got.Cost.Max != 2_500_000 {
		t.Errorf("unexpected issue mapping: %+v", got)
	}
	if len(got.Causes) != 1 || got.Causes[0] != "fluid degradasi" {
		t.Errorf("unexpected causes: %v", got.Causes)
	}
}

func TestSearchIssuesMissingCostDefaultsToZero(t *testing.T) {
	issue := &fakeIssueRepo{
		scored: []*contract.ScoredCommonIssue{
			{Issue: &model.CommonIssue{Symptom: "Bunyi gluduk"}, Similarity: 0.6},
		},
	}
	c := newTestClient(&fakeEmbedder{vector: []float32{0.1}}, &fakeManualRepo{}, issue, &fakePresetRepo{}, &fakeCatalogRepo{})

	issues, err := c.SearchIssues(context.Background(), "bunyi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issues[0].Cost != (CostRange{}) {
		t.Errorf("expected zero cost, got %+v", issues[0].Cost)
	}
}

func TestStagePresetAbsent(t *testing.T) {
	c := newTestClient(&fakeEmbedder{}, &fakeManualRepo{}, &fakeIssueRepo{}, &fakePresetRepo{}, &fakeCatalogRepo{})

	preset, err := c.StagePreset(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preset != nil {
		t.Errorf("expected nil preset, got %+v", preset)
	}
}

func TestListCatalogParts(t *testing.T) {
	catalog := &fakeCatalogRepo{
		rows: []*model.CatalogPart{
			{
				PartName:      "Cold Air Intake",
				Brand:         "Simota",
				Category:      "engine",
				MinStage:      1,
				PriceRangeIDR: datatypes.NewJSONType(model.CostRange{Min: 1_500_000, Max: 2_500_000}),
				LegalStatus:   "legal",
			},
		},
	}
	c := newTestClient(&fakeEmbedder{}, &fakeManualRepo{}, &fakeIssueRepo{}, &fakePresetRepo{}, catalog)

	parts, err := c.ListCatalogParts(context.Background(), "engine", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 1 || parts[0].Name != "Cold Air Intake" || parts[0].Price.Max != 2_500_000 {
		t.Errorf("unexpected parts: %+v", parts)
	}
}
