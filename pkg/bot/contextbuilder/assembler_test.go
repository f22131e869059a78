package contextbuilder

import (
	"strings"
	"testing"

	"freedbot-be/pkg/bot/concept"
	"freedbot-be/pkg/bot/retrieval"
)

func TestAssembleDiagnosisEmpty(t *testing.T) {
	got := AssembleDiagnosis(nil, nil)
	if got != EmptyContextSentinel {
		t.Errorf("expected sentinel %q, got %q", EmptyContextSentinel, got)
	}
}

func TestAssembleDiagnosisManualsOnly(t *testing.T) {
	docs := []retrieval.Document{
		{Section: "AC System", Content: "Tekanan normal refrigerant R-134a."},
	}

	got := AssembleDiagnosis(docs, nil)

	if !strings.Contains(got, "DARI SERVICE MANUAL") {
		t.Errorf("missing manual header in %q", got)
	}
	if !strings.Contains(got, "AC System: Tekanan normal") {
		t.Errorf("missing excerpt in %q", got)
	}
	if strings.Contains(got, "COMMON ISSUES") {
		t.Errorf("unexpected issues header in %q", got)
	}
}

func TestAssembleDiagnosisRendersAtMostThreeDocs(t *testing.T) {
	docs := make([]retrieval.Document, 5)
	for i := range docs {
		docs[i] = retrieval.Document{Section: "S", Content: "c"}
	}

	got := AssembleDiagnosis(docs, nil)

	if n := strings.Count(got, "- S:"); n != 3 {
		t.Errorf("expected 3 rendered excerpts, got %d", n)
	}
}

func TestAssembleDiagnosisTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 800)
	docs := []retrieval.Document{{Section: "Engine", Content: long}}

	got := AssembleDiagnosis(docs, nil)

	if strings.Contains(got, strings.Repeat("x", 501)) {
		t.Error("content not truncated to 500 runes")
	}
	if !strings.Contains(got, strings.Repeat("x", 500)) {
		t.Error("truncated content shorter than 500 runes")
	}
}

func TestAssembleDiagnosisIssueRendering(t *testing.T) {
	issues := []retrieval.Issue{
		{
			Symptom: "CVT judder saat akselerasi",
			Causes:  []string{"CVT fluid degradasi", "torque converter"},
			Cost:    retrieval.CostRange{Min: 500_000, Max: 2_500_000},
		},
	}

	got := AssembleDiagnosis(nil, issues)

	for _, want := range []string{
		"COMMON ISSUES TERKAIT",
		"Gejala: CVT judder saat akselerasi",
		"Penyebab: CVT fluid degradasi, torque converter",
		"Estimasi: Rp 500.000 - Rp 2.500.000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestBuildDiagnosisPrompt(t *testing.T) {
	got := BuildDiagnosisPrompt("AC tidak dingin", []string{"freon habis", "kompresor"}, "KONTEKS")

	for _, want := range []string{
		"KONTEKS DATABASE:",
		"KELUHAN USER:\nAC tidak dingin",
		"GEJALA TERDETEKSI: freon habis, kompresor",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in prompt", want)
		}
	}
}

func TestBuildModificationPrompt(t *testing.T) {
	req := concept.ModRequest{Stage: 1, FocusArea: "engine", Budget: 10_000_000}
	preset := &retrieval.Preset{
		Stage:   1,
		Name:    "Street Sleeper",
		HPTotal: 140,
		Cost:    retrieval.CostRange{Min: 8_000_000, Max: 15_000_000},
	}
	parts := []retrieval.Part{
		{
			Name:            "Cold Air Intake",
			Brand:           "Simota",
			Price:           retrieval.CostRange{Min: 1_500_000, Max: 2_500_000},
			PerformanceGain: "+5-8 HP",
			LegalStatus:     "legal",
		},
	}

	got := BuildModificationPrompt("stage 1", req, preset, parts)

	for _, want := range []string{
		"STAGE 1 - Street Sleeper",
		"Target HP: 140 HP",
		"Budget Range: Rp 8.000.000 - Rp 15.000.000",
		"BUDGET USER: Rp 10.000.000",
		"FOKUS AREA: engine",
		"Cold Air Intake (Simota): Rp 1.500.000 - Rp 2.500.000",
		"Gain: +5-8 HP",
		"Status: legal",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in prompt", want)
		}
	}
}

func TestBuildModificationPromptRendersAtMostFifteenParts(t *testing.T) {
	parts := make([]retrieval.Part, 20)
	for i := range parts {
		parts[i] = retrieval.Part{Name: "Part", Brand: "B"}
	}

	got := BuildModificationPrompt("modif", concept.ModRequest{FocusArea: "engine"}, nil, parts)

	if n := strings.Count(got, "- Part (B)"); n != 15 {
		t.Errorf("expected 15 rendered parts, got %d", n)
	}
}
