package contextbuilder

import (
	"fmt"
	"strings"

	"freedbot-be/pkg/bot/concept"
	"freedbot-be/pkg/bot/response"
	"freedbot-be/pkg/bot/retrieval"
)

// EmptyContextSentinel is emitted when both retrieval sources come back
// empty, so the generation prompt never carries an empty context slot.
const EmptyContextSentinel = "Tidak ada data spesifik ditemukan."

const (
	contentExcerptLimit = 500 // runes per manual excerpt
	maxRenderedDocs     = 3
	maxRenderedParts    = 15
)

// AssembleDiagnosis merges manual excerpts and issue records into one bounded
// context block. Deterministic: fixed section order (manuals first), fixed
// truncation, no dependence on input arrival order beyond the given slices.
func AssembleDiagnosis(docs []retrieval.Document, issues []retrieval.Issue) string {
	var parts []string

	if len(docs) > 0 {
		parts = append(parts, "📚 DARI SERVICE MANUAL:")
		for i, doc := range docs {
			if i >= maxRenderedDocs {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s: %s", doc.Section, truncateRunes(doc.Content, contentExcerptLimit)))
		}
	}

	if len(issues) > 0 {
		parts = append(parts, "\n⚠️ COMMON ISSUES TERKAIT:")
		for _, issue := range issues {
			causes := strings.Join(issue.Causes, ", ")
			parts = append(parts, fmt.Sprintf(
				"- Gejala: %s\n  Penyebab: %s\n  Estimasi: Rp %s - Rp %s",
				issue.Symptom, causes, response.FormatRupiah(issue.Cost.Min), response.FormatRupiah(issue.Cost.Max),
			))
		}
	}

	if len(parts) == 0 {
		return EmptyContextSentinel
	}
	return strings.Join(parts, "\n")
}

// BuildDiagnosisPrompt wraps the assembled context, the raw complaint and the
// detected symptoms into the generation prompt.
func BuildDiagnosisPrompt(message string, symptoms []string, contextBlock string) string {
	return fmt.Sprintf(`
KONTEKS DATABASE:
%s

KELUHAN USER:
%s

GEJALA TERDETEKSI: %s

Berikan diagnosa lengkap dengan:
1. Kemungkinan penyebab (dengan persentase keyakinan)
2. Part yang perlu dicek/diganti
3. Estimasi biaya dalam Rupiah
4. Urgensi (segera/bisa ditunda/preventif)
5. Tips perawatan terkait
`, contextBlock, message, strings.Join(symptoms, ", "))
}

// BuildModificationPrompt assembles the stage preset, user budget and catalog
// excerpts into the modification planning prompt.
func BuildModificationPrompt(message string, req concept.ModRequest, preset *retrieval.Preset, parts []retrieval.Part) string {
	var partsInfo strings.Builder
	if len(parts) > 0 {
		partsInfo.WriteString("📦 PARTS TERSEDIA DI KATALOG:\n")
		for i, part := range parts {
			if i >= maxRenderedParts {
				break
			}
			partsInfo.WriteString(fmt.Sprintf(
				"- %s (%s): Rp %s - Rp %s",
				part.Name, part.Brand, response.FormatRupiah(part.Price.Min), response.FormatRupiah(part.Price.Max),
			))
			if part.PerformanceGain != "" {
				partsInfo.WriteString(" | Gain: " + part.PerformanceGain)
			}
			partsInfo.WriteString(" | Status: " + part.LegalStatus + "\n")
		}
	}

	var stageInfo string
	if preset != nil {
		stageInfo = fmt.Sprintf(`
🎯 STAGE %d - %s
Target HP: %d HP
Budget Range: Rp %s - Rp %s
`, preset.Stage, preset.Name, preset.HPTotal, response.FormatRupiah(preset.Cost.Min), response.FormatRupiah(preset.Cost.Max))
	}

	var budgetInfo string
	if req.Budget > 0 {
		budgetInfo = fmt.Sprintf("\n💰 BUDGET USER: Rp %s", response.FormatRupiah(req.Budget))
	}

	return fmt.Sprintf(`
REQUEST USER:
%s

%s
%s

FOKUS AREA: %s

%s

Buatkan modification plan yang detail dengan:
1. Part list lengkap dengan harga
2. Urutan pemasangan yang benar
3. Estimasi HP gain per part
4. Total biaya (parts + installation)
5. Workshop recommendation (general tips)
6. Peringatan penting (garansi void, legal status, dll)
`, message, stageInfo, budgetInfo, req.FocusArea, partsInfo.String())
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

