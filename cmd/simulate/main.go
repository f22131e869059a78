// Offline routing simulator: runs the intent classifier and concept
// extractors against sample messages without touching the database or any
// model provider. Useful for eyeballing keyword table changes.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"freedbot-be/pkg/bot/concept"
	"freedbot-be/pkg/bot/router"
)

var samples = []string{
	"halo",
	"selamat pagi",
	"AC tidak dingin",
	"mobil getar saat akselerasi",
	"cvt bunyi saat macet",
	"stage 1",
	"Stage 2 budget 30jt",
	"modif mesin budget 15 juta",
	"rekomendasi coilover",
	"bengkel jakarta",
	"help",
	"kenapa boros bensin",
	"",
}

func main() {
	header := color.New(color.FgCyan, color.Bold)
	intentColor := map[router.Category]*color.Color{
		router.CategoryGreeting:     color.New(color.FgGreen),
		router.CategoryStage:        color.New(color.FgYellow),
		router.CategoryModification: color.New(color.FgYellow),
		router.CategoryBengkel:      color.New(color.FgBlue),
		router.CategoryDiagnostic:   color.New(color.FgRed),
		router.CategoryHelp:         color.New(color.FgMagenta),
	}

	header.Println("=== Freed Chatbot Routing Simulator ===")

	for _, msg := range samples {
		category := router.Classify(msg)

		c, ok := intentColor[category]
		if !ok {
			c = color.New(color.FgWhite)
		}

		fmt.Printf("%-40q -> ", msg)
		c.Printf("%-14s", category)

		switch category {
		case router.CategoryDiagnostic:
			fmt.Printf(" symptoms=%v", concept.ExtractSymptoms(msg))
		case router.CategoryModification, router.CategoryStage:
			req := concept.ParseModificationRequest(msg)
			fmt.Printf(" stage=%d focus=%s budget=%d", req.Stage, req.FocusArea, req.Budget)
		}
		fmt.Println()
	}
}
