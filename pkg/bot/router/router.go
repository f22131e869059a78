package router

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Category is the coarse intent of an incoming message.
type Category string

const (
	CategoryGreeting     Category = "greeting"
	CategoryStage        Category = "stage"
	CategoryModification Category = "modification"
	CategoryBengkel      Category = "bengkel"
	CategoryDiagnostic   Category = "diagnostic"
	CategoryHelp         Category = "help"
	CategoryEmpty        Category = "empty"
	CategoryError        Category = "error"
)

// Keyword tables are checked in a fixed priority order; the chain position,
// not a score, breaks ambiguous overlaps ("stage 1 modif" is a modification
// request with stage context, not a bare stage lookup).
var greetingKeywords = []string{
	"halo", "hai", "hi", "hello", "selamat", "pagi", "siang", "sore", "malam",
}

var modificationKeywords = []string{
	"modif", "modifikasi", "upgrade", "ganti", "pasang",
	"turbo", "supercharger", "exhaust", "intake", "header",
	"coilover", "velg", "rem", "brake", "suspension",
	"stage", "tune", "ecu", "hondata", "bodykit", "aero",
}

var bengkelKeywords = []string{
	"bengkel", "workshop", "servis", "service", "lokasi", "alamat", "rekomendasi bengkel",
}

var diagnosticKeywords = []string{
	"masalah", "rusak", "bunyi", "getar", "bocor", "panas",
	"overheat", "mati", "susah", "boros", "lemah", "error",
	"warning", "check engine", "ac", "dingin", "rem", "stir",
	"cvt", "transmisi", "kopling", "oli", "bensin", "solar",
	"aki", "starter", "alternator", "radiator", "knalpot",
	"kenapa", "mengapa", "apa penyebab", "diagnosa", "cek",
}

var helpKeywords = []string{
	"help", "bantuan", "cara", "bagaimana", "info", "apa itu", "menu",
}

var stagePattern = regexp.MustCompile(`stage\s*[123]`)

// Classify maps a raw message to its intent category. Pure and total: every
// input yields a category, with diagnostic as the fallback for unrecognized
// car questions.
func Classify(message string) Category {
	lower := strings.ToLower(message)

	if utf8.RuneCountInString(lower) < 30 && containsAny(lower, greetingKeywords) {
		return CategoryGreeting
	}

	if stagePattern.MatchString(lower) {
		return CategoryStage
	}

	if containsAny(lower, modificationKeywords) {
		return CategoryModification
	}

	if containsAny(lower, bengkelKeywords) {
		return CategoryBengkel
	}

	if containsAny(lower, diagnosticKeywords) {
		return CategoryDiagnostic
	}

	if containsAny(lower, helpKeywords) {
		return CategoryHelp
	}

	return CategoryDiagnostic
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
