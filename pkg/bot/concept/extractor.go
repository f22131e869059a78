package concept

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultSymptom is returned when no trigger matches; extraction never yields
// an empty set.
const DefaultSymptom = "general_checkup"

// symptomTable maps complaint trigger words to the parts and conditions a
// mechanic would check for them. Every matching trigger fires; the result is
// the deduplicated union.
var symptomTable = map[string][]string{
	"getar":       {"cvt judder", "mounting rusak", "balance shaft"},
	"bunyi":       {"ball joint", "tie rod", "bearing", "brake pad"},
	"bocor":       {"seal oli", "radiator", "water pump"},
	"panas":       {"thermostat", "radiator", "water pump", "kipas"},
	"boros":       {"filter udara kotor", "busi aus", "injector kotor"},
	"susah start": {"aki lemah", "starter", "fuel pump"},
	"ac":          {"freon habis", "kompresor", "kondensor", "evaporator"},
	"rem":         {"brake pad", "rotor", "master cylinder", "brake fluid"},
	"oli":         {"seal bocor", "gasket", "piston ring"},
	"cvt":         {"cvt fluid", "torque converter", "solenoid"},
	"lampu":       {"bohlam", "relay", "fuse", "alternator"},
	"stir":        {"power steering", "rack end", "tie rod"},
}

// ExtractSymptoms collects the symptom tags triggered by a message. Case
// insensitive, total, sorted for deterministic output.
func ExtractSymptoms(message string) []string {
	lower := strings.ToLower(message)

	seen := make(map[string]struct{})
	for trigger, related := range symptomTable {
		if strings.Contains(lower, trigger) {
			for _, tag := range related {
				seen[tag] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		return []string{DefaultSymptom}
	}

	symptoms := make([]string, 0, len(seen))
	for tag := range seen {
		symptoms = append(symptoms, tag)
	}
	sort.Strings(symptoms)
	return symptoms
}

// ModRequest holds the concepts parsed from a modification message.
type ModRequest struct {
	Stage     int    // 1..3, 0 when not requested
	FocusArea string // never empty, defaults to "engine"
	Budget    int64  // rupiah, 0 when not stated
}

// focusGroup order matters: the first group with a keyword hit wins.
type focusGroup struct {
	area     string
	keywords []string
}

var focusGroups = []focusGroup{
	{"engine", []string{"mesin", "engine", "power", "hp", "turbo", "supercharger", "intake", "exhaust"}},
	{"suspension", []string{"kaki", "suspension", "coilover", "per", "shockbreaker", "handling"}},
	{"exterior", []string{"body", "bodykit", "aero", "spoiler", "widebody", "exterior"}},
	{"interior", []string{"interior", "jok", "seat", "dashboard", "racing seat"}},
	{"audio", []string{"audio", "speaker", "subwoofer", "amplifier", "head unit"}},
	{"brakes", []string{"rem", "brake", "brembo", "caliper", "rotor"}},
}

var (
	stageNumberPattern = regexp.MustCompile(`stage\s*([123])`)
	budgetPattern      = regexp.MustCompile(`(\d+)\s*(jt|juta|million)`)
)

// ParseModificationRequest derives stage, focus area and budget from a
// modification message. Total; missing concepts stay at their defaults.
func ParseModificationRequest(message string) ModRequest {
	lower := strings.ToLower(message)

	req := ModRequest{FocusArea: "engine"}

	if m := stageNumberPattern.FindStringSubmatch(lower); m != nil {
		req.Stage = int(m[1][0] - '0')
	}

	for _, group := range focusGroups {
		if containsAny(lower, group.keywords) {
			req.FocusArea = group.area
			break
		}
	}

	if m := budgetPattern.FindStringSubmatch(lower); m != nil {
		var amount int64
		for _, d := range m[1] {
			amount = amount*10 + int64(d-'0')
		}
		req.Budget = amount * 1_000_000
	}

	return req
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
