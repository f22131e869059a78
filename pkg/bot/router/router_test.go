package router

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Category
	}{
		{
			name:    "short greeting",
			message: "halo",
			want:    CategoryGreeting,
		},
		{
			name:    "greeting with time of day",
			message: "selamat pagi",
			want:    CategoryGreeting,
		},
		{
			name:    "long message with greeting word is not a greeting",
			message: "halo, mobil saya bunyi aneh di bagian depan saat lewat polisi tidur",
			want:    CategoryDiagnostic,
		},
		{
			name:    "greeting length cap counts characters not bytes",
			message: "halo 🚗🚗🚗🚗🚗🚗🚗",
			want:    CategoryGreeting,
		},
		{
			name:    "bare stage request",
			message: "stage 1",
			want:    CategoryStage,
		},
		{
			name:    "stage without space",
			message: "Stage2",
			want:    CategoryStage,
		},
		{
			name:    "stage plus modification words still routes to stage",
			message: "stage 1 modif",
			want:    CategoryStage,
		},
		{
			name:    "modification keyword",
			message: "modif mesin budget 10jt",
			want:    CategoryModification,
		},
		{
			name:    "part name routes to modification",
			message: "rekomendasi coilover",
			want:    CategoryModification,
		},
		{
			name:    "workshop lookup",
			message: "bengkel jakarta",
			want:    CategoryBengkel,
		},
		{
			name:    "diagnostic complaint",
			message: "mobil getar saat akselerasi",
			want:    CategoryDiagnostic,
		},
		{
			name:    "help request",
			message: "menu",
			want:    CategoryHelp,
		},
		{
			name:    "unknown text defaults to diagnostic",
			message: "apakah freed cocok untuk keluarga besar",
			want:    CategoryDiagnostic,
		},
		{
			name:    "uppercase input",
			message: "AC TIDAK DINGIN",
			want:    CategoryDiagnostic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOverlaps(t *testing.T) {
	// "rem" appears in both the modification and diagnostic tables. The chain
	// checks modification first, so a bare "rem" message routes there; adding
	// a workshop word flips it because bengkel does not outrank modification.
	if got := Classify("rem upgrade brembo"); got != CategoryModification {
		t.Errorf("expected modification, got %q", got)
	}
	if got := Classify("servis rem di mana"); got != CategoryModification {
		// "rem" is a modification keyword and modification is checked before
		// bengkel.
		t.Errorf("expected modification, got %q", got)
	}
}
