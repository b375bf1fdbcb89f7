package offers

import (
	"strings"
	"testing"

	"github.com/Zoli1212/awsflow/internal/llm"
)

func TestBuildNotes(t *testing.T) {
	got := BuildNotes(
		"Budapest",
		"fürdőszoba felújítás",
		[]llm.ProposedItem{
			{Task: "Zuhanyzó", CustomReason: "anyagár a szövegben"},
			{Task: "Ismeretlen"},
		},
		[]string{"Milyen csempe?", "Mikor kezdhetünk?"},
	)

	if !strings.HasPrefix(got, "Budapest\n\nfürdőszoba felújítás\n\n") {
		t.Errorf("notes must open with location and requirement, got %q", got[:40])
	}
	for _, want := range []string{
		"További információ:",
		"A következő tétel nem volt az adatbázisban: 'Zuhanyzó (egyedi tétel)'.",
		"Indoklás: anyagár a szövegben",
		"Indoklás: Egyedi tétel",
		"Tisztázandó kérdések:",
		"1. Milyen csempe?",
		"2. Mikor kezdhetünk?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("notes missing %q", want)
		}
	}
}

func TestBuildNotesWithoutExtras(t *testing.T) {
	got := BuildNotes("Budapest", "festés", nil, nil)
	if strings.Contains(got, "További információ") || strings.Contains(got, "Tisztázandó kérdések") {
		t.Errorf("optional blocks must be absent: %q", got)
	}
}

func TestBuildConversionNotes(t *testing.T) {
	got := BuildConversionNotes([]string{"korábbi megjegyzés"}, []string{"Falfestés", "Glettelés"})
	want := "korábbi megjegyzés\n\n=== Új tételek (még nincsenek a vállalkozói árlistában) ===\n- Falfestés\n- Glettelés"
	if got != want {
		t.Errorf("notes = %q, want %q", got, want)
	}
}

func TestBuildConversionNotesEmpty(t *testing.T) {
	if got := BuildConversionNotes(nil, nil); got != "" {
		t.Errorf("notes = %q, want empty", got)
	}
	if got := BuildConversionNotes([]string{"csak megjegyzés"}, nil); got != "csak megjegyzés" {
		t.Errorf("notes = %q", got)
	}
}
