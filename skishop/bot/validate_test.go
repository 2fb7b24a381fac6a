package bot

import (
	"strings"
	"testing"
)

func TestValidateTextRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		if err := ValidateText(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestValidateTextLengthBoundaries(t *testing.T) {
	if err := ValidateText(strings.Repeat("a", 9)); err == nil {
		t.Fatal("expected error for 9 characters")
	}
	if err := ValidateText(strings.Repeat("a", 10)); err != nil {
		t.Fatalf("10 characters must pass: %v", err)
	}
	if err := ValidateText(strings.Repeat("a", 2000)); err != nil {
		t.Fatalf("2000 characters must pass: %v", err)
	}
	err := ValidateText(strings.Repeat("a", 2001))
	if err == nil {
		t.Fatal("expected error for 2001 characters")
	}
	if !strings.Contains(err.Error(), "2001") {
		t.Fatalf("too-long error must include the actual length: %v", err)
	}
}

func TestValidateTextCountsRunesNotBytes(t *testing.T) {
	// 10 Cyrillic letters were 20 bytes; they must still pass.
	if err := ValidateText("лижіатомік"); err != nil {
		t.Fatalf("10 runes must pass: %v", err)
	}
}

func TestValidateTextTrimsBeforeMeasuring(t *testing.T) {
	if err := ValidateText("  " + strings.Repeat("a", 9) + "  "); err == nil {
		t.Fatal("expected error: padded 9-character text")
	}
}

func TestValidateTextForbiddenRunes(t *testing.T) {
	for _, r := range []rune{'\u202E', '\u200B', '\u200C', '\u200D', '\uFEFF'} {
		in := "valid text " + string(r) + " more text"
		if err := ValidateText(in); err == nil {
			t.Fatalf("expected error for text containing U+%04X", r)
		}
	}
}
