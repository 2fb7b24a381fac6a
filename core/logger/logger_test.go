package logger

import (
	"testing"
)

func TestSanitizeStripsControlRunes(t *testing.T) {
	in := "hello‮world​!\x00"
	got := Sanitize(in)
	if got != "helloworld!" {
		t.Fatalf("Sanitize(%q) = %q", in, got)
	}
}

func TestSanitizeKeepsTabsAndNewlines(t *testing.T) {
	in := "a\tb\nc"
	if got := Sanitize(in); got != in {
		t.Fatalf("Sanitize(%q) = %q", in, got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("абвгд", 3); got != "абв" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
	if got := SanitizeLimit("abc", 0); got != "" {
		t.Fatalf("SanitizeLimit with max 0 = %q", got)
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(42, 7, 9); got != "42:7:9" {
		t.Fatalf("BuildRID = %q", got)
	}
}

func TestCompactRID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"35:35:35", "z.z.z"},
		{"1:2:3", "1.2.3"},
		{"not-a-rid", "not-a-rid"},
		{"1:2", "1:2"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CompactRID(c.in); got != c.want {
			t.Fatalf("CompactRID(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestRIDRoundTrip(t *testing.T) {
	ctx := WithRID(Background(), "rid-123")
	if got := RIDFrom(ctx); got != "rid-123" {
		t.Fatalf("RIDFrom = %q", got)
	}
	if got := RIDFrom(Background()); got != "" {
		t.Fatalf("RIDFrom(empty) = %q", got)
	}
}

func TestUpdateMeta(t *testing.T) {
	ctx := WithUpdateMeta(Background(), 11, 22, 33)
	if got := ChatIDFrom(ctx); got != 33 {
		t.Fatalf("ChatIDFrom = %d", got)
	}
}
