package theme

import (
	"errors"
	"testing"
)

func TestDetectTermProfileTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		term string
		want TermProfile
	}{
		{name: "xterm", term: "xterm", want: TermProfile{Colors: 16, IsTTY: true}},
		{name: "xterm-256color", term: "xterm-256color", want: TermProfile{Colors: 256, IsTTY: true}},
		{name: "screen", term: "screen", want: TermProfile{Colors: 8, IsTTY: true}},
		{name: "tmux", term: "tmux", want: TermProfile{Colors: 256, IsTTY: true}},
		{name: "dumb", term: "dumb", want: TermProfile{Colors: 0, IsTTY: false}},
		{name: "empty", term: "", want: TermProfile{Colors: 0, IsTTY: false}},
		{name: "kitty truecolor", term: "xterm-kitty", want: TermProfile{Colors: 1 << 24, TrueColor: true, IsTTY: true}},
		{name: "unknown truecolor", term: "foot-truecolor", want: TermProfile{Colors: 1 << 24, TrueColor: true, IsTTY: true}},
		{name: "screen-256color", term: "screen-256color", want: TermProfile{Colors: 8, IsTTY: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := detectTermProfile(tt.term)
			if got != tt.want {
				t.Fatalf("detectTermProfile(%q) = %+v, want %+v", tt.term, got, tt.want)
			}
		})
	}
}

func TestResolveImmutability(t *testing.T) {
	t.Parallel()

	first, err := Resolve(VariantOcean, "wezterm")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	first.Header.Background = "#000000"

	second, err := Resolve(VariantOcean, "wezterm")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if second.Header.Background != "#0F172A" {
		t.Fatalf("expected immutable palette, got %q", second.Header.Background)
	}
}

func TestResolveSnapshots(t *testing.T) {
	t.Parallel()

	for _, v := range []Variant{VariantOcean, VariantMatrix, VariantAmber} {
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(v, "xterm-256color")
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got != palettes[v] {
				t.Fatalf("snapshot mismatch for %s:\n got=%+v\nwant=%+v", v, got, palettes[v])
			}
		})
	}
}

func TestResolveUnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Variant("mystery"), "wezterm")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestDumbTerminalsGetMonochrome(t *testing.T) {
	t.Parallel()

	for _, term := range []string{"dumb", "xterm-dumb"} {
		got, err := Resolve(VariantMatrix, term)
		if err != nil {
			t.Fatalf("Resolve(matrix, %q) unexpected error: %v", term, err)
		}
		if got != monochromeBundle() {
			t.Fatalf("expected monochrome bundle for %q", term)
		}
	}
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	got, err := ParseVariant("  Matrix ")
	if err != nil || got != VariantMatrix {
		t.Fatalf("ParseVariant() = (%q, %v), want matrix", got, err)
	}
	if _, err := ParseVariant("neon"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestVariantCoverage(t *testing.T) {
	t.Parallel()

	if len(palettes) != len(variants) {
		t.Fatalf("variant coverage mismatch: palettes=%d variants=%d", len(palettes), len(variants))
	}
	for _, v := range Variants() {
		bundle, ok := palettes[v]
		if !ok {
			t.Fatalf("missing palette for variant %q", v)
		}
		if bundle.Variant != v {
			t.Fatalf("palette %q labelled %q", v, bundle.Variant)
		}
	}
}

func TestResolveForceOverrides(t *testing.T) {
	t.Parallel()

	color, _, err := resolveWithProfile(VariantOcean, ResolveOptions{Term: "dumb", ForceColor: true}, detectTermProfile)
	if err != nil {
		t.Fatalf("resolveWithProfile error: %v", err)
	}
	if color == monochromeBundle() {
		t.Fatalf("force color should not return monochrome bundle")
	}

	mono, _, err := resolveWithProfile(VariantOcean, ResolveOptions{Term: "wezterm", ForceMono: true}, detectTermProfile)
	if err != nil {
		t.Fatalf("resolveWithProfile error: %v", err)
	}
	if mono != monochromeBundle() {
		t.Fatalf("force mono should return monochrome bundle")
	}
}

func TestResolveWithDetectorUsesCallerProfile(t *testing.T) {
	t.Parallel()

	calls := 0
	detector := func(term string) TermProfile {
		calls++
		return TermProfile{Colors: 0}
	}
	got, err := ResolveWithDetector(VariantAmber, ResolveOptions{Term: "anything"}, detector)
	if err != nil {
		t.Fatalf("ResolveWithDetector() unexpected error: %v", err)
	}
	if calls != 1 || got != monochromeBundle() {
		t.Fatalf("calls=%d bundle=%+v", calls, got.Variant)
	}
}
