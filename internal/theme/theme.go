package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Variant identifies the palette family.
type Variant string

const (
	VariantOcean  Variant = "ocean"
	VariantMatrix Variant = "matrix"
	VariantAmber  Variant = "amber"
	VariantMono   Variant = "mono"
)

// Style describes presentational attributes for a UI element.
type Style struct {
	Foreground string
	Background string
	Bold       bool
}

// Lipgloss converts the style for a renderer. A nil renderer uses the
// default one.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	var out lipgloss.Style
	if r != nil {
		out = r.NewStyle()
	} else {
		out = lipgloss.NewStyle()
	}
	if s.Foreground != "" {
		out = out.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		out = out.Background(lipgloss.Color(s.Background))
	}
	return out.Bold(s.Bold)
}

// StyleSet provides strongly-typed styles for every UI surface.
type StyleSet struct {
	Header    Style
	Accent    Style
	Text      Style
	Muted     Style
	Prompt    Style
	Banner    Style
	Border    Style
	RainHead  Style
	RainTrail Style
	RainFaint Style
}

// Bundle contains all display styles needed by one session.
type Bundle struct {
	StyleSet
	Variant Variant
}

// TermProfile describes terminal rendering capabilities derived from TERM.
type TermProfile struct {
	Colors    int
	TrueColor bool
	IsTTY     bool
}

// TermProfileDetector maps a TERM value to a terminal capability profile.
type TermProfileDetector func(term string) TermProfile

// ErrUnknownVariant is returned when a requested variant is not known.
var ErrUnknownVariant = errors.New("unknown theme variant")

var (
	termProfileCache sync.Map
	knownProfiles    = map[string]TermProfile{
		"dumb":           {Colors: 0, TrueColor: false, IsTTY: false},
		"ansi":           {Colors: 8, TrueColor: false, IsTTY: true},
		"linux":          {Colors: 16, TrueColor: false, IsTTY: true},
		"xterm":          {Colors: 16, TrueColor: false, IsTTY: true},
		"xterm-256color": {Colors: 256, TrueColor: false, IsTTY: true},
		"screen":         {Colors: 8, TrueColor: false, IsTTY: true},
		"tmux":           {Colors: 256, TrueColor: false, IsTTY: true},
		"vt100":          {Colors: 8, TrueColor: false, IsTTY: true},
		"xterm-kitty":    {Colors: 1 << 24, TrueColor: true, IsTTY: true},
		"wezterm":        {Colors: 1 << 24, TrueColor: true, IsTTY: true},
	}
)

var palettes = map[Variant]Bundle{
	VariantOcean: {
		Variant: VariantOcean,
		StyleSet: StyleSet{
			Header:    Style{Foreground: "#FFFFFF", Background: "#0F172A", Bold: true},
			Accent:    Style{Foreground: "#3B82F6", Bold: true},
			Text:      Style{Foreground: "#E2E8F0"},
			Muted:     Style{Foreground: "#94A3B8"},
			Prompt:    Style{Foreground: "#60A5FA"},
			Banner:    Style{Foreground: "#22D3EE", Bold: true},
			Border:    Style{Foreground: "#1E40AF"},
			RainHead:  Style{Foreground: "#3B82F6"},
			RainTrail: Style{Foreground: "#1D4ED8"},
			RainFaint: Style{Foreground: "#1E293B"},
		},
	},
	VariantMatrix: {
		Variant: VariantMatrix,
		StyleSet: StyleSet{
			Header:    Style{Foreground: "#D1FAE5", Background: "#022C22", Bold: true},
			Accent:    Style{Foreground: "#22C55E", Bold: true},
			Text:      Style{Foreground: "#DCFCE7"},
			Muted:     Style{Foreground: "#6EE7B7"},
			Prompt:    Style{Foreground: "#4ADE80"},
			Banner:    Style{Foreground: "#A3E635", Bold: true},
			Border:    Style{Foreground: "#166534"},
			RainHead:  Style{Foreground: "#86EFAC"},
			RainTrail: Style{Foreground: "#16A34A"},
			RainFaint: Style{Foreground: "#14532D"},
		},
	},
	VariantAmber: {
		Variant: VariantAmber,
		StyleSet: StyleSet{
			Header:    Style{Foreground: "#1C1917", Background: "#F59E0B", Bold: true},
			Accent:    Style{Foreground: "#FBBF24", Bold: true},
			Text:      Style{Foreground: "#FEF3C7"},
			Muted:     Style{Foreground: "#D6A35C"},
			Prompt:    Style{Foreground: "#F59E0B"},
			Banner:    Style{Foreground: "#FDE68A", Bold: true},
			Border:    Style{Foreground: "#92400E"},
			RainHead:  Style{Foreground: "#FCD34D"},
			RainTrail: Style{Foreground: "#B45309"},
			RainFaint: Style{Foreground: "#451A03"},
		},
	},
	VariantMono: monochromeBundle(),
}

var variants = [...]Variant{VariantOcean, VariantMatrix, VariantAmber, VariantMono}

// Variants lists the known variants in display order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants[:])
	return out
}

// ParseVariant maps a user-supplied name to a Variant.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := palettes[v]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return v, nil
}

// Resolve resolves a concrete style bundle for a variant and TERM value.
//
// Terminals without color support get the monochrome bundle.
func Resolve(variant Variant, term string) (Bundle, error) {
	return resolveWith(variant, ResolveOptions{Term: term}, detectTermProfile)
}

// ResolveWithDetector resolves a bundle using a caller-provided TERM detector.
func ResolveWithDetector(variant Variant, opts ResolveOptions, detector TermProfileDetector) (Bundle, error) {
	if detector == nil {
		detector = detectTermProfile
	}
	return resolveWith(variant, opts, detector)
}

// DetectTermProfile maps TERM to a terminal capability profile.
func DetectTermProfile(term string) TermProfile {
	return detectTermProfile(term)
}

// ResolveOptions controls how a bundle is selected once a TERM profile exists.
type ResolveOptions struct {
	Term       string
	ForceColor bool
	ForceMono  bool
}

func resolveWith(variant Variant, opts ResolveOptions, detector TermProfileDetector) (Bundle, error) {
	bundle, _, err := resolveWithProfile(variant, opts, detector)
	return bundle, err
}

func resolveWithProfile(variant Variant, opts ResolveOptions, detector TermProfileDetector) (Bundle, TermProfile, error) {
	base, ok := palettes[variant]
	if !ok {
		return Bundle{}, TermProfile{}, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}

	term := strings.TrimSpace(opts.Term)
	if term == "" {
		term = os.Getenv("TERM")
	}

	profile := detector(term)
	if shouldUseMonochrome(profile, opts) {
		return monochromeBundle(), profile, nil
	}

	return base, profile, nil
}

func shouldUseMonochrome(profile TermProfile, opts ResolveOptions) bool {
	if opts.ForceMono {
		return true
	}
	if opts.ForceColor {
		return false
	}
	return !profile.IsTTY || profile.Colors == 0
}

func detectTermProfile(term string) TermProfile {
	norm := strings.ToLower(strings.TrimSpace(term))
	if cached, ok := termProfileCache.Load(norm); ok {
		return cached.(TermProfile)
	}

	profile := detectTermProfileUncached(norm)
	termProfileCache.Store(norm, profile)
	return profile
}

func detectTermProfileUncached(norm string) TermProfile {
	if norm == "" {
		return TermProfile{Colors: 0, TrueColor: false, IsTTY: false}
	}

	if p, ok := knownProfiles[norm]; ok {
		return p
	}

	profile := TermProfile{Colors: 16, TrueColor: false, IsTTY: true}
	if strings.Contains(norm, "truecolor") || strings.Contains(norm, "24bit") || strings.Contains(norm, "kitty") || strings.Contains(norm, "wezterm") {
		profile.TrueColor = true
		profile.Colors = 1 << 24
	}
	if strings.Contains(norm, "256") {
		profile.Colors = 256
	}
	if strings.Contains(norm, "dumb") {
		profile = TermProfile{Colors: 0, TrueColor: false, IsTTY: false}
	}
	if strings.Contains(norm, "screen") {
		profile.Colors = 8
	}

	return profile
}

func monochromeBundle() Bundle {
	return Bundle{
		Variant: VariantMono,
		StyleSet: StyleSet{
			Header:    Style{Bold: true},
			Accent:    Style{Bold: true},
			Text:      Style{},
			Muted:     Style{},
			Prompt:    Style{Bold: true},
			Banner:    Style{Bold: true},
			Border:    Style{},
			RainHead:  Style{Bold: true},
			RainTrail: Style{},
			RainFaint: Style{},
		},
	}
}
