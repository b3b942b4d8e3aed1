package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is one colour scheme of the site. The page ships a light and a dark
// theme and the visitor toggles between them.
type Theme struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Scheme string      `yaml:"scheme"` // "light" or "dark"
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors holds the core colours a theme is derived from.
type ThemeColors struct {
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Primary    string `yaml:"primary"` // buttons and links
	Accent     string `yaml:"accent"`  // keyword chips, highlights
	Text       string `yaml:"text"`
}

type themesFile struct {
	Themes []Theme `yaml:"themes"`
}

// LoadThemes reads themes from path. When the file is missing the embedded
// fallback is parsed, and when that is empty too the built-in defaults apply.
func LoadThemes(path string, fallback []byte) ([]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read themes file: %w", err)
		}
		data = fallback
	}
	if len(data) == 0 {
		return DefaultThemes(), nil
	}

	var f themesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse themes file: %w", err)
	}
	if len(f.Themes) == 0 {
		return DefaultThemes(), nil
	}
	for _, t := range f.Themes {
		if t.Scheme != "light" && t.Scheme != "dark" {
			return nil, fmt.Errorf("theme %q: scheme must be light or dark", t.ID)
		}
		for _, c := range []string{t.Colors.Background, t.Colors.Surface, t.Colors.Primary, t.Colors.Accent, t.Colors.Text} {
			if _, err := parseHex(c); err != nil {
				return nil, fmt.Errorf("theme %q: invalid colour %q", t.ID, c)
			}
		}
	}
	return f.Themes, nil
}

// DefaultThemes returns the built-in slate light and dark palettes.
func DefaultThemes() []Theme {
	return []Theme{
		{
			ID: "light", Name: "Light", Scheme: "light",
			Colors: ThemeColors{
				Background: "#f1f5f9", Surface: "#ffffff",
				Primary: "#000000", Accent: "#0284c7", Text: "#334155",
			},
		},
		{
			ID: "dark", Name: "Dark", Scheme: "dark",
			Colors: ThemeColors{
				Background: "#0f172a", Surface: "#000000",
				Primary: "#ffffff", Accent: "#38bdf8", Text: "#cbd5e1",
			},
		},
	}
}

// ThemeStylesheet renders CSS custom properties for the first light theme on
// :root and the first dark theme on :root.dark.
func ThemeStylesheet(themes []Theme) string {
	var b strings.Builder
	var haveLight, haveDark bool
	for _, t := range themes {
		switch {
		case t.Scheme == "light" && !haveLight:
			haveLight = true
			fmt.Fprintf(&b, ":root { %s }\n", themeVariables(t))
		case t.Scheme == "dark" && !haveDark:
			haveDark = true
			fmt.Fprintf(&b, ":root.dark { %s }\n", themeVariables(t))
		}
	}
	return b.String()
}

// themeVariables derives the full set of custom properties from a theme's
// core colours.
func themeVariables(t Theme) string {
	c := t.Colors
	bg := mustParseHex(c.Background)
	surface := mustParseHex(c.Surface)
	text := mustParseHex(c.Text)
	primary := mustParseHex(c.Primary)

	var surfaceHover rgb
	shadowAlpha := 0.12
	if t.Scheme == "dark" {
		surfaceHover = lighten(surface, 0.08)
		shadowAlpha = 0.35
	} else {
		surfaceHover = darken(surface, 0.04)
	}

	var b strings.Builder
	writeProp := func(name, value string) {
		fmt.Fprintf(&b, "--%s: %s; ", name, value)
	}

	writeProp("bg", c.Background)
	writeProp("bg-surface", c.Surface)
	writeProp("bg-surface-hover", hexString(surfaceHover))
	writeProp("border", hexString(blendColors(surface, text, 0.20)))
	writeProp("primary", c.Primary)
	writeProp("primary-text", hexString(readableOn(primary)))
	writeProp("accent", c.Accent)
	writeProp("text", c.Text)
	writeProp("text-muted", hexString(blendColors(text, bg, 0.40)))
	writeProp("text-heading", hexString(contrastPush(text, bg, 0.60)))
	writeProp("shadow", fmt.Sprintf("0 4px 24px rgba(0, 0, 0, %.2f)", shadowAlpha))
	writeProp("card-radius", "16px")
	fmt.Fprintf(&b, "color-scheme: %s;", t.Scheme)

	return b.String()
}

type rgb struct {
	r, g, b uint8
}

// parseHex accepts #rgb and #rrggbb.
func parseHex(hex string) (rgb, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("colour %q must be #rgb or #rrggbb", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return rgb{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return rgb{r, g, b}, nil
}

// mustParseHex is for colours LoadThemes has already checked.
func mustParseHex(hex string) rgb {
	c, err := parseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func hexString(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func blendColors(c1, c2 rgb, ratio float64) rgb {
	return rgb{
		r: uint8(float64(c1.r)*(1-ratio) + float64(c2.r)*ratio),
		g: uint8(float64(c1.g)*(1-ratio) + float64(c2.g)*ratio),
		b: uint8(float64(c1.b)*(1-ratio) + float64(c2.b)*ratio),
	}
}

// luminance is a simplified sRGB relative luminance in [0,1].
func luminance(c rgb) float64 {
	return 0.2126*float64(c.r)/255 + 0.7152*float64(c.g)/255 + 0.0722*float64(c.b)/255
}

func darken(c rgb, amount float64) rgb {
	return rgb{
		r: uint8(math.Max(0, float64(c.r)*(1-amount))),
		g: uint8(math.Max(0, float64(c.g)*(1-amount))),
		b: uint8(math.Max(0, float64(c.b)*(1-amount))),
	}
}

func lighten(c rgb, amount float64) rgb {
	return rgb{
		r: uint8(math.Min(255, float64(c.r)+amount*255)),
		g: uint8(math.Min(255, float64(c.g)+amount*255)),
		b: uint8(math.Min(255, float64(c.b)+amount*255)),
	}
}

// readableOn picks black or white text for a fill colour.
func readableOn(fill rgb) rgb {
	if luminance(fill) > 0.5 {
		return rgb{0, 0, 0}
	}
	return rgb{255, 255, 255}
}

// contrastPush moves text further from the background for headings.
func contrastPush(text, bg rgb, amount float64) rgb {
	if luminance(bg) > 0.5 {
		return darken(text, amount)
	}
	return lighten(text, amount)
}
