package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's font, but they can choose between Unicode and
// ASCII glyphs for affordances (sort arrows, separators, remove buttons).

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference picks the glyph set: PAPERBOARD_TUI_GLYPHS first, then the
// configured tui.glyphs value. Unknown values are ignored.
func applyGlyphPreference(configured string) {
	for _, v := range []string{os.Getenv("PAPERBOARD_TUI_GLYPHS"), configured} {
		if gs, ok := parseGlyphSet(v); ok {
			setGlyphs(gs)
			return
		}
	}
}

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return glyphSetUnicode, false
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphSortAsc() string {
	if glyphs() == glyphSetASCII {
		return "^"
	}
	return "▲"
}

func glyphSortDesc() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "▼"
}

func glyphColumnSep() string {
	if glyphs() == glyphSetASCII {
		return "|"
	}
	return "│"
}

func glyphRemove() string {
	if glyphs() == glyphSetASCII {
		return "x"
	}
	return "×"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "·"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}
