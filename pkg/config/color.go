package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellchart/pkg/buffer"
	"github.com/matzehuels/cellchart/pkg/errors"
)

// namedColors maps names to the 16 base ANSI colors.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// ParseColor turns a document color into a terminal color.
//
// Accepted forms: "" or "reset" (terminal default), a base color name
// ("cyan"), an ANSI 256 index ("36"), or a hex RGB value ("#1e90ff", "#fff").
func ParseColor(s string) (lipgloss.TerminalColor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "reset" || s == "default":
		return buffer.Reset, nil
	case namedColors[s] != "":
		return lipgloss.Color(namedColors[s]), nil
	case strings.HasPrefix(s, "#"):
		if !isHex(s[1:]) || (len(s) != 4 && len(s) != 7) {
			return nil, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", s)
		}
		return lipgloss.Color(s), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return nil, errors.New(errors.ErrCodeInvalidColor, "invalid color %q (want name, 0-255 or #rrggbb)", s)
	}
	return lipgloss.Color(strconv.Itoa(n)), nil
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
