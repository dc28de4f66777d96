package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the semantic color palette for the entire TUI.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Profit  lipgloss.Color
	Loss    lipgloss.Color
	Info    lipgloss.Color
}

// Default is a dark palette tuned for the valuation readout: profit
// and loss get the two highest-contrast colors on the board.
var Default = Theme{
	Base:    lipgloss.Color("#16161E"),
	Surface: lipgloss.Color("#1F2335"),
	Border:  lipgloss.Color("#3B4261"),
	Muted:   lipgloss.Color("#565F89"),
	Text:    lipgloss.Color("#C0CAF5"),
	Subtext: lipgloss.Color("#9AA5CE"),
	Primary: lipgloss.Color("#7AA2F7"),
	Accent:  lipgloss.Color("#BB9AF7"),
	Profit:  lipgloss.Color("#9ECE6A"),
	Loss:    lipgloss.Color("#F7768E"),
	Info:    lipgloss.Color("#7DCFFF"),
}

// GradientText applies a horizontal color gradient across each line of text.
func GradientText(text string, from, to lipgloss.Color) string {
	fr, fg, fb := hexToRGB(string(from))
	tr, tg, tb := hexToRGB(string(to))

	lines := strings.Split(text, "\n")
	var result []string

	for _, line := range lines {
		runes := []rune(line)
		n := len(runes)
		if n == 0 {
			result = append(result, "")
			continue
		}

		var sb strings.Builder
		for i, r := range runes {
			t := 0.0
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			cr := uint8(math.Round(float64(fr) + t*float64(int(tr)-int(fr))))
			cg := uint8(math.Round(float64(fg) + t*float64(int(tg)-int(fg))))
			cb := uint8(math.Round(float64(fb) + t*float64(int(tb)-int(fb))))

			color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", cr, cg, cb))
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(r)))
		}
		result = append(result, sb.String())
	}
	return strings.Join(result, "\n")
}

func hexToRGB(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
