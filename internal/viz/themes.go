package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the panels around the grid. Cell colors come from the wave
// itself and are not themed.
type Theme struct {
	Name      string
	TitleFrom lipgloss.Color
	TitleTo   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Border    lipgloss.Color
	Playing   lipgloss.Color
	Paused    lipgloss.Color
	Record    lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		TitleFrom: lipgloss.Color("#ff00ff"),
		TitleTo:   lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#ffff00"),
		Border:    lipgloss.Color("#444466"),
		Playing:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffaa00"),
		Record:    lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		TitleFrom: lipgloss.Color("#00ff00"),
		TitleTo:   lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#88ff88"),
		Border:    lipgloss.Color("#003300"),
		Playing:   lipgloss.Color("#88ff88"),
		Paused:    lipgloss.Color("#ffff00"),
		Record:    lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		TitleFrom: lipgloss.Color("#ffffff"),
		TitleTo:   lipgloss.Color("#888888"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Accent:    lipgloss.Color("#0088ff"),
		Border:    lipgloss.Color("#444444"),
		Playing:   lipgloss.Color("#00ff00"),
		Paused:    lipgloss.Color("#ffaa00"),
		Record:    lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		TitleFrom: lipgloss.Color("#0077be"),
		TitleTo:   lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Accent:    lipgloss.Color("#ffd700"),
		Border:    lipgloss.Color("#003355"),
		Playing:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffcc00"),
		Record:    lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		TitleFrom: lipgloss.Color("#ff6b6b"),
		TitleTo:   lipgloss.Color("#feca57"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Border:    lipgloss.Color("#4d2b4e"),
		Playing:   lipgloss.Color("#5fd068"),
		Paused:    lipgloss.Color("#ffc048"),
		Record:    lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name and whether it exists. Unknown names
// yield the cyberpunk theme.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeCyberpunk, false
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
