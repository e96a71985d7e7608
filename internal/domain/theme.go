package domain

// Theme is one visual skin of the SPA. Skins differ only in presentation.
type Theme struct {
	Name       string `json:"name"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Card       string `json:"card"`
}

// Themes lists the available skins; the first is the default.
var Themes = []Theme{
	{Name: "indigo", Accent: "#4f46e5", Background: "#eef2ff", Card: "#ffffff"},
	{Name: "emerald", Accent: "#10b981", Background: "#ecfdf5", Card: "#ffffff"},
	{Name: "sunset", Accent: "#f97316", Background: "#fff7ed", Card: "#ffffff"},
	{Name: "midnight", Accent: "#8b5cf6", Background: "#0f172a", Card: "#1e293b"},
	{Name: "glass", Accent: "#9333ea", Background: "#f5f3ff", Card: "rgba(255,255,255,0.8)"},
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
