package styles

// DefaultTheme is used before any palette has been derived.
var DefaultTheme = Theme{
	Name: "default",
	Dark: true,
	Tokens: ThemeTokens{
		Background:    "#0B0F14",
		Panel:         "#121821",
		Header:        "#161D28",
		Text:          "#E6EDF3",
		TextMuted:     "#8B9AAE",
		TextHighlight: "#FFFFFF",
		Border:        "#223043",
		Accent:        "#5B8DEF",
		AccentText:    "#FFFFFF",
		Focus:         "#7AA2F7",
		Selection:     "#264F78",
		SelectionText: "#FFFFFF",
		Success:       "#3FB950",
		Warning:       "#D29922",
		Error:         "#F85149",
		Info:          "#58A6FF",
	},
}
