package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// Status
		Finished: "#5FD75F",
		Open:     "#FFD700",
		Overdue:  "#FF5F5F",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
