package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers, borders, field labels)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - created confirmations
	Edit   string `yaml:"edit"`   // Blue - update confirmations
	Delete string `yaml:"delete"` // Red - delete confirmations

	// Status colors for projects and tasks
	Finished string `yaml:"finished"`
	Open     string `yaml:"open"`
	Overdue  string `yaml:"overdue"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// Presets lists the preset names accepted in the config file
func Presets() []string {
	return []string{"default", "monochrome"}
}

// fields returns pointers to every color value, in declaration order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Create, &c.Edit, &c.Delete,
		&c.Finished, &c.Open, &c.Overdue,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	base := preset.fields()
	for i, field := range c.fields() {
		if *field == "" {
			*field = *base[i]
		}
	}
}

// MergeFrom overrides colors with the non-empty values of other.
// A preset in other replaces the current preset.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	src := other.fields()
	for i, field := range c.fields() {
		if *src[i] != "" {
			*field = *src[i]
		}
	}
}
