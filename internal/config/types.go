package config

// FileName is the project configuration file, relative to the working directory.
const FileName = "xala.config.json"

// CurrentUIVersion is the UI system version a loaded config is migrated to.
const CurrentUIVersion = "5.0.0"

const (
	// SystemName identifies the UI system package in ui.system.
	SystemName = "@xala-technologies/ui-system"
	// DefaultVersion is the project version written into new configs.
	DefaultVersion = "1.0.0"
	// DefaultTheme is the preset a new project starts with.
	DefaultTheme = "xala-default"
	// DefaultPlatform is the target platform of a new project.
	DefaultPlatform = "react"
)

// Integration names with dedicated handling.
const (
	IntegrationXaheen    = "xaheen"
	IntegrationStorybook = "storybook"
	IntegrationFigma     = "figma"
	IntegrationVSCode    = "vscode"
)

// SupportedPlatforms is the ui.platform allow-list.
var SupportedPlatforms = []string{"react", "nextjs", "vue", "angular", "svelte", "react-native", "electron"}

// ProjectType describes how the project consumes the UI system.
type ProjectType string

const (
	TypeStandalone       ProjectType = "standalone"
	TypeXaheenIntegrated ProjectType = "xaheen-integrated"
	TypeCustom           ProjectType = "custom"
)

// ProjectConfig is the persisted shape of xala.config.json.
type ProjectConfig struct {
	Name         string                 `json:"name" yaml:"name" validate:"required"`
	Version      string                 `json:"version" yaml:"version"`
	Type         ProjectType            `json:"type" yaml:"type" validate:"omitempty,oneof=standalone xaheen-integrated custom"`
	UI           UIConfig               `json:"ui" yaml:"ui"`
	Integrations map[string]Integration `json:"integrations,omitempty" yaml:"integrations,omitempty"`
	Development  DevelopmentConfig      `json:"development" yaml:"development"`
	Build        BuildConfig            `json:"build" yaml:"build"`
	Compliance   ComplianceConfig       `json:"compliance" yaml:"compliance"`
}

// UIConfig selects the UI system release, theme and target platform.
type UIConfig struct {
	System         string         `json:"system" yaml:"system"`
	Version        string         `json:"version" yaml:"version"`
	Theme          string         `json:"theme" yaml:"theme" validate:"required"`
	Platform       string         `json:"platform" yaml:"platform" validate:"required,platform"`
	Compliance     UICompliance   `json:"compliance" yaml:"compliance"`
	Customizations map[string]any `json:"customizations,omitempty" yaml:"customizations,omitempty"`
}

// UICompliance holds the component-level compliance targets.
type UICompliance struct {
	WCAG              string `json:"wcag" yaml:"wcag" validate:"omitempty,oneof=A AA AAA"`
	NSMClassification string `json:"nsmClassification" yaml:"nsmClassification" validate:"omitempty,nsm"`
	GDPR              bool   `json:"gdpr" yaml:"gdpr"`
}

// Integration toggles an external tool. Hooks map an event to a script path.
type Integration struct {
	Enabled bool              `json:"enabled" yaml:"enabled"`
	Version string            `json:"version,omitempty" yaml:"version,omitempty"`
	Hooks   map[string]string `json:"hooks,omitempty" yaml:"hooks,omitempty"`
}

// DevelopmentConfig configures the local dev server.
type DevelopmentConfig struct {
	HotReload bool `json:"hotReload" yaml:"hotReload"`
	Port      int  `json:"port" yaml:"port" validate:"omitempty,min=1,max=65535"`
	Storybook bool `json:"storybook" yaml:"storybook"`
}

// BuildConfig configures generated output.
type BuildConfig struct {
	OutputDir  string   `json:"outputDir" yaml:"outputDir"`
	ThemeDir   string   `json:"themeDir" yaml:"themeDir"`
	Formats    []string `json:"formats,omitempty" yaml:"formats,omitempty" validate:"omitempty,dive,oneof=theme tokens css tailwind types docs"`
	Minify     bool     `json:"minify" yaml:"minify"`
	SourceMaps bool     `json:"sourceMaps" yaml:"sourceMaps"`
}

// ComplianceConfig holds project-wide compliance settings.
type ComplianceConfig struct {
	NSMClassification string `json:"nsmClassification" yaml:"nsmClassification" validate:"omitempty,nsm"`
	GDPR              bool   `json:"gdpr" yaml:"gdpr"`
	WCAGLevel         string `json:"wcagLevel" yaml:"wcagLevel" validate:"omitempty,oneof=A AA AAA"`
	AuditLog          bool   `json:"auditLog" yaml:"auditLog"`
}

// Default returns the configuration written when no file exists yet.
func Default(name string) ProjectConfig {
	return ProjectConfig{
		Name:    name,
		Version: DefaultVersion,
		Type:    TypeStandalone,
		UI: UIConfig{
			System:   SystemName,
			Version:  CurrentUIVersion,
			Theme:    DefaultTheme,
			Platform: DefaultPlatform,
			Compliance: UICompliance{
				WCAG:              "AA",
				NSMClassification: "OPEN",
				GDPR:              true,
			},
			Customizations: map[string]any{},
		},
		Integrations: map[string]Integration{
			IntegrationXaheen:    {Enabled: false},
			IntegrationStorybook: {Enabled: false},
			IntegrationFigma:     {Enabled: false},
			IntegrationVSCode:    {Enabled: true},
		},
		Development: DevelopmentConfig{
			HotReload: true,
			Port:      3000,
		},
		Build: BuildConfig{
			OutputDir:  "dist",
			ThemeDir:   "src/themes",
			Formats:    []string{"theme", "tokens", "css", "tailwind", "types", "docs"},
			SourceMaps: true,
		},
		Compliance: ComplianceConfig{
			NSMClassification: "OPEN",
			GDPR:              true,
			WCAGLevel:         "AA",
		},
	}
}

// Clone returns a deep copy.
func (c ProjectConfig) Clone() ProjectConfig {
	out := c
	if c.Integrations != nil {
		out.Integrations = make(map[string]Integration, len(c.Integrations))
		for name, in := range c.Integrations {
			if in.Hooks != nil {
				hooks := make(map[string]string, len(in.Hooks))
				for k, v := range in.Hooks {
					hooks[k] = v
				}
				in.Hooks = hooks
			}
			out.Integrations[name] = in
		}
	}
	if c.UI.Customizations != nil {
		out.UI.Customizations = cloneAny(c.UI.Customizations).(map[string]any)
	}
	out.Build.Formats = append([]string(nil), c.Build.Formats...)
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = cloneAny(inner)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneAny(inner)
		}
		return s
	default:
		return v
	}
}
