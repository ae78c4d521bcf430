package studio

// Config holds the launcher's studio settings, loaded by core/config.
// Port, Root, EntryPoint and LogLevel seed Options; the rest tune the
// base configuration every start is merged onto.
type Config struct {
	// Port is a port number or "auto".
	Port string `mapstructure:"port" default:"auto"`
	// Root is the project directory. Empty means the working directory.
	Root string `mapstructure:"root" default:""`
	// EntryPoint is the composition entry file relative to Root.
	EntryPoint string `mapstructure:"entry_point" default:"./src/index.ts"`
	// LogLevel is the studio server's verbosity (info, verbose, warn, error).
	LogLevel string `mapstructure:"log_level" default:"info"`
	// PreviewEntry is the studio UI entry module, relative to Root unless absolute.
	PreviewEntry string `mapstructure:"preview_entry" default:"node_modules/@remotion/studio/dist/previewEntry.js"`
	// NodeBinary is the node executable that hosts the studio server.
	NodeBinary string `mapstructure:"node_binary" default:"node"`
	// OpenBrowser opens the studio in a browser once it is up.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// KeyboardShortcuts enables the studio's keyboard shortcuts.
	KeyboardShortcuts bool `mapstructure:"keyboard_shortcuts" default:"true"`
	// NumberOfAudioTags is the number of shared audio tags in the preview.
	NumberOfAudioTags int `mapstructure:"number_of_audio_tags" default:"1"`
	// ForceIPv4 binds the studio server to IPv4 only.
	ForceIPv4 bool `mapstructure:"force_ipv4" default:"false"`
}

// Options converts the configured user-facing values.
func (c Config) Options() (Options, error) {
	port, err := ParsePort(c.Port)
	if err != nil {
		return Options{}, err
	}
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Port:         port,
		RemotionRoot: c.Root,
		EntryPoint:   c.EntryPoint,
		LogLevel:     level,
	}, nil
}

// Base returns DefaultConfiguration adjusted by the non user-facing settings.
func (c Config) Base() StartupConfiguration {
	base := DefaultConfiguration()
	if c.PreviewEntry != "" {
		base.PreviewEntry = c.PreviewEntry
	}
	base.ConfigValueShouldOpenBrowser = c.OpenBrowser
	base.ParsedCliOpen = c.OpenBrowser
	base.KeyboardShortcutsEnabled = c.KeyboardShortcuts
	if c.NumberOfAudioTags > 0 {
		base.NumberOfAudioTags = c.NumberOfAudioTags
	}
	base.ForceIPv4 = c.ForceIPv4
	return base
}
