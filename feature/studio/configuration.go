package studio

import (
	"fmt"
	"os"
	"path/filepath"
)

// StartupConfiguration is the record handed to the studio server's start
// entry point. JSON names follow the studio server's contract.
// It is built fresh for every start and not retained afterwards.
type StartupConfiguration struct {
	PreviewEntry                   string            `json:"previewEntry"`
	FullEntryPath                  string            `json:"fullEntryPath"`
	RemotionRoot                   string            `json:"remotionRoot"`
	DesiredPort                    *int              `json:"desiredPort"`
	LogLevel                       LogLevel          `json:"logLevel"`
	ConfigValueShouldOpenBrowser   bool              `json:"configValueShouldOpenBrowser"`
	KeyboardShortcutsEnabled       bool              `json:"keyboardShortcutsEnabled"`
	MaxTimelineTracks              *int              `json:"maxTimelineTracks"`
	RelativePublicDir              *string           `json:"relativePublicDir"`
	Poll                           *int              `json:"poll"`
	NumberOfAudioTags              int               `json:"numberOfAudioTags"`
	ParsedCliOpen                  bool              `json:"parsedCliOpen"`
	GitSource                      map[string]string `json:"gitSource"`
	BufferStateDelayInMilliseconds *int              `json:"bufferStateDelayInMilliseconds"`
	BinariesDirectory              *string           `json:"binariesDirectory"`
	ForceIPv4                      bool              `json:"forceIPv4"`
	AudioLatencyHint               *string           `json:"audioLatencyHint"`
	EnableCrossSiteIsolation       bool              `json:"enableCrossSiteIsolation"`
	BrowserArgs                    string            `json:"browserArgs"`
	BrowserFlag                    string            `json:"browserFlag"`

	// Snapshots served by the bridge's synchronous getters.
	RenderDefaults RenderDefaults    `json:"renderDefaults"`
	InputProps     map[string]any    `json:"inputProps"`
	EnvVariables   map[string]string `json:"envVariables"`
	RenderQueue    []Job             `json:"renderQueue"`
}

// Merge shallow-merges opts onto base and resolves the paths. opts must
// already carry defaults (see Options.WithDefaults). base is not modified.
func Merge(base StartupConfiguration, opts Options) (*StartupConfiguration, error) {
	root, err := filepath.Abs(opts.RemotionRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %q: %w", opts.RemotionRoot, err)
	}

	cfg := base
	cfg.RemotionRoot = root
	cfg.FullEntryPath = resolveAgainst(root, opts.EntryPoint)
	cfg.PreviewEntry = resolveAgainst(root, base.PreviewEntry)
	cfg.LogLevel = opts.LogLevel
	cfg.DesiredPort = nil
	if opts.Port != AutoPort {
		port := opts.Port
		cfg.DesiredPort = &port
	}
	return &cfg, nil
}

// CheckPaths verifies that the project root is a directory and the entry file exists.
func (c *StartupConfiguration) CheckPaths() error {
	info, err := os.Stat(c.RemotionRoot)
	if err != nil {
		return fmt.Errorf("%w: project root: %w", ErrInvalidOptions, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: project root %s is not a directory", ErrInvalidOptions, c.RemotionRoot)
	}
	info, err = os.Stat(c.FullEntryPath)
	if err != nil {
		return fmt.Errorf("%w: entry point: %w", ErrInvalidOptions, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: entry point %s is a directory", ErrInvalidOptions, c.FullEntryPath)
	}
	return nil
}

// Snapshot fills the getter-backed fields from props and queue.
func (c *StartupConfiguration) Snapshot(props PropsSource, queue Queue) {
	if p := props.InputProps(); p != nil {
		c.InputProps = p
	} else {
		c.InputProps = map[string]any{}
	}
	if env := props.EnvVariables(); env != nil {
		c.EnvVariables = env
	} else {
		c.EnvVariables = map[string]string{}
	}
	if jobs := queue.RenderQueue(); jobs != nil {
		c.RenderQueue = jobs
	} else {
		c.RenderQueue = []Job{}
	}
}

// Port returns the requested port, or AutoPort.
func (c *StartupConfiguration) Port() int {
	if c.DesiredPort == nil {
		return AutoPort
	}
	return *c.DesiredPort
}

func resolveAgainst(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
