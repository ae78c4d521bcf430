package studio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProject creates a project tree with the conventional entry file.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "index.ts"), []byte("export {};\n"), 0o644))
	return root
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.Nil(t, cfg.DesiredPort)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.True(t, cfg.ConfigValueShouldOpenBrowser)
	assert.True(t, cfg.ParsedCliOpen)
	assert.Equal(t, "--disable-web-security --disable-features=IsolateOrigins --disable-site-isolation-trials", cfg.BrowserArgs)
	assert.Equal(t, "chrome", cfg.BrowserFlag)

	rd := cfg.RenderDefaults
	assert.Equal(t, 80, rd.JpegQuality)
	assert.Equal(t, "h264", rd.Codec)
	assert.Equal(t, "yuv420p", rd.PixelFormat)
	assert.Equal(t, "medium", rd.X264Preset)
	assert.Equal(t, 30000, rd.DelayRenderTimeout)
	assert.Equal(t, "webgl", rd.Renderer)
	assert.Equal(t, "if-possible", rd.HardwareAcceleration)
	assert.Equal(t, "chrome-for-testing", rd.ChromeMode)
	assert.True(t, rd.Headless)
	assert.True(t, rd.Overwrite)

	t.Run("FreshCopies", func(t *testing.T) {
		a := DefaultConfiguration()
		a.RenderDefaults.InputProps["x"] = 1
		a.InputProps["y"] = 2
		b := DefaultConfiguration()
		assert.Empty(t, b.RenderDefaults.InputProps)
		assert.Empty(t, b.InputProps)
	})
}

func TestMerge(t *testing.T) {
	root := newProject(t)

	t.Run("ResolvesEntryUnderRoot", func(t *testing.T) {
		cfg, err := Merge(DefaultConfiguration(), Options{RemotionRoot: root, EntryPoint: "./src/index.ts", LogLevel: LogLevelWarn})
		require.NoError(t, err)

		assert.True(t, filepath.IsAbs(cfg.FullEntryPath))
		assert.Equal(t, filepath.Join(root, "src", "index.ts"), cfg.FullEntryPath)
		assert.Equal(t, filepath.Join(root, DefaultPreviewEntry), cfg.PreviewEntry)
		assert.Equal(t, root, cfg.RemotionRoot)
		assert.Equal(t, LogLevelWarn, cfg.LogLevel)
		assert.Nil(t, cfg.DesiredPort)
		assert.Equal(t, AutoPort, cfg.Port())
	})

	t.Run("RelativeRoot", func(t *testing.T) {
		t.Chdir(root)
		cfg, err := Merge(DefaultConfiguration(), Options{RemotionRoot: ".", EntryPoint: "src/index.ts", LogLevel: LogLevelInfo})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(cfg.RemotionRoot))
		assert.True(t, filepath.IsAbs(cfg.FullEntryPath))
	})

	t.Run("AbsoluteEntryKept", func(t *testing.T) {
		entry := filepath.Join(root, "src", "index.ts")
		cfg, err := Merge(DefaultConfiguration(), Options{RemotionRoot: "/elsewhere", EntryPoint: entry, LogLevel: LogLevelInfo})
		require.NoError(t, err)
		assert.Equal(t, entry, cfg.FullEntryPath)
	})

	t.Run("ExplicitPort", func(t *testing.T) {
		cfg, err := Merge(DefaultConfiguration(), Options{Port: 3000, RemotionRoot: root, EntryPoint: DefaultEntryPoint, LogLevel: LogLevelInfo})
		require.NoError(t, err)
		require.NotNil(t, cfg.DesiredPort)
		assert.Equal(t, 3000, *cfg.DesiredPort)
		assert.Equal(t, 3000, cfg.Port())
	})

	t.Run("BaseUntouched", func(t *testing.T) {
		base := DefaultConfiguration()
		_, err := Merge(base, Options{Port: 3000, RemotionRoot: root, EntryPoint: DefaultEntryPoint, LogLevel: LogLevelError})
		require.NoError(t, err)
		assert.Nil(t, base.DesiredPort)
		assert.Empty(t, base.RemotionRoot)
		assert.Equal(t, LogLevelInfo, base.LogLevel)
	})
}

func TestMerge_EveryFieldPresent(t *testing.T) {
	root := newProject(t)
	want := jsonKeys(t, DefaultConfiguration())

	// A single user-facing option must still yield the complete record.
	partials := []Options{
		{Port: 3000},
		{EntryPoint: "src/index.ts"},
		{LogLevel: LogLevelVerbose},
		{RemotionRoot: root},
	}
	for _, p := range partials {
		cfg, err := Merge(DefaultConfiguration(), p.WithDefaults(root))
		require.NoError(t, err)

		got := jsonKeys(t, *cfg)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, cfg.FullEntryPath)
		assert.NotEmpty(t, cfg.PreviewEntry)
		assert.NotEmpty(t, cfg.BrowserArgs)
		assert.NotNil(t, cfg.RenderQueue)
	}
}

func jsonKeys(t *testing.T, cfg StartupConfiguration) map[string]bool {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	rd, ok := m["renderDefaults"].(map[string]any)
	require.True(t, ok)
	for k := range rd {
		keys["renderDefaults."+k] = true
	}
	return keys
}

func TestCheckPaths(t *testing.T) {
	root := newProject(t)

	tests := []struct {
		name    string
		root    string
		entry   string
		wantErr bool
	}{
		{"Valid", root, filepath.Join(root, "src", "index.ts"), false},
		{"MissingRoot", filepath.Join(root, "nope"), filepath.Join(root, "src", "index.ts"), true},
		{"RootIsFile", filepath.Join(root, "src", "index.ts"), filepath.Join(root, "src", "index.ts"), true},
		{"MissingEntry", root, filepath.Join(root, "src", "Root.tsx"), true},
		{"EntryIsDir", root, filepath.Join(root, "src"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StartupConfiguration{RemotionRoot: tt.root, FullEntryPath: tt.entry}
			err := cfg.CheckPaths()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOptions)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Snapshot(NoopProps{}, NoopQueue{})
	assert.NotNil(t, cfg.InputProps)
	assert.NotNil(t, cfg.EnvVariables)
	assert.NotNil(t, cfg.RenderQueue)

	props := &recordingProps{props: map[string]any{"title": "Hello"}, env: map[string]string{"API": "x"}}
	queue := &recordingQueue{jobs: []Job{{"id": "1"}}}
	cfg.Snapshot(props, queue)
	assert.Equal(t, "Hello", cfg.InputProps["title"])
	assert.Equal(t, "x", cfg.EnvVariables["API"])
	assert.Len(t, cfg.RenderQueue, 1)
	assert.Equal(t, 1, props.propsCalls)
	assert.Equal(t, 1, props.envCalls)
}
