package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_WithDefaults(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		opts := Options{}.WithDefaults("/work/project")
		assert.Equal(t, AutoPort, opts.Port)
		assert.Equal(t, "/work/project", opts.RemotionRoot)
		assert.Equal(t, DefaultEntryPoint, opts.EntryPoint)
		assert.Equal(t, LogLevelInfo, opts.LogLevel)
	})

	t.Run("KeepsGivenValues", func(t *testing.T) {
		given := Options{Port: 3000, RemotionRoot: "/other", EntryPoint: "src/Root.tsx", LogLevel: LogLevelVerbose}
		assert.Equal(t, given, given.WithDefaults("/work/project"))
	})
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"AutoPort", Options{Port: AutoPort, LogLevel: LogLevelInfo}, false},
		{"ExplicitPort", Options{Port: 3000, LogLevel: LogLevelWarn}, false},
		{"MaxPort", Options{Port: 65535, LogLevel: LogLevelError}, false},
		{"NegativePort", Options{Port: -1, LogLevel: LogLevelInfo}, true},
		{"PortTooLarge", Options{Port: 70000, LogLevel: LogLevelInfo}, true},
		{"UnknownLevel", Options{LogLevel: "debug"}, true},
		{"EmptyLevel", Options{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOptions)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptions_PortLabel(t *testing.T) {
	assert.Equal(t, "auto-select", Options{}.PortLabel())
	assert.Equal(t, "3000", Options{Port: 3000}.PortLabel())
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", AutoPort, false},
		{"auto", AutoPort, false},
		{" AUTO ", AutoPort, false},
		{"3000", 3000, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"65536", 0, true},
		{"http", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePort(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOptions)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, in := range []string{"info", "verbose", "warn", "error", "WARN"} {
		lvl, err := ParseLogLevel(in)
		assert.NoError(t, err, in)
		assert.NotEmpty(t, lvl)
	}

	lvl, err := ParseLogLevel("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, lvl)

	_, err = ParseLogLevel("trace")
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{Port: "4000", Root: "/proj", EntryPoint: "src/main.ts", LogLevel: "verbose"}
	opts, err := cfg.Options()
	assert.NoError(t, err)
	assert.Equal(t, Options{Port: 4000, RemotionRoot: "/proj", EntryPoint: "src/main.ts", LogLevel: LogLevelVerbose}, opts)

	_, err = Config{Port: "nope"}.Options()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Config{Port: "auto", LogLevel: "loud"}.Options()
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestConfig_Base(t *testing.T) {
	base := Config{
		PreviewEntry:      "/opt/studio/previewEntry.js",
		OpenBrowser:       false,
		KeyboardShortcuts: true,
		NumberOfAudioTags: 4,
		ForceIPv4:         true,
	}.Base()

	assert.Equal(t, "/opt/studio/previewEntry.js", base.PreviewEntry)
	assert.False(t, base.ConfigValueShouldOpenBrowser)
	assert.False(t, base.ParsedCliOpen)
	assert.True(t, base.KeyboardShortcutsEnabled)
	assert.Equal(t, 4, base.NumberOfAudioTags)
	assert.True(t, base.ForceIPv4)
	assert.Equal(t, DefaultRenderDefaults(), base.RenderDefaults)

	assert.Equal(t, DefaultPreviewEntry, Config{}.Base().PreviewEntry)
	assert.Equal(t, 1, Config{}.Base().NumberOfAudioTags)
}
