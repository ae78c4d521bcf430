package studio

import "strings"

// BrowserArgs are passed to the browser the studio opens. They relax web
// security and site isolation so compositions can load cross-origin media.
var BrowserArgs = []string{
	"--disable-web-security",
	"--disable-features=IsolateOrigins",
	"--disable-site-isolation-trials",
}

// DefaultPreviewEntry is the studio UI entry module, relative to the project root.
const DefaultPreviewEntry = "node_modules/@remotion/studio/dist/previewEntry.js"

// RenderDefaults pre-fills the studio's render dialog.
// Nil pointers, slices and maps are sent as null.
type RenderDefaults struct {
	JpegQuality                    int               `json:"jpegQuality"`
	LogLevel                       LogLevel          `json:"logLevel"`
	Codec                          string            `json:"codec"`
	Concurrency                    int               `json:"concurrency"`
	Muted                          bool              `json:"muted"`
	EnforceAudioTrack              bool              `json:"enforceAudioTrack"`
	ProResProfile                  *string           `json:"proResProfile"`
	X264Preset                     string            `json:"x264Preset"`
	PixelFormat                    string            `json:"pixelFormat"`
	VideoBitrate                   *string           `json:"videoBitrate"`
	AudioBitrate                   *string           `json:"audioBitrate"`
	Webhook                        *string           `json:"webhook"`
	EveryNthFrame                  int               `json:"everyNthFrame"`
	NumberOfGifLoops               *int              `json:"numberOfGifLoops"`
	DelayRenderTimeout             int               `json:"delayRenderTimeout"`
	DisableWebSecurity             bool              `json:"disableWebSecurity"`
	OpenGlRenderer                 *string           `json:"openGlRenderer"`
	IgnoreCertificateErrors        bool              `json:"ignoreCertificateErrors"`
	OffthreadVideoCacheSizeInBytes *int64            `json:"offthreadVideoCacheSizeInBytes"`
	ColorSpace                     string            `json:"colorSpace"`
	Scale                          float64           `json:"scale"`
	MinConcurrency                 int               `json:"minConcurrency"`
	MaxConcurrency                 int               `json:"maxConcurrency"`
	StillImageFormat               string            `json:"stillImageFormat"`
	AudioCodec                     *string           `json:"audioCodec"`
	VideoCodec                     *string           `json:"videoCodec"`
	EncodingMaxRate                *string           `json:"encodingMaxRate"`
	EncodingBufferSize             *string           `json:"encodingBufferSize"`
	Renderer                       string            `json:"renderer"`
	PreferLossless                 bool              `json:"preferLossless"`
	ForSeamlessAacConcatenation    bool              `json:"forSeamlessAacConcatenation"`
	CompositionStartFrom           int               `json:"compositionStartFrom"`
	CompositionDurationInFrames    *int              `json:"compositionDurationInFrames"`
	FrameRange                     []int             `json:"frameRange"`
	Height                         *int              `json:"height"`
	Width                          *int              `json:"width"`
	BrowserExecutable              *string           `json:"browserExecutable"`
	OutputLocation                 *string           `json:"outputLocation"`
	Overwrite                      bool              `json:"overwrite"`
	InputProps                     map[string]any    `json:"inputProps"`
	EnvVariables                   map[string]string `json:"envVariables"`
	ChromiumOptions                map[string]any    `json:"chromiumOptions"`
	ServeURL                       string            `json:"serveUrl"`
	Port                           *int              `json:"port"`
	PublicDir                      *string           `json:"publicDir"`
	VideoImageFormat               string            `json:"videoImageFormat"`
	UserAgent                      *string           `json:"userAgent"`
	MediaCacheSizeInBytes          *int64            `json:"mediaCacheSizeInBytes"`
	OffthreadVideoThreads          *int              `json:"offthreadVideoThreads"`
	ChromiumDisableWebSecurity     bool              `json:"chromiumDisableWebSecurity"`
	Headless                       bool              `json:"headless"`
	Indent                         bool              `json:"indent"`
	MultiProcessOnLinux            bool              `json:"multiProcessOnLinux"`
	ReproducibleBuild              bool              `json:"reproducibleBuild"`
	BeepOnFinish                   bool              `json:"beepOnFinish"`
	Repro                          bool              `json:"repro"`
	Metadata                       map[string]string `json:"metadata"`
	HardwareAcceleration           string            `json:"hardwareAcceleration"`
	ChromeMode                     string            `json:"chromeMode"`
}

// DefaultRenderDefaults returns a fresh copy of the fixed render defaults.
func DefaultRenderDefaults() RenderDefaults {
	return RenderDefaults{
		JpegQuality:          80,
		LogLevel:             LogLevelInfo,
		Codec:                "h264",
		Concurrency:          1,
		X264Preset:           "medium",
		PixelFormat:          "yuv420p",
		EveryNthFrame:        1,
		DelayRenderTimeout:   30000,
		ColorSpace:           "default",
		Scale:                1,
		MinConcurrency:       1,
		MaxConcurrency:       1,
		StillImageFormat:     "png",
		Renderer:             "webgl",
		Overwrite:            true,
		InputProps:           map[string]any{},
		EnvVariables:         map[string]string{},
		ChromiumOptions:      map[string]any{},
		VideoImageFormat:     "png",
		Headless:             true,
		HardwareAcceleration: "if-possible",
		ChromeMode:           "chrome-for-testing",
	}
}

// DefaultConfiguration is the named default startup configuration. It carries
// every field the studio server requires except the per-call paths, port and
// log level, which Merge fills in from Options.
func DefaultConfiguration() StartupConfiguration {
	return StartupConfiguration{
		PreviewEntry:                 DefaultPreviewEntry,
		DesiredPort:                  nil,
		LogLevel:                     DefaultLogLevel,
		ConfigValueShouldOpenBrowser: true,
		KeyboardShortcutsEnabled:     true,
		NumberOfAudioTags:            1,
		ParsedCliOpen:                true,
		ForceIPv4:                    false,
		EnableCrossSiteIsolation:     false,
		BrowserArgs:                  strings.Join(BrowserArgs, " "),
		BrowserFlag:                  "chrome",
		RenderDefaults:               DefaultRenderDefaults(),
		InputProps:                   map[string]any{},
		EnvVariables:                 map[string]string{},
		RenderQueue:                  []Job{},
	}
}
