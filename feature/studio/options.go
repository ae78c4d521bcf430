package studio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LogLevel is the studio server's log verbosity.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelVerbose LogLevel = "verbose"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

const (
	// AutoPort asks the studio server to pick a free port itself.
	AutoPort = 0
	// DefaultEntryPoint is the conventional project entry file.
	DefaultEntryPoint = "./src/index.ts"
	// DefaultLogLevel is used when no log level is given.
	DefaultLogLevel = LogLevelInfo
)

// ErrInvalidOptions marks startup failures caused by the caller's options or paths.
var ErrInvalidOptions = errors.New("invalid studio options")

var validate = validator.New()

// Options are the user-facing settings of a studio start.
// The zero value means "all defaults".
type Options struct {
	// Port to listen on; AutoPort lets the studio server choose.
	Port int `validate:"min=0,max=65535"`
	// RemotionRoot is the project directory. Empty means the current working directory.
	RemotionRoot string
	// EntryPoint is the composition entry file, relative to RemotionRoot unless absolute.
	EntryPoint string
	// LogLevel is passed through to the studio server.
	LogLevel LogLevel `validate:"oneof=info verbose warn error"`
}

// WithDefaults fills every empty field. cwd is the fallback project root.
func (o Options) WithDefaults(cwd string) Options {
	if o.RemotionRoot == "" {
		o.RemotionRoot = cwd
	}
	if o.EntryPoint == "" {
		o.EntryPoint = DefaultEntryPoint
	}
	if o.LogLevel == "" {
		o.LogLevel = DefaultLogLevel
	}
	return o
}

// Validate checks the port range and log level.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s must satisfy %s=%s, got %v", ErrInvalidOptions, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// PortLabel renders the requested port for humans.
func (o Options) PortLabel() string {
	if o.Port == AutoPort {
		return "auto-select"
	}
	return strconv.Itoa(o.Port)
}

// ParsePort accepts a port number, or "auto"/"" for AutoPort.
func ParsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return AutoPort, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%w: port must be a number between 1 and 65535 or \"auto\", got %q", ErrInvalidOptions, s)
	}
	return port, nil
}

// ParseLogLevel accepts one of info, verbose, warn, error; empty means the default.
func ParseLogLevel(s string) (LogLevel, error) {
	switch lvl := LogLevel(strings.ToLower(strings.TrimSpace(s))); lvl {
	case "":
		return DefaultLogLevel, nil
	case LogLevelInfo, LogLevelVerbose, LogLevelWarn, LogLevelError:
		return lvl, nil
	default:
		return "", fmt.Errorf("%w: unknown log level %q", ErrInvalidOptions, s)
	}
}
