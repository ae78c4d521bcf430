package studio

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Console prints the human-readable start banners.
type Console struct {
	out    io.Writer
	errOut io.Writer

	title   *color.Color
	label   *color.Color
	success *color.Color
	failure *color.Color
}

// NewConsole writes progress to out and failures to errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:     out,
		errOut:  errOut,
		title:   color.New(color.FgBlue, color.Bold),
		label:   color.New(color.FgCyan),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

// StdConsole writes to the process's stdout and stderr.
func StdConsole() *Console {
	return NewConsole(os.Stdout, os.Stderr)
}

// Parameters prints what is about to be started.
func (c *Console) Parameters(cfg *StartupConfiguration) {
	c.title.Fprintln(c.out, "Starting Remotion Studio")
	c.row("project root", cfg.RemotionRoot)
	c.row("entry point", cfg.FullEntryPath)
	c.row("port", Options{Port: cfg.Port()}.PortLabel())
	c.row("log level", string(cfg.LogLevel))
}

// Started prints the success banner. AutoPort means the bound port is unknown.
func (c *Console) Started(port int) {
	if port == AutoPort {
		c.success.Fprintln(c.out, "✔ Studio is running (port chosen by the studio server, see its output for the address)")
		return
	}
	c.success.Fprintf(c.out, "✔ Studio is running at http://localhost:%d\n", port)
}

// Failed prints the failure banner with the underlying error.
func (c *Console) Failed(err error) {
	c.failure.Fprintf(c.errOut, "✖ Failed to start Studio: %v\n", err)
}

func (c *Console) row(name, value string) {
	c.label.Fprintf(c.out, "  %-13s", name)
	io.WriteString(c.out, value+"\n")
}
