// Package viewer closes and reopens the spreadsheet application around a
// report write. Every operation is best-effort.
package viewer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Viewer releases and reopens a generated workbook.
type Viewer interface {
	// Close asks a running spreadsheet application to exit so the output
	// file is not locked. It reports whether one was running.
	Close(ctx context.Context) (bool, error)
	// Open shows path in the default application.
	Open(ctx context.Context, path string) error
}

// Noop does nothing.
type Noop struct{}

func (Noop) Close(context.Context) (bool, error) { return false, nil }
func (Noop) Open(context.Context, string) error  { return nil }

// Runner executes external commands.
type Runner interface {
	// Run waits for the command; Start does not.
	Run(ctx context.Context, name string, args ...string) error
	Start(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (execRunner) Start(_ context.Context, name string, args ...string) error {
	// Not bound to ctx: the viewer outlives the command.
	return exec.Command(name, args...).Start()
}

// Platform opens files with the operating system's default handler.
type Platform struct {
	GOOS   string
	Runner Runner
}

// NewPlatform returns a viewer for the running OS.
func NewPlatform() *Platform {
	return &Platform{GOOS: runtime.GOOS, Runner: execRunner{}}
}

// Close ends a running Excel on Windows. Other platforms have nothing to
// release and report false.
func (p *Platform) Close(ctx context.Context) (bool, error) {
	if p.GOOS != "windows" {
		return false, nil
	}
	if err := p.Runner.Run(ctx, "taskkill", "/IM", "EXCEL.EXE"); err != nil {
		// taskkill exits non-zero when no such process exists.
		return false, nil
	}
	return true, nil
}

// Open starts the default application for path.
func (p *Platform) Open(ctx context.Context, path string) error {
	name, args, err := OpenCommand(p.GOOS, path)
	if err != nil {
		return err
	}
	return p.Runner.Start(ctx, name, args...)
}

// OpenCommand returns the command that opens path on goos.
func OpenCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
