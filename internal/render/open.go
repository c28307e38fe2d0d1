package render

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// viewerCommand returns the command that opens path with the desktop
// default application on goos.
func viewerCommand(goos, path string) (string, []string, bool) {
	switch goos {
	case "darwin":
		return "open", []string{path}, true
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, true
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, true
	default:
		return "", nil, false
	}
}

// Open starts the platform viewer for path without waiting for it to exit.
func Open(ctx context.Context, path string) error {
	name, args, ok := viewerCommand(runtime.GOOS, path)
	if !ok {
		return fmt.Errorf("no viewer known for %s", runtime.GOOS)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
