// Package desktop opens links in the system browser and writes to the
// system clipboard.
package desktop

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Ensure Browser implements the interface.
var _ driven.URLOpener = (*Browser)(nil)

// Browser opens URLs with the platform's default handler.
type Browser struct {
	goos  string
	start func(ctx context.Context, name string, args ...string) error
}

// NewBrowser creates a browser opener for the running platform.
func NewBrowser() *Browser {
	return &Browser{goos: runtime.GOOS, start: startCommand}
}

// Open launches the browser for rawURL without waiting for it to exit.
// Only http and https URLs are opened.
func (b *Browser) Open(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parsing url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	name, args, err := openCommand(b.goos, u.String())
	if err != nil {
		return err
	}
	logger.Debug("Opening %s with %s", u, name)
	return b.start(ctx, name, args...)
}

// openCommand returns the command that opens target on goos.
func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("opening urls is not supported on %s", goos)
	}
}

// startCommand starts the opener detached from ctx so the browser outlives
// the command that launched it.
func startCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found: %w", name, err)
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debug("%s exited: %v", name, err)
		}
	}()
	return nil
}
