package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/atotto/clipboard"
)

// ClipboardWriter writes text to a clipboard.
type ClipboardWriter interface {
	// Available reports whether the clipboard can be written at all.
	Available() bool
	WriteText(ctx context.Context, text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// Available reports whether a clipboard utility was found on this system.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// WriteText copies text to the system clipboard.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// OSC52 copies text by emitting the OSC 52 terminal escape sequence. Terminal
// emulators that support it place the payload on the local clipboard, which
// also works over SSH where no system clipboard is reachable.
type OSC52 struct {
	mu  sync.Mutex
	Out io.Writer
}

// NewOSC52 returns a writer emitting escape sequences to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{Out: out}
}

// Available reports whether an output stream is configured.
func (o *OSC52) Available() bool {
	return o != nil && o.Out != nil
}

// WriteText emits the escape sequence carrying text.
func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !o.Available() {
		return ErrClipboardUnavailable
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintf(o.Out, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// Fallback tries Primary first and falls back to Legacy when Primary is
// unavailable or fails.
type Fallback struct {
	Primary ClipboardWriter
	Legacy  ClipboardWriter
	Logger  *slog.Logger
}

// Available reports whether either writer is available.
func (f Fallback) Available() bool {
	return (f.Primary != nil && f.Primary.Available()) || (f.Legacy != nil && f.Legacy.Available())
}

// WriteText writes text with the first writer that succeeds.
func (f Fallback) WriteText(ctx context.Context, text string) error {
	var primaryErr error
	if f.Primary != nil && f.Primary.Available() {
		primaryErr = f.Primary.WriteText(ctx, text)
		if primaryErr == nil {
			return nil
		}
		if f.Logger != nil {
			f.Logger.WarnContext(ctx, "primary clipboard failed, using fallback", slog.Any("error", primaryErr))
		}
	}
	if f.Legacy == nil || !f.Legacy.Available() {
		if primaryErr != nil {
			return primaryErr
		}
		return ErrClipboardUnavailable
	}
	return f.Legacy.WriteText(ctx, text)
}
