package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/mantrachain/dapp-template/pkg/format"
)

var (
	colorSuccess = lipgloss.Color("#00D26A")
	colorError   = lipgloss.Color("#FF4444")
	colorLink    = lipgloss.Color("#00B4D8")
	colorMeta    = lipgloss.Color("#555555")

	styleLink = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	styleMeta = lipgloss.NewStyle().Foreground(colorMeta)
)

func toastStyle(variant usecase.ToastVariant) (lipgloss.Style, lipgloss.Style) {
	accent := colorSuccess
	if variant == usecase.ToastDestructive {
		accent = colorError
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true)
	return box, title
}

// ToastRenderer draws toasts as bordered boxes. A terminal has no timer to
// dismiss a toast, so the duration is shown as a hint only in debug mode.
type ToastRenderer struct {
	out   io.Writer
	debug bool
}

// NewToastRenderer creates a new ToastRenderer writing to out
func NewToastRenderer(out io.Writer, debug bool) *ToastRenderer {
	return &ToastRenderer{out: out, debug: debug}
}

// ProvideNotifier builds the notifier for the current output mode. JSON
// output stays machine readable, so toasts are dropped there.
func ProvideNotifier(cfg *config.RuntimeConfig) usecase.Notifier {
	if cfg.JSON {
		return usecase.NopNotifier{}
	}
	return NewToastRenderer(os.Stderr, cfg.Debug)
}

// Notify renders toast
func (r *ToastRenderer) Notify(ctx context.Context, toast usecase.Toast) {
	fmt.Fprintln(r.out, Render(toast, r.debug))
}

// Render returns the boxed toast text
func Render(toast usecase.Toast, debug bool) string {
	box, title := toastStyle(toast.Variant)

	lines := []string{title.Render(toast.Title)}
	if toast.Description != "" {
		lines = append(lines, toast.Description)
	}
	if toast.TxHash != "" {
		link := format.ShortenAddress(toast.TxHash)
		if toast.TxURL != "" {
			link = styleLink.Render(toast.TxURL)
		}
		lines = append(lines, "View transaction: "+link)
	}
	if debug && toast.Duration > 0 {
		lines = append(lines, styleMeta.Render(fmt.Sprintf("(%s)", toast.Duration)))
	}
	return box.Render(strings.Join(lines, "\n"))
}

var _ usecase.Notifier = (*ToastRenderer)(nil)
