package dialog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mantrachain/dapp-template/internal/domain/config"
	"github.com/mantrachain/dapp-template/internal/usecase"
	"github.com/mattn/go-isatty"
)

const tickInterval = 120 * time.Millisecond

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1E3A5F")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9B5DE5")).Bold(true)
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B4D8"))
)

type tickMsg struct{}

type closeMsg struct{}

// model renders the awaiting-transaction dialog
type model struct {
	action string
	frame  int
	done   bool
}

func newModel(action string) model {
	return model{action: action}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(frames)
		return m, tick()
	case closeMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Transaction in progress"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s Waiting for your %s transaction to be confirmed...",
		frameStyle.Render(frames[m.frame]), describe(m.action)))
	return boxStyle.Render(b.String()) + "\n"
}

func describe(action string) string {
	if action == "" {
		return "contract"
	}
	return action
}

// TerminalObserver shows the dialog as a bubbletea program for as long as it
// is open
type TerminalObserver struct {
	out  io.Writer
	opts []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTerminalObserver creates a new TerminalObserver writing to out
func NewTerminalObserver(out io.Writer) *TerminalObserver {
	return &TerminalObserver{
		out: out,
		opts: []tea.ProgramOption{
			tea.WithOutput(out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		},
	}
}

// OnDialogChange starts or stops the dialog program
func (o *TerminalObserver) OnDialogChange(open bool, action string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if open {
		if o.program != nil {
			return
		}
		p := tea.NewProgram(newModel(action), o.opts...)
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = p.Run()
		}()
		o.program = p
		o.done = done
		return
	}

	if o.program == nil {
		return
	}
	o.program.Send(closeMsg{})
	<-o.done
	o.program = nil
	o.done = nil
}

// LineObserver prints one line per dialog change, for terminals that cannot
// host an animated program
type LineObserver struct {
	out io.Writer
}

// NewLineObserver creates a new LineObserver
func NewLineObserver(out io.Writer) *LineObserver {
	return &LineObserver{out: out}
}

// OnDialogChange prints the state change
func (o *LineObserver) OnDialogChange(open bool, action string) {
	if open {
		fmt.Fprintln(o.out, color.New(color.FgYellow).Sprintf("⏳ Waiting for %s transaction...", describe(action)))
		return
	}
	fmt.Fprintln(o.out, color.New(color.Faint).Sprint("Transaction dialog closed"))
}

// ProvideObserver picks the dialog renderer for the current terminal. JSON
// output gets no dialog at all.
func ProvideObserver(cfg *config.RuntimeConfig) usecase.DialogObserver {
	switch {
	case cfg.JSON:
		return nopObserver{}
	case cfg.NonInteractive || !isatty.IsTerminal(os.Stderr.Fd()):
		return NewLineObserver(os.Stderr)
	default:
		return NewTerminalObserver(os.Stderr)
	}
}

type nopObserver struct{}

func (nopObserver) OnDialogChange(bool, string) {}

// ProvideAwaitingDialog creates the process-wide dialog state
func ProvideAwaitingDialog(observer usecase.DialogObserver) *usecase.AwaitingDialog {
	return usecase.NewAwaitingDialog(observer)
}

var (
	_ usecase.DialogObserver = (*TerminalObserver)(nil)
	_ usecase.DialogObserver = (*LineObserver)(nil)
)
