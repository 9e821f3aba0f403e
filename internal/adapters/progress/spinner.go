package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mantrachain/dapp-template/internal/usecase"
)

// SpinnerProgressReporter shows the running stage with a spinner and prints
// a check line with the elapsed time when a stage is left
type SpinnerProgressReporter struct {
	out     io.Writer
	spinner *spinner.Spinner

	mu           sync.Mutex
	stages       []stageInfo
	currentStage string
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter on stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		r.currentStage = event.Stage
		r.stages = append(r.stages, stageInfo{
			Stage:     event.Stage,
			StartTime: time.Now(),
		})
	}
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printAround(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printAround(color.New(color.FgRed), message)
}

// Done completes the last stage and stops the spinner
func (r *SpinnerProgressReporter) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completeCurrentStage()
	r.currentStage = ""
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// printAround stops the spinner while printing so lines are not interleaved
func (r *SpinnerProgressReporter) printAround(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage prints the finished stage with its duration
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) == 0 || r.currentStage == "" {
		return
	}
	idx := len(r.stages) - 1
	if !r.stages[idx].EndTime.IsZero() {
		return
	}
	r.stages[idx].EndTime = time.Now()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	stage := r.stages[idx]
	fmt.Fprintf(r.out, "%s %s %s\n",
		color.New(color.FgGreen).Sprint("✓"),
		stage.Message,
		color.New(color.Faint).Sprintf("(%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)))
	if wasActive {
		r.spinner.Start()
	}
}

// Stages returns the names of the stages seen so far
func (r *SpinnerProgressReporter) Stages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.stages))
	for i, s := range r.stages {
		names[i] = s.Stage
	}
	return names
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
