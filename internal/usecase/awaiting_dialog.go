package usecase

import (
	"sync"

	"github.com/mantrachain/dapp-template/internal/domain"
)

// AwaitingDialog is the process-wide "awaiting transaction" flag. At most
// one submission holds it at a time.
type AwaitingDialog struct {
	mu        sync.Mutex
	open      bool
	action    string
	observers []DialogObserver
}

// NewAwaitingDialog creates a closed dialog; observer may be nil
func NewAwaitingDialog(observer DialogObserver) *AwaitingDialog {
	d := &AwaitingDialog{}
	if observer != nil {
		d.observers = append(d.observers, observer)
	}
	return d
}

// Subscribe adds an observer
func (d *AwaitingDialog) Subscribe(o DialogObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, o)
}

// Begin opens the dialog for action, or fails with
// domain.ErrSubmissionInFlight while another submission holds it
func (d *AwaitingDialog) Begin(action string) error {
	d.mu.Lock()
	if d.open {
		d.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	d.open = true
	d.action = action
	observers := append([]DialogObserver(nil), d.observers...)
	d.mu.Unlock()

	for _, o := range observers {
		o.OnDialogChange(true, action)
	}
	return nil
}

// End closes the dialog. Closing a closed dialog is a no-op.
func (d *AwaitingDialog) End() {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return
	}
	action := d.action
	d.open = false
	d.action = ""
	observers := append([]DialogObserver(nil), d.observers...)
	d.mu.Unlock()

	for _, o := range observers {
		o.OnDialogChange(false, action)
	}
}

// IsOpen reports whether a submission currently holds the dialog
func (d *AwaitingDialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}
