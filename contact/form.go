package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samnmy/portfolio/constants"
	"github.com/samnmy/portfolio/core"
)

// Status is the submit button state
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// LabelKey is the translation key for the button label in this state
func (s Status) LabelKey() string {
	switch s {
	case StatusSending:
		return "contact.buttons.sending"
	case StatusSent:
		return "contact.buttons.sent"
	case StatusError:
		return "contact.buttons.error"
	default:
		return "contact.buttons.send"
	}
}

// AfterFunc schedules fn after d and returns a function that cancels it
type AfterFunc func(d time.Duration, fn func()) (stop func() bool)

func timerAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// FormOption configures a Form
type FormOption func(*Form)

// WithRevertDelay sets how long sent/error is shown before returning to idle
func WithRevertDelay(d time.Duration) FormOption {
	return func(f *Form) { f.revertDelay = d }
}

// WithAfterFunc replaces the timer used for the revert
func WithAfterFunc(after AfterFunc) FormOption {
	return func(f *Form) { f.after = after }
}

// WithOnChange registers a callback invoked after every status change
// It runs on the goroutine that caused the change, without the form lock held
func WithOnChange(fn func(Status)) FormOption {
	return func(f *Form) { f.onChange = fn }
}

// WithTimeout bounds each relay request
func WithTimeout(d time.Duration) FormOption {
	return func(f *Form) { f.timeout = d }
}

// Form holds the contact fields and drives idle -> sending -> sent|error -> idle
type Form struct {
	sender Sender
	logger *zap.Logger

	revertDelay time.Duration
	timeout     time.Duration
	after       AfterFunc
	onChange    func(Status)

	mu         sync.Mutex
	fields     Message
	status     Status
	generation uint64
	stopRevert func() bool

	wg sync.WaitGroup
}

// NewForm creates an idle form that submits through sender
func NewForm(sender Sender, logger *zap.Logger, opts ...FormOption) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Form{
		sender:      sender,
		logger:      logger,
		revertDelay: constants.ContactStatusRevert,
		timeout:     constants.ContactRequestTimeout,
		after:       timerAfterFunc,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetFields replaces the form input
func (f *Form) SetFields(msg Message) {
	f.mu.Lock()
	f.fields = msg
	f.mu.Unlock()
}

// Fields returns the current input
func (f *Form) Fields() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns the current button state
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates the fields and starts an asynchronous send
// Returns ErrBusy while a send is in flight and ErrInvalid without changing state
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSending {
		f.mu.Unlock()
		return ErrBusy
	}
	msg := f.fields
	if err := msg.Validate(); err != nil {
		f.mu.Unlock()
		return err
	}

	if f.stopRevert != nil {
		f.stopRevert()
		f.stopRevert = nil
	}
	f.generation++
	gen := f.generation
	f.status = StatusSending
	f.wg.Add(1)
	f.mu.Unlock()

	// Short id ties the start and outcome log lines of one submission together
	id := uuid.New().String()[:8]
	f.logger.Debug("contact submission started", zap.String("submission", id))
	f.notify(StatusSending)

	core.Go(func() {
		defer f.wg.Done()

		sendCtx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()

		f.finish(gen, id, f.sender.Send(sendCtx, msg))
	})
	return nil
}

func (f *Form) finish(gen uint64, id string, err error) {
	f.mu.Lock()
	if err != nil {
		f.logger.Warn("contact submission failed", zap.String("submission", id), zap.Error(err))
		f.status = StatusError
	} else {
		f.logger.Info("contact submission sent", zap.String("submission", id))
		f.status = StatusSent
		f.fields = Message{}
	}
	status := f.status
	f.stopRevert = f.after(f.revertDelay, func() { f.revert(gen) })
	f.mu.Unlock()

	f.notify(status)
}

// revert returns to idle unless a newer submission has started since gen
func (f *Form) revert(gen uint64) {
	f.mu.Lock()
	if f.generation != gen || (f.status != StatusSent && f.status != StatusError) {
		f.mu.Unlock()
		return
	}
	f.status = StatusIdle
	f.stopRevert = nil
	f.mu.Unlock()

	f.notify(StatusIdle)
}

func (f *Form) notify(s Status) {
	if f.onChange != nil {
		f.onChange(s)
	}
}

// Wait blocks until any in-flight send has finished
func (f *Form) Wait() {
	f.wg.Wait()
}

// Close waits for an in-flight send and cancels a pending revert
func (f *Form) Close() {
	f.wg.Wait()

	f.mu.Lock()
	if f.stopRevert != nil {
		f.stopRevert()
		f.stopRevert = nil
	}
	f.mu.Unlock()
}
