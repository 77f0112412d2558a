package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dalal-market/internal/models"
	"dalal-market/utils"

	"github.com/cenkalti/backoff/v4"
)

// Channel delivers an inquiry notification to one destination
type Channel interface {
	Name() string
	// Enabled reports whether the channel is switched on and fully configured
	Enabled() bool
	Send(ctx context.Context, inquiry models.Inquiry) error
}

// Recorder stores the outcome of each channel on the inquiry
type Recorder interface {
	RecordNotification(ctx context.Context, inquiryID string, attempt models.NotificationAttempt) error
}

// Observer is told the final state of each channel
type Observer interface {
	ObserveNotification(channel, state string)
}

type Options struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// Dispatcher sends inquiry notifications over every channel with retry and backoff
type Dispatcher struct {
	channels     []Channel
	recorder     Recorder
	observer     Observer
	maxAttempts  int
	initialDelay time.Duration
	now          func() time.Time
	// newTimer supplies the retry timer; nil means backoff's real timer
	newTimer func() backoff.Timer

	base context.Context
	wg   sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. Background sends run under base and stop when it is cancelled.
func NewDispatcher(base context.Context, recorder Recorder, observer Observer, opts Options, channels ...Channel) *Dispatcher {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &Dispatcher{
		channels:     channels,
		recorder:     recorder,
		observer:     observer,
		maxAttempts:  opts.MaxAttempts,
		initialDelay: opts.InitialDelay,
		now:          time.Now,
		base:         base,
	}
}

// NotifyAsync dispatches in a background goroutine
func (d *Dispatcher) NotifyAsync(inquiry models.Inquiry) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.Notify(d.base, inquiry)
	}()
}

// Wait blocks until every background dispatch has finished
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Notify runs every channel and records one attempt per channel
func (d *Dispatcher) Notify(ctx context.Context, inquiry models.Inquiry) []models.NotificationAttempt {
	out := make([]models.NotificationAttempt, 0, len(d.channels))
	for _, ch := range d.channels {
		attempt := d.deliver(ctx, ch, inquiry)
		out = append(out, attempt)

		if d.observer != nil {
			d.observer.ObserveNotification(attempt.Channel, attempt.State)
		}
		// the request context may already be gone; the outcome still has to land
		recordCtx := context.WithoutCancel(ctx)
		if err := d.recorder.RecordNotification(recordCtx, inquiry.InquiryID, attempt); err != nil {
			utils.Error("failed to record notification outcome", map[string]any{
				"inquiry_id": inquiry.InquiryID,
				"channel":    attempt.Channel,
				"error":      err.Error(),
			})
		}
	}
	return out
}

func (d *Dispatcher) deliver(ctx context.Context, ch Channel, inquiry models.Inquiry) models.NotificationAttempt {
	attempt := models.NotificationAttempt{Channel: ch.Name()}
	if !ch.Enabled() {
		attempt.State = models.NotificationSkipped
		attempt.At = d.now().UTC()
		utils.Info("notification channel disabled, skipping", map[string]any{"channel": ch.Name(), "inquiry_id": inquiry.InquiryID})
		return attempt
	}

	var lastErr error
	operation := func() error {
		attempt.Attempts++
		lastErr = ch.Send(ctx, inquiry)
		if lastErr != nil {
			utils.Warn("notification attempt failed", map[string]any{
				"channel":    ch.Name(),
				"inquiry_id": inquiry.InquiryID,
				"attempt":    attempt.Attempts,
				"error":      lastErr.Error(),
			})
		}
		return lastErr
	}

	var timer backoff.Timer
	if d.newTimer != nil {
		timer = d.newTimer()
	}
	err := backoff.RetryNotifyWithTimer(operation, d.retryPolicy(ctx), nil, timer)
	if err == nil {
		attempt.State = models.NotificationSent
		attempt.At = d.now().UTC()
		utils.Info("notification sent", map[string]any{"channel": ch.Name(), "inquiry_id": inquiry.InquiryID, "attempts": attempt.Attempts})
		return attempt
	}
	if lastErr == nil {
		lastErr = err
	} else if !errors.Is(err, lastErr) {
		lastErr = fmt.Errorf("%w (gave up: %v)", lastErr, err)
	}

	attempt.State = models.NotificationFailed
	attempt.Error = lastErr.Error()
	attempt.At = d.now().UTC()
	utils.Error("notification failed", map[string]any{"channel": ch.Name(), "inquiry_id": inquiry.InquiryID, "error": attempt.Error})
	return attempt
}

// retryPolicy doubles the delay from initialDelay without jitter, for at most maxAttempts sends
func (d *Dispatcher) retryPolicy(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.initialDelay
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxInterval = time.Hour
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(d.maxAttempts-1)), ctx)
}

var inquiryTypeLabels = map[models.InquiryType]string{
	models.InquiryFreeEstimate:   "Free estimate",
	models.InquiryServiceRequest: "Service request",
	models.InquiryProductInfo:    "Product information",
	models.InquiryGeneral:        "General inquiry",
	models.InquiryEmergency:      "Emergency",
}

// FormatInquiry renders the plain-text body shared by every channel
func FormatInquiry(inquiry models.Inquiry) string {
	var b strings.Builder
	b.WriteString("New Inquiry\n\n")
	fmt.Fprintf(&b, "Name: %s\n", inquiry.Name)
	fmt.Fprintf(&b, "Phone: %s\n", inquiry.Phone)
	if inquiry.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", inquiry.Email)
	}
	if inquiry.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", inquiry.Address)
	}
	label, ok := inquiryTypeLabels[inquiry.Type]
	if !ok {
		label = string(inquiry.Type)
	}
	fmt.Fprintf(&b, "\nType: %s\n", label)
	if inquiry.ListingID != "" {
		fmt.Fprintf(&b, "Listing: %s\n", inquiry.ListingID)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", inquiry.Message)
	fmt.Fprintf(&b, "\nReceived: %s", inquiry.CreatedAt.UTC().Format("2006-01-02 15:04"))
	return b.String()
}
