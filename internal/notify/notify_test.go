package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"dalal-market/internal/config"
	"dalal-market/internal/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	name    string
	enabled bool
	// errors returned by successive calls; nil once exhausted
	errs  []error
	calls int
}

func (f *fakeChannel) Name() string  { return f.name }
func (f *fakeChannel) Enabled() bool { return f.enabled }
func (f *fakeChannel) Send(context.Context, models.Inquiry) error {
	f.calls++
	if f.calls <= len(f.errs) {
		return f.errs[f.calls-1]
	}
	return nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	attempts map[string][]models.NotificationAttempt
}

func (r *fakeRecorder) RecordNotification(_ context.Context, inquiryID string, attempt models.NotificationAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attempts == nil {
		r.attempts = make(map[string][]models.NotificationAttempt)
	}
	r.attempts[inquiryID] = append(r.attempts[inquiryID], attempt)
	return nil
}

type fakeObserver struct {
	states []string
}

func (o *fakeObserver) ObserveNotification(channel, state string) {
	o.states = append(o.states, channel+":"+state)
}

// instantTimer fires immediately and remembers every delay it was started with
type instantTimer struct {
	slept *[]time.Duration
	c     chan time.Time
}

func (t *instantTimer) Start(delay time.Duration) {
	*t.slept = append(*t.slept, delay)
	t.c = make(chan time.Time, 1)
	t.c <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time { return t.c }

func newTestDispatcher(recorder Recorder, observer Observer, channels ...Channel) (*Dispatcher, *[]time.Duration) {
	d := NewDispatcher(context.Background(), recorder, observer, Options{MaxAttempts: 3, InitialDelay: 100 * time.Millisecond}, channels...)
	var slept []time.Duration
	d.newTimer = func() backoff.Timer {
		return &instantTimer{slept: &slept}
	}
	return d, &slept
}

func TestDispatcher_Notify(t *testing.T) {
	boom := errors.New("smtp: 421 service not available")

	tests := []struct {
		name         string
		channel      *fakeChannel
		wantState    string
		wantAttempts int
		wantSleeps   []time.Duration
		wantErr      string
	}{
		{
			name:      "disabled_channel_is_skipped",
			channel:   &fakeChannel{name: "whatsapp", enabled: false},
			wantState: models.NotificationSkipped,
		},
		{
			name:         "first_try_succeeds",
			channel:      &fakeChannel{name: "email", enabled: true},
			wantState:    models.NotificationSent,
			wantAttempts: 1,
		},
		{
			name:         "succeeds_after_retry_with_backoff",
			channel:      &fakeChannel{name: "email", enabled: true, errs: []error{boom, boom}},
			wantState:    models.NotificationSent,
			wantAttempts: 3,
			wantSleeps:   []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
		},
		{
			name:         "fails_after_max_attempts",
			channel:      &fakeChannel{name: "email", enabled: true, errs: []error{boom, boom, boom, boom}},
			wantState:    models.NotificationFailed,
			wantAttempts: 3,
			wantSleeps:   []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
			wantErr:      boom.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			observer := &fakeObserver{}
			d, slept := newTestDispatcher(recorder, observer, tt.channel)

			out := d.Notify(context.Background(), models.Inquiry{InquiryID: "inq-1"})
			require.Len(t, out, 1)
			require.Equal(t, tt.wantState, out[0].State)
			require.Equal(t, tt.wantAttempts, out[0].Attempts)
			require.Equal(t, tt.wantAttempts, tt.channel.calls)
			require.Equal(t, tt.wantErr, out[0].Error)
			require.False(t, out[0].At.IsZero())
			if tt.wantSleeps == nil {
				require.Empty(t, *slept)
			} else {
				require.Equal(t, tt.wantSleeps, *slept)
			}

			require.Equal(t, out, recorder.attempts["inq-1"])
			require.Equal(t, []string{tt.channel.name + ":" + tt.wantState}, observer.states)
		})
	}
}

func TestDispatcher_StopsRetryingOnCancel(t *testing.T) {
	ch := &fakeChannel{name: "email", enabled: true, errs: []error{errors.New("down"), errors.New("down"), errors.New("down")}}
	recorder := &fakeRecorder{}
	d := NewDispatcher(context.Background(), recorder, nil, Options{MaxAttempts: 3, InitialDelay: time.Hour}, ch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := d.Notify(ctx, models.Inquiry{InquiryID: "inq-1"})

	require.Equal(t, models.NotificationFailed, out[0].State)
	require.Equal(t, 1, ch.calls)
	require.Contains(t, out[0].Error, "context canceled")
	require.Len(t, recorder.attempts["inq-1"], 1, "outcome recorded even after cancellation")
}

func TestDispatcher_NotifyAsync(t *testing.T) {
	recorder := &fakeRecorder{}
	d, _ := newTestDispatcher(recorder, nil,
		&fakeChannel{name: "email", enabled: true},
		&fakeChannel{name: "whatsapp", enabled: false},
	)

	d.NotifyAsync(models.Inquiry{InquiryID: "inq-1"})
	d.Wait()

	got := recorder.attempts["inq-1"]
	require.Len(t, got, 2)
	require.Equal(t, models.NotificationSent, got[0].State)
	require.Equal(t, models.NotificationSkipped, got[1].State)
}

func TestWhatsAppChannel_Send(t *testing.T) {
	var received whatsAppMessage
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"detail":"rate limited"}`))
	}))
	defer srv.Close()

	ch := NewWhatsAppChannel(config.WhatsAppConfig{
		Enabled:     true,
		APIURL:      srv.URL,
		APIToken:    "token-1",
		PhoneNumber: "+966500000000",
		Timeout:     time.Second,
	})
	require.True(t, ch.Enabled())

	inquiry := models.Inquiry{InquiryID: "inq-1", Name: "Sara", Phone: "0500", Type: models.InquiryGeneral, Message: "Is it available?"}
	require.NoError(t, ch.Send(context.Background(), inquiry))
	require.Equal(t, "+966500000000", received.To)
	require.Contains(t, received.Body, "Name: Sara")
	require.Contains(t, received.Body, "Is it available?")

	status = http.StatusTooManyRequests
	err := ch.Send(context.Background(), inquiry)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 429")
}

func TestChannelsEnabled(t *testing.T) {
	require.False(t, NewWhatsAppChannel(config.WhatsAppConfig{Enabled: true, APIURL: "http://x"}).Enabled())
	require.False(t, NewWhatsAppChannel(config.WhatsAppConfig{APIURL: "http://x", APIToken: "t", PhoneNumber: "1"}).Enabled())

	require.False(t, NewEmailChannel(config.SMTPConfig{Host: "smtp.example.com", Port: 587, SenderEmail: "a@b.c"}).Enabled())
	require.True(t, NewEmailChannel(config.SMTPConfig{Host: "smtp.example.com", Port: 587, SenderEmail: "a@b.c", AdminEmail: "admin@b.c"}).Enabled())
}

func TestEmailChannel_SendFailsWithoutServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	ch := NewEmailChannel(config.SMTPConfig{
		Host: host, Port: p, SenderEmail: "noreply@example.com", AdminEmail: "admin@example.com",
		Encryption: "none", Timeout: 2 * time.Second,
	})
	require.Error(t, ch.Send(context.Background(), models.Inquiry{Name: "Sara"}))
}

func TestFormatInquiry(t *testing.T) {
	body := FormatInquiry(models.Inquiry{
		Name:      "Sara",
		Phone:     "0500",
		Email:     "sara@example.com",
		Type:      models.InquiryFreeEstimate,
		Message:   "Need a quote",
		CreatedAt: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	})
	require.Contains(t, body, "Email: sara@example.com")
	require.Contains(t, body, "Type: Free estimate")
	require.NotContains(t, body, "Address:")
	require.True(t, strings.HasSuffix(body, "Received: 2025-03-01 09:30"))
}
