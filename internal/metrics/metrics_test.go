package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/auctions/:auction_id/bids", http.StatusCreated, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/auctions/:auction_id/bids", http.StatusCreated, 10*time.Millisecond)
	m.ObserveBid(BidAccepted, "")
	m.ObserveBid(BidRejected, "too_low")
	m.ObserveBid(BidRejected, "too_low")
	m.ObserveAuctionClosed()
	m.ObserveNotification("email", "sent")
	m.ObserveEvent("order.created", nil)
	m.ObserveEvent("order.created", errors.New("down"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/auctions/:auction_id/bids", "201")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Bids.WithLabelValues(BidAccepted, "")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Bids.WithLabelValues(BidRejected, "too_low")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.AuctionsClosed))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("email", "sent")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("order.created", "error")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.ObserveBid(BidAccepted, "")
		m.ObserveAuctionClosed()
		m.ObserveNotification("email", "sent")
		m.ObserveEvent("x", nil)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveBid(BidAccepted, "")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.Contains(string(body), "dalal_market_bids_total"))
	require.True(t, strings.Contains(string(body), "go_goroutines"))
}
