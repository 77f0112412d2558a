package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, string, any) error {
	f.calls++
	return errors.New("broker down")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	PublishOrLog(context.Background(), r, SubjectOrderCreated, OrderEvent{OrderID: "o1"})
	PublishOrLog(context.Background(), r, SubjectBidPlaced, BidPlaced{BidID: "b1"})

	require.Equal(t, []string{SubjectOrderCreated, SubjectBidPlaced}, r.Subjects())
	require.Equal(t, "o1", r.Events()[0].Event.(OrderEvent).OrderID)
}

func TestPublishOrLog_SwallowsErrors(t *testing.T) {
	f := &failingPublisher{}
	require.NotPanics(t, func() {
		PublishOrLog(context.Background(), f, SubjectAuctionClosed, AuctionClosed{})
		PublishOrLog(context.Background(), nil, SubjectAuctionClosed, AuctionClosed{})
	})
	require.Equal(t, 1, f.calls)
	require.NoError(t, LogPublisher{}.Publish(context.Background(), SubjectInquiryCreated, InquiryCreated{}))
}

func TestNewNATSPublisher_NilConn(t *testing.T) {
	_, err := NewNATSPublisher(nil)
	require.Error(t, err)
}

func TestObservedPublisher(t *testing.T) {
	var seen []string
	observe := func(subject string, err error) {
		state := "ok"
		if err != nil {
			state = "error"
		}
		seen = append(seen, subject+":"+state)
	}

	ok := NewObservedPublisher(&Recorder{}, observe)
	require.NoError(t, ok.Publish(context.Background(), SubjectOrderCreated, OrderEvent{}))

	failing := NewObservedPublisher(&failingPublisher{}, observe)
	require.Error(t, failing.Publish(context.Background(), SubjectBidPlaced, BidPlaced{}))

	require.Equal(t, []string{"order.created:ok", "auction.bid_placed:error"}, seen)
}
