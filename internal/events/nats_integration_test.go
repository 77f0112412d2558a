//go:build integration

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

func TestNATSPublisher_Publish(t *testing.T) {
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	resource, err := pool.Run("nats", "2.10-alpine", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	var conn *nats.Conn
	url := fmt.Sprintf("nats://localhost:%s", resource.GetPort("4222/tcp"))
	require.NoError(t, pool.Retry(func() error {
		conn, err = Connect(url, "events-test")
		return err
	}))
	t.Cleanup(conn.Close)

	sub, err := conn.SubscribeSync(SubjectOrderCreated)
	require.NoError(t, err)

	publisher, err := NewNATSPublisher(conn)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), SubjectOrderCreated, OrderEvent{OrderID: "o1", BuyerID: "b1"}))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)

	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	require.Equal(t, "o1", got.OrderID)
	require.Equal(t, "b1", got.BuyerID)
}
