package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dalal-market/utils"

	"github.com/nats-io/nats.go"
)

// Connect opens a NATS connection with reconnect handling
func Connect(url, clientName string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(clientName),
		nats.Timeout(5 * time.Second),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			fields := map[string]any{}
			if err != nil {
				fields["error"] = err.Error()
			}
			utils.Warn("NATS disconnected", fields)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			utils.Info("NATS reconnected", map[string]any{"url": nc.ConnectedUrl()})
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			utils.Info("NATS connection closed", nil)
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("events: connect to NATS %s: %w", url, err)
	}
	utils.Info("connected to NATS", map[string]any{"url": nc.ConnectedUrl()})
	return nc, nil
}

// NATSPublisher encodes events as JSON and publishes them on core NATS
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(conn *nats.Conn) (*NATSPublisher, error) {
	if conn == nil {
		return nil, errors.New("events: NATS connection cannot be nil")
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("events: publish %s: %w", subject, err)
	}
	return nil
}
