package messages

import (
	"context"

	"github.com/pkg/errors"

	"max.ks1230/expense-bot/internal/entity/message"
)

// Dispatcher delivers the messages produced for one inbound event: the
// first over the event's reply channel, the rest over push. Delivery is
// at-least-attempted-once; a failed push does not undo earlier messages.
type Dispatcher struct {
	transport transport
}

func NewDispatcher(transport transport) *Dispatcher {
	return &Dispatcher{transport: transport}
}

func (d *Dispatcher) Deliver(ctx context.Context, replyToken, userID string, msgs []message.Outbound) error {
	if len(msgs) == 0 {
		return nil
	}

	if err := d.transport.Reply(ctx, replyToken, msgs[:1]); err != nil {
		return errors.Wrap(err, "deliver reply")
	}
	if len(msgs) == 1 {
		return nil
	}
	return errors.Wrap(d.transport.Push(ctx, userID, msgs[1:]), "deliver push")
}
