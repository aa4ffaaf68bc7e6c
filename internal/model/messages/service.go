package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/expense-bot/internal/entity/message"
	"max.ks1230/expense-bot/internal/logger"
)

type transport interface {
	Reply(ctx context.Context, replyToken string, msgs []message.Outbound) error
	Push(ctx context.Context, userID string, msgs []message.Outbound) error
}

// Event is one inbound text event. ReplyToken is usable exactly once and
// only for this event's direct response.
type Event struct {
	ReplyToken string
	UserID     string
	Text       string
}

type Service struct {
	router     *Router
	dispatcher *Dispatcher
}

func NewService(transport transport, router *Router) *Service {
	return &Service{
		router:     router,
		dispatcher: NewDispatcher(transport),
	}
}

// HandleBatch processes every event of one webhook call concurrently and
// waits for all of them before returning. A failed event does not abort
// its siblings; the first error is reported to the caller.
func (s *Service) HandleBatch(ctx context.Context, events []Event) error {
	var g errgroup.Group
	for _, ev := range events {
		ev := ev
		g.Go(func() error {
			return s.HandleEvent(ctx, ev)
		})
	}
	return g.Wait()
}

func (s *Service) HandleEvent(ctx context.Context, ev Event) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleEvent")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, ev)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("error processing event", zap.Error(err), zap.String("user", ev.UserID))
	}
	return err
}

func (s *Service) handle(ctx context.Context, ev Event) error {
	msgs, err := s.router.Route(ctx, ev.UserID, ev.Text)
	if derr := s.dispatcher.Deliver(ctx, ev.ReplyToken, ev.UserID, msgs); derr != nil {
		return derr
	}
	return err
}
