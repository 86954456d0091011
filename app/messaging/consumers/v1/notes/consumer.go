package notes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/sys"
	"gocloud.dev/pubsub"
)

// Consume receives note events until ctx is cancelled, handling at most maxWorkers of them at once.
// Messages are always acked, failures are only logged.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)
	// in flight events finish even after shutdown starts
	handleCtx := context.WithoutCancel(ctx)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			if err := Handle(handleCtx, m.Body); err != nil {
				logger.Errorw("failed to handle message", "body", string(m.Body), "ERROR", err)
			}
		}(message)
	}

	// wait for in flight messages
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Handle applies a single note event
func Handle(ctx context.Context, body []byte) error {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case note.EventCreate:
		var c note.NewNote
		if err := remarshal(e.Data, &c); err != nil {
			return err
		}
		created, err := note.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		sys.R.Log.Infow("note created", "id", created.Id)
	case note.EventUpdate:
		var u note.UpdateNote
		if err := remarshal(e.Data, &u); err != nil {
			return err
		}
		if _, err := note.Update(ctx, e.Id, u); err != nil {
			return fmt.Errorf("failed to update note %d: %w", e.Id, err)
		}
		sys.R.Log.Infow("note updated", "id", e.Id)
	case note.EventDelete:
		if err := note.Delete(ctx, e.Id); err != nil {
			return fmt.Errorf("failed to delete note %d: %w", e.Id, err)
		}
		sys.R.Log.Infow("note deleted", "id", e.Id)
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}

func remarshal(data any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read event data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse event data: %w", err)
	}
	return nil
}
