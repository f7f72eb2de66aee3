package store

import (
	"context"
	"fmt"

	entschema "github.com/okanta/memloop/ent/schema"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var queueSummary []entschema.QueueSlotSummary
	for _, s := range data.QueueSummary {
		queueSummary = append(queueSummary, entschema.QueueSlotSummary{
			AtomID:    s.AtomID,
			ConceptID: s.ConceptID,
			Origin:    s.Origin,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetItemsServed(data.ItemsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs)

	if len(queueSummary) > 0 {
		builder = builder.SetQueueSummary(queueSummary)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
