package store

import (
	"context"
	"fmt"
	"time"

	"github.com/okanta/memloop/ent"
	"github.com/okanta/memloop/ent/interactionevent"
)

func (r *eventRepo) AppendInteraction(ctx context.Context, data InteractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAtomID(data.AtomID).
		SetConceptID(data.ConceptID).
		SetAtomType(data.AtomType).
		SetCorrect(data.Correct).
		SetPartialScore(data.PartialScore).
		SetResponseTimeMs(data.TimeMs).
		SetAttempt(data.Attempt).
		SetLearnerAnswer(data.LearnerAnswer).
		SetOrigin(data.Origin)

	if data.Confidence > 0 {
		builder = builder.SetConfidence(data.Confidence)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentErrors(ctx context.Context, conceptID string, lastN int) ([]string, error) {
	events, err := r.client.InteractionEvent.Query().
		Where(
			interactionevent.ConceptID(conceptID),
			interactionevent.Correct(false),
		).
		Order(ent.Desc(interactionevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent errors: %w", err)
	}

	out := make([]string, 0, len(events))
	for _, e := range events {
		if e.LearnerAnswer != "" {
			out = append(out, fmt.Sprintf("answered %q on %s item %s", e.LearnerAnswer, e.AtomType, e.AtomID))
		} else {
			out = append(out, fmt.Sprintf("missed %s item %s", e.AtomType, e.AtomID))
		}
	}
	return out, nil
}

func (r *eventRepo) ConceptAccuracy(ctx context.Context, conceptID string) (float64, error) {
	total, err := r.client.InteractionEvent.Query().
		Where(interactionevent.ConceptID(conceptID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.InteractionEvent.Query().
		Where(
			interactionevent.ConceptID(conceptID),
			interactionevent.Correct(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct interactions: %w", err)
	}

	return float64(correct) / float64(total), nil
}

func (r *eventRepo) LatestInteractionTime(ctx context.Context, conceptID string) (time.Time, error) {
	e, err := r.client.InteractionEvent.Query().
		Where(interactionevent.ConceptID(conceptID)).
		Order(ent.Desc(interactionevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest interaction time: %w", err)
	}
	return e.Timestamp, nil
}
