package store

import (
	"context"
	"fmt"

	"github.com/okanta/memloop/ent"
	"github.com/okanta/memloop/ent/struggleevent"
)

func (r *eventRepo) AppendStruggleEvent(ctx context.Context, data StruggleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StruggleEvent.Create().
		SetSequence(seqNum).
		SetModule(data.Module).
		SetSection(data.Section).
		SetTrigger(data.Trigger).
		SetFailureMode(data.FailureMode).
		SetStaticWeight(data.Static).
		SetDynamicWeight(data.Dynamic).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save struggle event: %w", err)
	}
	return nil
}

func (r *eventRepo) StruggleHistory(ctx context.Context, module string, opts QueryOpts) ([]StruggleEventData, error) {
	q := r.client.StruggleEvent.Query().
		Where(struggleevent.Module(module)).
		Order(ent.Asc(struggleevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(struggleevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(struggleevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(struggleevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(struggleevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query struggle history: %w", err)
	}

	out := make([]StruggleEventData, len(events))
	for i, e := range events {
		out[i] = StruggleEventData{
			Module:      e.Module,
			Section:     e.Section,
			Trigger:     e.Trigger,
			FailureMode: e.FailureMode,
			Static:      e.StaticWeight,
			Dynamic:     e.DynamicWeight,
		}
	}
	return out, nil
}
