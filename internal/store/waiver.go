package store

import (
	"context"
	"fmt"

	"github.com/okanta/memloop/ent"
	"github.com/okanta/memloop/ent/waiver"
)

// waiverRepo implements WaiverRepo using the ent client.
type waiverRepo struct {
	client *ent.Client
}

func (r *waiverRepo) Save(ctx context.Context, w WaiverRecord) error {
	// Replace any existing waiver for the edge so re-granting updates
	// the type and note instead of failing the unique index.
	_, err := r.client.Waiver.Delete().
		Where(
			waiver.SourceID(w.SourceID),
			waiver.TargetID(w.TargetID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear existing waiver: %w", err)
	}

	_, err = r.client.Waiver.Create().
		SetSourceID(w.SourceID).
		SetTargetID(w.TargetID).
		SetWaiverType(w.Type).
		SetNote(w.Note).
		SetGrantedAt(w.GrantedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save waiver: %w", err)
	}
	return nil
}

func (r *waiverRepo) All(ctx context.Context) ([]WaiverRecord, error) {
	rows, err := r.client.Waiver.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query waivers: %w", err)
	}

	out := make([]WaiverRecord, len(rows))
	for i, row := range rows {
		out[i] = WaiverRecord{
			SourceID:  row.SourceID,
			TargetID:  row.TargetID,
			Type:      row.WaiverType,
			Note:      row.Note,
			GrantedAt: row.GrantedAt,
		}
	}
	return out, nil
}

func (r *waiverRepo) Revoke(ctx context.Context, sourceID, targetID string) error {
	_, err := r.client.Waiver.Delete().
		Where(
			waiver.SourceID(sourceID),
			waiver.TargetID(targetID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("revoke waiver: %w", err)
	}
	return nil
}
