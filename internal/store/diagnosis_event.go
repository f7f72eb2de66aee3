package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDiagnosis(ctx context.Context, data DiagnosisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.DiagnosisEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetAtomID(data.AtomID).
		SetFailureMode(data.FailureMode).
		SetConfidence(data.Confidence).
		SetRule(data.Rule)

	if len(data.Evidence) > 0 {
		builder = builder.SetEvidence(data.Evidence)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}
