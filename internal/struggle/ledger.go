package struggle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/store"
)

// ErrNotFound is returned for topics never registered with the ledger.
var ErrNotFound = errors.New("unknown topic")

// SuccessDecay is applied to the dynamic weight when accuracy >= 0.5.
const SuccessDecay = 0.95

// Multiplier returns the per-failure-mode update multiplier. Encoding and
// integration failures are the strongest evidence of real trouble;
// executive slips and fatigue barely move the weight.
func Multiplier(mode diagnosis.FailureMode) float64 {
	switch mode {
	case diagnosis.ModeEncoding:
		return 0.25
	case diagnosis.ModeIntegration:
		return 0.20
	case diagnosis.ModeRetrieval:
		return 0.15
	case diagnosis.ModeDiscrimination:
		return 0.15
	case diagnosis.ModeExecutive:
		return 0.05
	case diagnosis.ModeFatigue:
		return 0.02
	default:
		return 0.15
	}
}

// Weight is the struggle state for one topic (a module, or module×section).
type Weight struct {
	Module  string
	Section string // empty for module-level weights

	// Static is the externally declared difficulty weight.
	Static float64
	// Dynamic is the diagnosis-derived weight. Both clamp to [0,1].
	Dynamic float64

	LastDiagnosisAt time.Time
}

// Key returns the ledger key for this weight.
func (w *Weight) Key() string { return topicKey(w.Module, w.Section) }

func topicKey(module, section string) string {
	if section == "" {
		return module
	}
	return module + "/" + section
}

// Ledger maintains per-topic struggle weights. Weights only move through
// ApplyDiagnosis and Decay; every mutation appends one immutable history
// row through the event repo, which is the audit trail.
type Ledger struct {
	weights   map[string]*Weight
	eventRepo store.EventRepo
}

// NewLedger creates an empty ledger. eventRepo may be nil in tests.
func NewLedger(eventRepo store.EventRepo) *Ledger {
	return &Ledger{
		weights:   make(map[string]*Weight),
		eventRepo: eventRepo,
	}
}

// Register declares a topic with its static weight (clamped to [0,1]).
// Topics must be registered before diagnoses can be applied to them.
func (l *Ledger) Register(module, section string, static float64) *Weight {
	w := &Weight{
		Module:  module,
		Section: section,
		Static:  clamp01(static),
	}
	l.weights[w.Key()] = w
	return w
}

// Get returns the weight for a topic.
func (l *Ledger) Get(module, section string) (*Weight, error) {
	w, ok := l.weights[topicKey(module, section)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, topicKey(module, section))
	}
	return w, nil
}

// All returns every weight, sorted by key for deterministic iteration.
func (l *Ledger) All() []*Weight {
	out := make([]*Weight, 0, len(l.weights))
	for _, w := range l.weights {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// ApplyDiagnosis folds one diagnosis outcome into a topic's dynamic
// weight. Low accuracy (< 0.5) raises the weight by multiplier·(1-accuracy),
// capped at 1; success decays it multiplicatively toward zero. The
// resulting state is appended to the history trail.
func (l *Ledger) ApplyDiagnosis(ctx context.Context, module, section string, mode diagnosis.FailureMode, accuracy float64) (*Weight, error) {
	w, err := l.Get(module, section)
	if err != nil {
		return nil, err
	}

	accuracy = clamp01(accuracy)
	if accuracy < 0.5 {
		w.Dynamic = clamp01(w.Dynamic + Multiplier(mode)*(1-accuracy))
	} else {
		w.Dynamic = clamp01(w.Dynamic * SuccessDecay)
	}
	w.LastDiagnosisAt = time.Now()

	l.appendHistory(ctx, w, "diagnosis", string(mode))
	return w, nil
}

// Decay fades topics untouched for at least minAgeDays by the given rate.
// It is designed to run out-of-band from active sessions; returns the
// weights it changed. Each change appends a history row.
func (l *Ledger) Decay(ctx context.Context, rate float64, minAgeDays int, now time.Time) []*Weight {
	cutoff := now.AddDate(0, 0, -minAgeDays)

	var changed []*Weight
	for _, w := range l.All() {
		if w.Dynamic == 0 {
			continue
		}
		if !w.LastDiagnosisAt.Before(cutoff) {
			continue
		}
		w.Dynamic = clamp01(w.Dynamic * (1 - rate))
		w.LastDiagnosisAt = now
		l.appendHistory(ctx, w, "decay", "")
		changed = append(changed, w)
	}
	return changed
}

// Restore loads persisted weights, replacing in-memory state per topic.
func (l *Ledger) Restore(weights []*Weight) {
	for _, w := range weights {
		if w == nil {
			continue
		}
		w.Static = clamp01(w.Static)
		w.Dynamic = clamp01(w.Dynamic)
		l.weights[w.Key()] = w
	}
}

func (l *Ledger) appendHistory(ctx context.Context, w *Weight, trigger, mode string) {
	if l.eventRepo == nil {
		return
	}
	_ = l.eventRepo.AppendStruggleEvent(ctx, store.StruggleEventData{
		Module:      w.Module,
		Section:     w.Section,
		Trigger:     trigger,
		FailureMode: mode,
		Static:      w.Static,
		Dynamic:     w.Dynamic,
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
