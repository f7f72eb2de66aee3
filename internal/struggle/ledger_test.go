package struggle

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/okanta/memloop/internal/diagnosis"
)

func TestApplyDiagnosis_UnknownTopic(t *testing.T) {
	l := NewLedger(nil)
	_, err := l.ApplyDiagnosis(context.Background(), "algebra", "", diagnosis.ModeEncoding, 0.2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyDiagnosis_FailureRaisesWeight(t *testing.T) {
	l := NewLedger(nil)
	l.Register("algebra", "", 0.3)

	// ENCODING multiplier 0.25, accuracy 0.2: delta = 0.25*0.8 = 0.20.
	w, err := l.ApplyDiagnosis(context.Background(), "algebra", "", diagnosis.ModeEncoding, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w.Dynamic-0.20) > 1e-12 {
		t.Errorf("dynamic = %v, want 0.20", w.Dynamic)
	}
}

func TestApplyDiagnosis_SuccessNeverIncreases(t *testing.T) {
	l := NewLedger(nil)
	l.Register("algebra", "", 0)

	ctx := context.Background()
	l.ApplyDiagnosis(ctx, "algebra", "", diagnosis.ModeRetrieval, 0.0)
	w, _ := l.Get("algebra", "")
	before := w.Dynamic

	// A long run of mixed successes: the weight must be non-increasing.
	for _, acc := range []float64{0.5, 0.8, 1.0, 0.6, 0.9} {
		w, err := l.ApplyDiagnosis(ctx, "algebra", "", diagnosis.ModeRetrieval, acc)
		if err != nil {
			t.Fatal(err)
		}
		if w.Dynamic > before {
			t.Fatalf("success at accuracy %v increased weight %v -> %v", acc, before, w.Dynamic)
		}
		before = w.Dynamic
	}
}

func TestApplyDiagnosis_WeightStaysInRange(t *testing.T) {
	l := NewLedger(nil)
	l.Register("algebra", "sec1", 0.5)
	ctx := context.Background()

	// Hammer with worst-case failures; the cap must hold.
	for range 20 {
		w, err := l.ApplyDiagnosis(ctx, "algebra", "sec1", diagnosis.ModeEncoding, 0.0)
		if err != nil {
			t.Fatal(err)
		}
		if w.Dynamic < 0 || w.Dynamic > 1 {
			t.Fatalf("dynamic %v left [0,1]", w.Dynamic)
		}
	}
	w, _ := l.Get("algebra", "sec1")
	if w.Dynamic != 1.0 {
		t.Errorf("saturated weight = %v, want 1.0", w.Dynamic)
	}
}

func TestApplyDiagnosis_MultiplierTable(t *testing.T) {
	tests := []struct {
		mode diagnosis.FailureMode
		want float64
	}{
		{diagnosis.ModeEncoding, 0.25},
		{diagnosis.ModeIntegration, 0.20},
		{diagnosis.ModeRetrieval, 0.15},
		{diagnosis.ModeDiscrimination, 0.15},
		{diagnosis.ModeExecutive, 0.05},
		{diagnosis.ModeFatigue, 0.02},
	}
	for _, tt := range tests {
		if got := Multiplier(tt.mode); got != tt.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestDecay_FadesOnlyStaleWeights(t *testing.T) {
	l := NewLedger(nil)
	now := time.Now()

	stale := l.Register("stale", "", 0)
	stale.Dynamic = 0.40
	stale.LastDiagnosisAt = now.AddDate(0, 0, -20)

	fresh := l.Register("fresh", "", 0)
	fresh.Dynamic = 0.40
	fresh.LastDiagnosisAt = now.AddDate(0, 0, -3)

	changed := l.Decay(context.Background(), 0.10, 14, now)

	if len(changed) != 1 || changed[0].Module != "stale" {
		t.Fatalf("changed = %+v, want only the stale weight", changed)
	}
	// 0.40 untouched for 20 days at rate 0.10 -> 0.36.
	if math.Abs(stale.Dynamic-0.36) > 1e-12 {
		t.Errorf("stale dynamic = %v, want 0.36", stale.Dynamic)
	}
	if fresh.Dynamic != 0.40 {
		t.Errorf("fresh dynamic = %v, should be untouched", fresh.Dynamic)
	}
}

func TestDecay_SkipsZeroWeights(t *testing.T) {
	l := NewLedger(nil)
	w := l.Register("quiet", "", 0.2)
	w.LastDiagnosisAt = time.Now().AddDate(0, 0, -30)

	changed := l.Decay(context.Background(), 0.10, 14, time.Now())
	if len(changed) != 0 {
		t.Errorf("zero dynamic weight should not produce a decay mutation, got %+v", changed)
	}
}

func TestRegister_ClampsStatic(t *testing.T) {
	l := NewLedger(nil)
	if w := l.Register("a", "", 1.7); w.Static != 1.0 {
		t.Errorf("static = %v, want clamp to 1.0", w.Static)
	}
	if w := l.Register("b", "", -0.2); w.Static != 0.0 {
		t.Errorf("static = %v, want clamp to 0.0", w.Static)
	}
}

func TestAll_DeterministicOrder(t *testing.T) {
	l := NewLedger(nil)
	l.Register("b", "", 0)
	l.Register("a", "x", 0)
	l.Register("a", "", 0)

	got := l.All()
	keys := make([]string, len(got))
	for i, w := range got {
		keys[i] = w.Key()
	}
	want := []string{"a", "a/x", "b"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("order = %v, want %v", keys, want)
		}
	}
}
