package diagnosis

import "testing"

func TestConfusionTracker_StartsNeutral(t *testing.T) {
	tr := NewConfusionTracker()
	tr.RegisterCluster("affect-effect", []string{"affect", "effect"})

	psi, ok := tr.Index("affect")
	if !ok {
		t.Fatal("registered concept should have an index")
	}
	if psi != PSIInitial {
		t.Errorf("initial PSI = %v, want %v", psi, PSIInitial)
	}
}

func TestConfusionTracker_ConfusionDrivesIndexDown(t *testing.T) {
	tr := NewConfusionTracker()
	tr.RegisterCluster("c", []string{"a", "b"})

	for range 10 {
		tr.Record("a", false)
	}
	psi, _ := tr.Index("a")
	if psi >= PatternSeparationFloor {
		t.Errorf("repeated confusion should push PSI below the floor, got %v", psi)
	}

	for range 20 {
		tr.Record("a", true)
	}
	psi, _ = tr.Index("a")
	if psi <= PatternSeparationFloor {
		t.Errorf("repeated separation should recover PSI above the floor, got %v", psi)
	}
}

func TestConfusionTracker_ClusterIsShared(t *testing.T) {
	tr := NewConfusionTracker()
	tr.RegisterCluster("c", []string{"a", "b"})

	tr.Record("a", false)
	psiA, _ := tr.Index("a")
	psiB, _ := tr.Index("b")
	if psiA != psiB {
		t.Errorf("cluster members should share an index: %v vs %v", psiA, psiB)
	}
}

func TestConfusionTracker_SingletonAndUnknownIgnored(t *testing.T) {
	tr := NewConfusionTracker()
	tr.RegisterCluster("solo", []string{"alone"})

	if _, ok := tr.Index("alone"); ok {
		t.Error("singleton cluster should not be tracked")
	}
	if _, ok := tr.Index("ghost"); ok {
		t.Error("unknown concept should not be tracked")
	}
	tr.Record("ghost", false) // must not panic
}

func TestConfusionTracker_ExportRestoreRoundTrip(t *testing.T) {
	tr := NewConfusionTracker()
	tr.RegisterCluster("c", []string{"a", "b"})
	tr.Record("a", false)

	exported := tr.Export()

	tr2 := NewConfusionTracker()
	tr2.RegisterCluster("c", []string{"a", "b"})
	tr2.Restore(exported)

	p1, _ := tr.Index("a")
	p2, _ := tr2.Index("a")
	if p1 != p2 {
		t.Errorf("restored PSI %v != original %v", p2, p1)
	}
}
