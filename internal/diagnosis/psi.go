package diagnosis

// PSIAlpha is the smoothing factor for the running Pattern-Separation-Index.
const PSIAlpha = 0.2

// PSIInitial is the neutral starting index for a new cluster.
const PSIInitial = 0.5

// ConfusionTracker maintains a running Pattern-Separation-Index per
// confusion cluster: a group of concepts a learner is prone to mix up.
// The index moves toward 1 on clean discriminations and toward 0 on
// confusion events, via exponential smoothing.
type ConfusionTracker struct {
	clusterOf map[string]string
	psi       map[string]float64
}

// NewConfusionTracker creates an empty tracker.
func NewConfusionTracker() *ConfusionTracker {
	return &ConfusionTracker{
		clusterOf: make(map[string]string),
		psi:       make(map[string]float64),
	}
}

// RegisterCluster declares a confusion cluster of mutually confusable
// concepts. Singleton clusters are ignored; there is nothing to confuse.
func (t *ConfusionTracker) RegisterCluster(clusterID string, conceptIDs []string) {
	if len(conceptIDs) < 2 {
		return
	}
	for _, id := range conceptIDs {
		t.clusterOf[id] = clusterID
	}
	if _, ok := t.psi[clusterID]; !ok {
		t.psi[clusterID] = PSIInitial
	}
}

// Record folds one discrimination outcome for a concept into its cluster
// index. separated=true means the learner told the concepts apart.
// Concepts outside any cluster are ignored.
func (t *ConfusionTracker) Record(conceptID string, separated bool) {
	cluster, ok := t.clusterOf[conceptID]
	if !ok {
		return
	}
	target := 0.0
	if separated {
		target = 1.0
	}
	t.psi[cluster] += PSIAlpha * (target - t.psi[cluster])
}

// Index returns the PSI for the concept's cluster. ok is false when the
// concept belongs to no cluster.
func (t *ConfusionTracker) Index(conceptID string) (float64, bool) {
	cluster, ok := t.clusterOf[conceptID]
	if !ok {
		return 0, false
	}
	return t.psi[cluster], true
}

// Restore loads persisted cluster indices.
func (t *ConfusionTracker) Restore(indices map[string]float64) {
	for cluster, v := range indices {
		t.psi[cluster] = v
	}
}

// Export returns a copy of the cluster indices for snapshots.
func (t *ConfusionTracker) Export() map[string]float64 {
	out := make(map[string]float64, len(t.psi))
	for k, v := range t.psi {
		out[k] = v
	}
	return out
}
