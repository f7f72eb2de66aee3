package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// MasteryRecord is the serializable form of per-concept mastery state.
// The domain package owns the live type; this mirror exists so snapshots
// don't create an import cycle.
type MasteryRecord struct {
	ConceptID        string     `json:"concept_id"`
	ReviewMastery    float64    `json:"review_mastery"`
	QuizMastery      float64    `json:"quiz_mastery"`
	CombinedMastery  float64    `json:"combined_mastery"`
	StabilityDays    float64    `json:"stability_days"`
	ReviewCount      int        `json:"review_count"`
	QuizScores       []float64  `json:"quiz_scores,omitempty"`
	CorrectExposures int        `json:"correct_exposures"`
	LastReviewAt     *time.Time `json:"last_review_at,omitempty"`
	LastQuizAt       *time.Time `json:"last_quiz_at,omitempty"`
	FirstSeenAt      *time.Time `json:"first_seen_at,omitempty"`
}

// StruggleRecord is the serializable form of a struggle weight.
type StruggleRecord struct {
	Module          string     `json:"module"`
	Section         string     `json:"section,omitempty"`
	Static          float64    `json:"static"`
	Dynamic         float64    `json:"dynamic"`
	LastDiagnosisAt *time.Time `json:"last_diagnosis_at,omitempty"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version   int                  `json:"version"`
	Mastery   []MasteryRecord      `json:"mastery,omitempty"`
	Struggle  []StruggleRecord     `json:"struggle,omitempty"`
	Baselines map[string][]float64 `json:"baselines,omitempty"`
	Confusion map[string]float64   `json:"confusion,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// WaiverRecord describes a persisted prerequisite gate override.
type WaiverRecord struct {
	SourceID  string
	TargetID  string
	Type      string
	Note      string
	GrantedAt time.Time
}

// WaiverRepo manages prerequisite gate waivers.
type WaiverRepo interface {
	// Save stores a waiver, replacing any existing one for the same edge.
	Save(ctx context.Context, w WaiverRecord) error

	// All returns every stored waiver.
	All(ctx context.Context) ([]WaiverRecord, error)

	// Revoke deletes the waiver for the given edge, if any.
	Revoke(ctx context.Context, sourceID, targetID string) error
}

// InteractionEventData captures a single graded response.
type InteractionEventData struct {
	SessionID     string
	AtomID        string
	ConceptID     string
	AtomType      string
	Correct       bool
	PartialScore  float64
	TimeMs        int64
	Confidence    int
	Attempt       int
	LearnerAnswer string
	Origin        string
}

// DiagnosisEventData captures a failure-mode classification.
type DiagnosisEventData struct {
	SessionID   string
	ConceptID   string
	AtomID      string
	FailureMode string
	Confidence  float64
	Rule        string
	Evidence    map[string]float64
}

// MasteryEventData captures a mastery recomputation.
type MasteryEventData struct {
	ConceptID       string
	ReviewMastery   float64
	QuizMastery     float64
	CombinedMastery float64
	Trigger         string
	SessionID       string
}

// StruggleEventData captures one struggle weight mutation for the
// audit trail.
type StruggleEventData struct {
	Module      string
	Section     string
	Trigger     string
	FailureMode string
	Static      float64
	Dynamic     float64
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID      string
	Action         string
	ItemsServed    int
	CorrectAnswers int
	DurationSecs   int
	QueueSummary   []QueueSlotSummary
}

// QueueSlotSummary is one queue entry in a session-start event.
type QueueSlotSummary struct {
	AtomID    string
	ConceptID string
	Origin    string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event with its row identity, for
// the inspection commands.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage is the aggregated call volume for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendInteraction records a graded response.
	AppendInteraction(ctx context.Context, data InteractionEventData) error

	// AppendDiagnosis records a failure-mode classification.
	AppendDiagnosis(ctx context.Context, data DiagnosisEventData) error

	// AppendMasteryEvent records a mastery recomputation.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// AppendStruggleEvent records a struggle weight mutation.
	AppendStruggleEvent(ctx context.Context, data StruggleEventData) error

	// AppendSessionEvent records a session lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentErrors returns the learner's most recent wrong answers for a
	// concept, newest first, for remediation note context.
	RecentErrors(ctx context.Context, conceptID string, lastN int) ([]string, error)

	// ConceptAccuracy returns the all-time fraction of correct responses
	// for a concept. Returns 0 when no interactions exist.
	ConceptAccuracy(ctx context.Context, conceptID string) (float64, error)

	// LatestInteractionTime returns the timestamp of the most recent
	// interaction for a concept, or the zero time if none exist.
	LatestInteractionTime(ctx context.Context, conceptID string) (time.Time, error)

	// StruggleHistory returns the audit trail for a module, oldest first.
	StruggleHistory(ctx context.Context, module string, opts QueryOpts) ([]StruggleEventData, error)

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent fetches one LLM request event by row ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
