package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/conceptgraph"
	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/mastery"
	"github.com/okanta/memloop/internal/priority"
	"github.com/okanta/memloop/internal/remediation"
	"github.com/okanta/memloop/internal/store"
	"github.com/okanta/memloop/internal/struggle"
	"github.com/okanta/memloop/internal/telemetry"
)

// ErrSessionComplete is returned when the queue is exhausted.
var ErrSessionComplete = errors.New("session complete")

// ErrNothingDue is returned when no unlocked concept has due or new items.
var ErrNothingDue = errors.New("nothing due")

// Config holds the tunable scheduling knobs.
type Config struct {
	LearnerID string

	// MaxItems caps the origin queue length; splices can exceed it.
	MaxItems int
	// MaxPerConcept caps how many items one concept contributes.
	MaxPerConcept int
	// BacktrackDepth bounds prerequisite remediation chains.
	BacktrackDepth int
	// DueThreshold is the retrievability below which a reviewed concept
	// becomes due again.
	DueThreshold float64
	// StruggleFocus is the dynamic weight at which a topic switches the
	// scorer into struggle mode.
	StruggleFocus float64
	// RecentErrorCount is how many recent mistakes feed remediation notes.
	RecentErrorCount int

	// TypeQuotas caps how many items of a family the origin queue takes.
	// Enforced only among priority ties; an empty map disables quotas.
	TypeQuotas map[atom.Type]int
	// FocusModules flag modules the learner is actively working toward.
	FocusModules map[string]bool
}

// DefaultConfig returns the standard session shape.
func DefaultConfig() Config {
	return Config{
		LearnerID:        "default",
		MaxItems:         20,
		MaxPerConcept:    2,
		BacktrackDepth:   conceptgraph.DefaultBacktrackDepth,
		DueThreshold:     0.9,
		StruggleFocus:    0.3,
		RecentErrorCount: 3,
	}
}

// Deps are the collaborating engines the scheduler orchestrates. Graph,
// Tracker, Ledger and Registry are required; the rest degrade gracefully
// when nil (no telemetry baseline, no diagnosis, no notes, no events).
type Deps struct {
	Graph       *conceptgraph.Graph
	Tracker     *mastery.Tracker
	Ledger      *struggle.Ledger
	Registry    *atom.Registry
	Normalizer  *telemetry.Normalizer
	Confusion   *diagnosis.ConfusionTracker
	Classifiers []diagnosis.Classifier
	Notes       *remediation.NoteService
	Events      store.EventRepo
}

// Outcome reports everything one graded response changed.
type Outcome struct {
	Result    atom.Result
	Diagnosis *diagnosis.Diagnosis
	Mastery   *mastery.ConceptMastery
	Struggle  *struggle.Weight
	// Phase is the concept's scaffolding phase after this response.
	Phase Phase
	// Backtracked lists prerequisite concepts spliced in for remediation.
	Backtracked []string
	// InsertedItems is how many items were spliced before the failed item.
	InsertedItems int
	SuggestBreak  bool
	// Warnings are soft prerequisite gaps for the answered concept.
	Warnings []conceptgraph.Edge
}

// Summary is the closing report for a session.
type Summary struct {
	SessionID      string
	ItemsServed    int
	CorrectAnswers int
	Duration       time.Duration
}

// Scheduler runs one study session: it builds the priority queue, serves
// items, grades responses, and drives the diagnose/remediate/re-rank
// cycle. Sessions are single-threaded; only note generation runs in the
// background, and it never blocks the turn loop.
type Scheduler struct {
	cfg  Config
	deps Deps

	atoms       map[string][]*atom.Atom
	confusables map[string][]string

	scaffold  *ScaffoldTracker
	queue     *Queue
	sessionID string
	startedAt time.Time

	served     int
	correct    int
	sinceBreak int // -1 until the first break
	fatigue    diagnosis.FatigueVector

	current  *Item
	curHints int

	now func() time.Time
}

// NewScheduler wires a scheduler over its collaborators.
func NewScheduler(cfg Config, deps Deps) *Scheduler {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if cfg.MaxPerConcept <= 0 {
		cfg.MaxPerConcept = DefaultConfig().MaxPerConcept
	}
	if cfg.BacktrackDepth <= 0 {
		cfg.BacktrackDepth = conceptgraph.DefaultBacktrackDepth
	}
	if cfg.DueThreshold <= 0 {
		cfg.DueThreshold = DefaultConfig().DueThreshold
	}
	if cfg.StruggleFocus <= 0 {
		cfg.StruggleFocus = DefaultConfig().StruggleFocus
	}
	if cfg.RecentErrorCount <= 0 {
		cfg.RecentErrorCount = DefaultConfig().RecentErrorCount
	}
	return &Scheduler{
		cfg:         cfg,
		deps:        deps,
		atoms:       make(map[string][]*atom.Atom),
		confusables: make(map[string][]string),
		scaffold:    NewScaffoldTracker(),
		sinceBreak:  -1,
		now:         time.Now,
	}
}

// AddAtoms registers study items with the scheduler's item pool.
func (s *Scheduler) AddAtoms(atoms ...*atom.Atom) {
	for _, a := range atoms {
		s.atoms[a.ConceptID] = append(s.atoms[a.ConceptID], a)
	}
}

// RegisterConfusionCluster declares mutually confusable concepts to both
// the confusion tracker and the note pipeline.
func (s *Scheduler) RegisterConfusionCluster(clusterID string, conceptIDs []string) {
	if s.deps.Confusion != nil {
		s.deps.Confusion.RegisterCluster(clusterID, conceptIDs)
	}
	if len(conceptIDs) < 2 {
		return
	}
	for _, id := range conceptIDs {
		others := make([]string, 0, len(conceptIDs)-1)
		for _, o := range conceptIDs {
			if o != id {
				others = append(others, o)
			}
		}
		s.confusables[id] = others
	}
}

// SetFatigue updates the self-reported fatigue vector for this session.
func (s *Scheduler) SetFatigue(v diagnosis.FatigueVector) { s.fatigue = v }

// TakeBreak records that the learner just rested.
func (s *Scheduler) TakeBreak() { s.sinceBreak = 0 }

// SessionID returns the active session identifier, empty before Start.
func (s *Scheduler) SessionID() string { return s.sessionID }

// Start builds the queue and opens the session. Returns ErrNothingDue
// when no unlocked concept has an item worth serving.
func (s *Scheduler) Start(ctx context.Context) error {
	now := s.now()
	items := s.buildQueue(now)
	if len(items) == 0 {
		return ErrNothingDue
	}

	s.sessionID = uuid.NewString()
	s.startedAt = now
	s.queue = NewQueue(items)
	s.served = 0
	s.correct = 0
	s.deps.Tracker.SetSessionID(s.sessionID)

	s.appendSessionEvent(ctx, "start")
	return nil
}

// NextItem returns the item to serve now. The same item is returned until
// RecordResponse resolves it.
func (s *Scheduler) NextItem() (*Item, error) {
	if s.queue == nil {
		return nil, fmt.Errorf("session not started")
	}
	it := s.queue.Current()
	if it == nil {
		return nil, ErrSessionComplete
	}
	if it != s.current {
		s.current = it
		s.curHints = 0
	}
	return it, nil
}

// Hint returns the next hint for the current item, respecting the
// concept's scaffolding phase. ok is false when the phase budget or the
// item's hints are exhausted.
func (s *Scheduler) Hint() (string, bool) {
	it := s.queue.Current()
	if it == nil {
		return "", false
	}
	budget := s.scaffold.Phase(it.ConceptID).HintBudget()
	if budget >= 0 && s.curHints >= budget {
		return "", false
	}
	h, err := s.deps.Registry.Handler(it.Atom.Type)
	if err != nil {
		return "", false
	}
	hint := h.Hint(it.Atom, s.curHints)
	if hint == "" {
		return "", false
	}
	s.curHints++
	return hint, true
}

// RecordResponse grades the current item and runs the full update cycle:
// telemetry normalization, mastery update, and on failure the diagnosis,
// struggle update, backtrack splice and remediation note request.
func (s *Scheduler) RecordResponse(ctx context.Context, resp atom.Response) (*Outcome, error) {
	if s.queue == nil {
		return nil, fmt.Errorf("session not started")
	}
	it := s.queue.Current()
	if it == nil {
		return nil, ErrSessionComplete
	}
	result, err := s.deps.Registry.Check(it.Atom, resp)
	if err != nil {
		return nil, fmt.Errorf("grading %s: %w", it.Atom.ID, err)
	}

	now := s.now()
	sig := s.normalize(it, resp, result, now)
	scaffolded := s.curHints > 0

	s.served++
	if result.Correct {
		s.correct++
	}
	if s.sinceBreak >= 0 {
		s.sinceBreak++
	}
	if s.deps.Confusion != nil {
		s.deps.Confusion.Record(it.ConceptID, result.Correct)
	}

	// Exposure before this answer, for the encoding classifier.
	priorExposure := s.deps.Tracker.PriorCorrectExposure(it.ConceptID)

	cm, err := s.updateMastery(ctx, it, result, now)
	if err != nil {
		return nil, err
	}
	s.appendInteraction(ctx, it, resp, result)

	out := &Outcome{Result: result, Mastery: cm}
	if gate, gerr := s.deps.Graph.IsUnlocked(it.ConceptID, s.deps.Tracker); gerr == nil {
		out.Warnings = gate.Warnings
	}

	if result.Correct {
		out.Phase = s.scaffold.RecordResult(it.ConceptID, true, scaffolded)
		s.queue.Advance()
		return out, nil
	}

	s.resolveFailure(ctx, it, sig, result, priorExposure, now, out)
	out.Phase = s.scaffold.RecordResult(it.ConceptID, false, scaffolded)

	// A splice leaves the failed item in place so it is re-served after
	// the inserted remediation; otherwise move on.
	if out.InsertedItems == 0 {
		s.queue.Advance()
	}
	return out, nil
}

// Pause records a checkpoint event with the unserved queue attached.
func (s *Scheduler) Pause(ctx context.Context) {
	s.appendSessionEvent(ctx, "pause")
}

// End closes the session and returns its summary.
func (s *Scheduler) End(ctx context.Context) *Summary {
	s.appendSessionEvent(ctx, "end")
	return &Summary{
		SessionID:      s.sessionID,
		ItemsServed:    s.served,
		CorrectAnswers: s.correct,
		Duration:       s.now().Sub(s.startedAt),
	}
}

// Remaining returns how many items are still queued.
func (s *Scheduler) Remaining() int {
	if s.queue == nil {
		return 0
	}
	return s.queue.Remaining()
}

// IsUnlocked evaluates a concept's hard gates against current mastery.
func (s *Scheduler) IsUnlocked(conceptID string) (conceptgraph.GateResult, error) {
	return s.deps.Graph.IsUnlocked(conceptID, s.deps.Tracker)
}

func (s *Scheduler) normalize(it *Item, resp atom.Response, result atom.Result, now time.Time) telemetry.Signals {
	ev := telemetry.Event{
		LearnerID:      s.cfg.LearnerID,
		AtomID:         it.Atom.ID,
		ConceptID:      it.ConceptID,
		SessionID:      s.sessionID,
		Correct:        result.Correct,
		ResponseTimeMs: resp.TimeMs,
		Confidence:     resp.Confidence,
		AttemptNumber:  1,
	}
	if s.deps.Normalizer == nil {
		return telemetry.Signals{Correct: result.Correct, Confidence: resp.Confidence}
	}
	return s.deps.Normalizer.Normalize(ev)
}

// updateMastery routes the graded score to the right mastery channel:
// testing-phase items count as quiz attempts, everything earlier as
// review exposures.
func (s *Scheduler) updateMastery(ctx context.Context, it *Item, result atom.Result, now time.Time) (*mastery.ConceptMastery, error) {
	if s.scaffold.Phase(it.ConceptID) == PhaseTesting {
		return s.deps.Tracker.Update(ctx, it.ConceptID, nil, &mastery.QuizSignal{Score: result.PartialScore, At: now})
	}
	return s.deps.Tracker.Update(ctx, it.ConceptID, &mastery.ReviewSignal{Score: result.PartialScore, At: now}, nil)
}

func (s *Scheduler) resolveFailure(ctx context.Context, it *Item, sig telemetry.Signals, result atom.Result, priorExposure int, now time.Time, out *Outcome) {
	d := s.diagnose(it, sig, priorExposure, now)
	out.Diagnosis = d

	concept, err := s.deps.Graph.Concept(it.ConceptID)
	if err != nil {
		return
	}

	s.ensureTopic(concept.Module, concept.Section)
	if w, werr := s.deps.Ledger.ApplyDiagnosis(ctx, concept.Module, concept.Section, d.Mode, result.PartialScore); werr == nil {
		out.Struggle = w
	}
	s.appendDiagnosis(ctx, it, d)

	strategy, err := remediation.Route(d.Mode)
	if err != nil {
		return
	}
	if strategy.SuggestBreak {
		out.SuggestBreak = true
		return
	}

	// Remediation items never spawn further remediation; a failed
	// remediation exercise just lowers mastery and moves on.
	if it.Origin == OriginRemediation {
		return
	}

	inserts, backtracked := s.buildInserts(it, strategy)
	if len(inserts) > 0 {
		s.queue.SpliceBeforeCurrent(inserts)
		out.InsertedItems = len(inserts)
		out.Backtracked = backtracked
	}
	s.requestNote(ctx, it, concept, strategy)
}

func (s *Scheduler) diagnose(it *Item, sig telemetry.Signals, priorExposure int, now time.Time) *diagnosis.Diagnosis {
	in := &diagnosis.Input{
		Signals:                sig,
		SessionInteractions:    s.served,
		SessionElapsed:         now.Sub(s.startedAt),
		InteractionsSinceBreak: s.sinceBreak,
		Fatigue:                s.fatigue,
		PriorCorrectExposure:   priorExposure,
		CombinationTask:        it.Atom.Combination,
	}
	if s.deps.Confusion != nil {
		if psi, ok := s.deps.Confusion.Index(it.ConceptID); ok {
			in.PatternSeparation = psi
			in.HasPatternSeparation = true
		}
	}
	classifiers := s.deps.Classifiers
	if classifiers == nil {
		classifiers = diagnosis.DefaultClassifiers()
	}
	return diagnosis.Diagnose(classifiers, in)
}

// buildInserts assembles the splice for a failed item: unmastered hard
// prerequisites nearest-first, then remediation exercises matched to the
// failure mode's item families. Items already queued further back are
// hoisted into the splice rather than duplicated.
func (s *Scheduler) buildInserts(it *Item, strategy remediation.Strategy) ([]*Item, []string) {
	var inserts []*Item
	var backtracked []string

	remaining := s.cfg.BacktrackDepth - it.Depth
	if remaining > 0 {
		for _, id := range s.deps.Graph.Backtrack(it.ConceptID, s.deps.Tracker, remaining) {
			a := s.pickAtom(id, it.Atom.ID)
			if a == nil {
				continue
			}
			s.queue.Remove(a.ID)
			inserts = append(inserts, &Item{
				Atom:      a,
				ConceptID: id,
				Origin:    OriginBacktrack,
				Depth:     it.Depth + 1,
			})
			backtracked = append(backtracked, id)
		}
	}

	allowed := make(map[atom.Type]bool, len(strategy.AtomTypes))
	for _, t := range strategy.AtomTypes {
		allowed[t] = true
	}
	added := 0
	for _, a := range s.atoms[it.ConceptID] {
		if added >= strategy.ExerciseCount {
			break
		}
		if a.ID == it.Atom.ID || !allowed[a.Type] {
			continue
		}
		s.queue.Remove(a.ID)
		inserts = append(inserts, &Item{
			Atom:      a,
			ConceptID: it.ConceptID,
			Origin:    OriginRemediation,
			Depth:     it.Depth,
		})
		added++
	}
	return inserts, backtracked
}

// pickAtom returns the first atom of a concept other than the excluded one.
func (s *Scheduler) pickAtom(conceptID, excludeID string) *atom.Atom {
	for _, a := range s.atoms[conceptID] {
		if a.ID != excludeID {
			return a
		}
	}
	return nil
}

func (s *Scheduler) requestNote(ctx context.Context, it *Item, concept conceptgraph.Concept, strategy remediation.Strategy) {
	if s.deps.Notes == nil || strategy.NoteType == remediation.NoteNone {
		return
	}
	input := remediation.NoteInput{
		ConceptID:   it.ConceptID,
		ConceptName: concept.Name,
		Module:      concept.Module,
		Strategy:    strategy,
		Confusables: s.confusables[it.ConceptID],
	}
	if s.deps.Events != nil {
		if errs, err := s.deps.Events.RecentErrors(ctx, it.ConceptID, s.cfg.RecentErrorCount); err == nil {
			input.RecentErrors = errs
		}
	}
	s.deps.Notes.RequestNote(ctx, input)
}

// ConsumeNote drains a finished remediation note, if one is ready.
func (s *Scheduler) ConsumeNote() (*remediation.Note, bool) {
	if s.deps.Notes == nil {
		return nil, false
	}
	return s.deps.Notes.ConsumeNote()
}

func (s *Scheduler) ensureTopic(module, section string) {
	if _, err := s.deps.Ledger.Get(module, section); err != nil {
		s.deps.Ledger.Register(module, section, 0)
	}
}

// buildQueue scores every due or new item of every unlocked concept and
// ranks them into the origin queue.
func (s *Scheduler) buildQueue(now time.Time) []*Item {
	var candidates []priority.Candidate
	byAtom := make(map[string]*Item)

	for _, conceptID := range s.deps.Graph.Concepts() {
		gate, err := s.deps.Graph.IsUnlocked(conceptID, s.deps.Tracker)
		if err != nil || !gate.Unlocked {
			continue
		}
		cm, err := s.deps.Tracker.Get(conceptID)
		if err != nil {
			continue
		}
		r := cm.Retrievability(now)
		if cm.ReviewCount > 0 && r >= s.cfg.DueThreshold {
			continue
		}

		concept, err := s.deps.Graph.Concept(conceptID)
		if err != nil {
			continue
		}
		score, severity := s.scoreConcept(concept, cm, r, now)

		taken := 0
		for _, a := range s.atoms[conceptID] {
			if taken >= s.cfg.MaxPerConcept {
				break
			}
			candidates = append(candidates, priority.Candidate{
				AtomID:         a.ID,
				ConceptID:      conceptID,
				Score:          score,
				Severity:       severity,
				Retrievability: r,
			})
			byAtom[a.ID] = &Item{Atom: a, ConceptID: conceptID, Origin: OriginQueue}
			taken++
		}
	}

	ranked := priority.Rank(candidates)
	ranked = s.applyTypeQuotas(ranked, byAtom)

	items := make([]*Item, 0, s.cfg.MaxItems)
	for _, c := range ranked {
		if len(items) >= s.cfg.MaxItems {
			break
		}
		items = append(items, byAtom[c.AtomID])
	}
	return items
}

// scoreConcept picks the scoring mode for a concept: topics whose dynamic
// struggle weight has crossed the focus threshold use the struggle score
// and outrank standard candidates on ties via severity.
func (s *Scheduler) scoreConcept(concept conceptgraph.Concept, cm *mastery.ConceptMastery, retrievability float64, now time.Time) (float64, int) {
	if w, err := s.deps.Ledger.Get(concept.Module, concept.Section); err == nil && w.Dynamic >= s.cfg.StruggleFocus {
		score := priority.StruggleScore(priority.StruggleInputs{
			StruggleWeight: w.Static,
			DynamicWeight:  w.Dynamic,
			Retrievability: retrievability,
		})
		return score, 1
	}

	days := 0.0
	if !cm.LastReviewAt.IsZero() {
		days = now.Sub(cm.LastReviewAt).Hours() / 24
	}
	focus := 0.0
	if s.cfg.FocusModules[concept.Module] {
		focus = 1.0
	}
	score := priority.StandardScore(priority.StandardInputs{
		DaysSinceReview: days,
		Centrality:      s.deps.Graph.Centrality(concept.ID),
		Focus:           focus,
		Novelty:         math.Pow(0.5, float64(cm.ReviewCount)),
	})
	return score, 0
}

// applyTypeQuotas enforces per-family caps among priority ties: an
// over-quota candidate is swapped with the next equal-score candidate
// whose family still has room. Candidates without a tied alternative keep
// their slot; quotas never reorder across distinct scores.
func (s *Scheduler) applyTypeQuotas(ranked []priority.Candidate, byAtom map[string]*Item) []priority.Candidate {
	if len(s.cfg.TypeQuotas) == 0 {
		return ranked
	}
	out := make([]priority.Candidate, len(ranked))
	copy(out, ranked)
	counts := make(map[atom.Type]int)

	for i := range out {
		t := byAtom[out[i].AtomID].Atom.Type
		quota, limited := s.cfg.TypeQuotas[t]
		if !limited || counts[t] < quota {
			counts[t]++
			continue
		}
		swapped := false
		for j := i + 1; j < len(out); j++ {
			if out[j].Score != out[i].Score {
				break
			}
			tj := byAtom[out[j].AtomID].Atom.Type
			qj, lj := s.cfg.TypeQuotas[tj]
			if !lj || counts[tj] < qj {
				out[i], out[j] = out[j], out[i]
				counts[tj]++
				swapped = true
				break
			}
		}
		if !swapped {
			counts[t]++
		}
	}
	return out
}

func (s *Scheduler) appendSessionEvent(ctx context.Context, action string) {
	if s.deps.Events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         action,
		ItemsServed:    s.served,
		CorrectAnswers: s.correct,
		DurationSecs:   int(s.now().Sub(s.startedAt).Seconds()),
	}
	if action != "end" && s.queue != nil {
		data.QueueSummary = s.queue.Summary()
	}
	// Persistence failures never interrupt the study loop.
	_ = s.deps.Events.AppendSessionEvent(ctx, data)
}

func (s *Scheduler) appendInteraction(ctx context.Context, it *Item, resp atom.Response, result atom.Result) {
	if s.deps.Events == nil {
		return
	}
	_ = s.deps.Events.AppendInteraction(ctx, store.InteractionEventData{
		SessionID:     s.sessionID,
		AtomID:        it.Atom.ID,
		ConceptID:     it.ConceptID,
		AtomType:      string(it.Atom.Type),
		Correct:       result.Correct,
		PartialScore:  result.PartialScore,
		TimeMs:        int64(resp.TimeMs),
		Confidence:    resp.Confidence,
		Attempt:       1,
		LearnerAnswer: learnerAnswer(it.Atom, resp),
		Origin:        string(it.Origin),
	})
}

func (s *Scheduler) appendDiagnosis(ctx context.Context, it *Item, d *diagnosis.Diagnosis) {
	if s.deps.Events == nil {
		return
	}
	_ = s.deps.Events.AppendDiagnosis(ctx, store.DiagnosisEventData{
		SessionID:   s.sessionID,
		ConceptID:   it.ConceptID,
		AtomID:      it.Atom.ID,
		FailureMode: string(d.Mode),
		Confidence:  d.Confidence,
		Rule:        d.Rule,
		Evidence:    d.Evidence,
	})
}

func learnerAnswer(a *atom.Atom, resp atom.Response) string {
	switch a.Type {
	case atom.TypeMCQ:
		if resp.Option >= 0 && resp.Option < len(a.Options) {
			return a.Options[resp.Option]
		}
		return fmt.Sprintf("option %d", resp.Option)
	case atom.TypeParsons:
		return strings.Join(resp.Order, " | ")
	case atom.TypeMatching:
		parts := make([]string, 0, len(resp.Assignments))
		for k, v := range resp.Assignments {
			parts = append(parts, k+"="+v)
		}
		sort.Strings(parts)
		return strings.Join(parts, ", ")
	default:
		return resp.Text
	}
}
