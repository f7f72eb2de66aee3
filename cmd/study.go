package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/conceptgraph"
	"github.com/okanta/memloop/internal/curriculum"
	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/llm"
	"github.com/okanta/memloop/internal/mastery"
	"github.com/okanta/memloop/internal/remediation"
	"github.com/okanta/memloop/internal/session"
	"github.com/okanta/memloop/internal/state"
	"github.com/okanta/memloop/internal/store"
	"github.com/okanta/memloop/internal/struggle"
	"github.com/okanta/memloop/internal/telemetry"
	"github.com/okanta/memloop/internal/ui"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy(cmd)
	},
}

func init() {
	studyCmd.Flags().Int("max-items", 0, "Session length cap (0 = default)")
	studyCmd.Flags().StringSlice("focus", nil, "Modules to prioritize this session")
}

// runStudy opens the store, loads the decks, restores learner state and
// drives one interactive session on stdin.
func runStudy(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cur, err := loadDecks(cmd)
	if err != nil {
		return err
	}

	sched, engines, err := buildSession(ctx, cmd, st, cur)
	if err != nil {
		return err
	}

	if err := sched.Start(ctx); err != nil {
		if errors.Is(err, session.ErrNothingDue) {
			fmt.Println("Nothing is due right now. Come back later, or add new decks.")
			return nil
		}
		return fmt.Errorf("start session: %w", err)
	}

	runLoop(ctx, sched)

	sum := sched.End(ctx)
	fmt.Println()
	fmt.Println(ui.Title.Render("Session complete"))
	fmt.Printf("  Items answered:  %d\n", sum.ItemsServed)
	fmt.Printf("  Correct:         %d\n", sum.CorrectAnswers)
	fmt.Printf("  Duration:        %s\n", sum.Duration.Round(time.Second))

	if err := state.Save(ctx, st, engines); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save progress snapshot:", err)
	}
	return nil
}

// buildSession wires the engines over the loaded curriculum.
func buildSession(ctx context.Context, cmd *cobra.Command, st *store.Store, cur *curriculum.Curriculum) (*session.Scheduler, state.Engines, error) {
	eventRepo := st.EventRepo()

	tracker := mastery.NewTracker(cur.Graph.Concepts(), eventRepo)
	ledger := struggle.NewLedger(eventRepo)
	for _, w := range cur.Weights {
		ledger.Register(w.Module, w.Section, w.Static)
	}
	normalizer := telemetry.NewNormalizer()
	confusion := diagnosis.NewConfusionTracker()

	cfg := session.DefaultConfig()
	if n, _ := cmd.Flags().GetInt("max-items"); n > 0 {
		cfg.MaxItems = n
	}
	if focus, _ := cmd.Flags().GetStringSlice("focus"); len(focus) > 0 {
		cfg.FocusModules = make(map[string]bool, len(focus))
		for _, m := range focus {
			cfg.FocusModules[m] = true
		}
	}

	engines := state.Engines{
		LearnerID:  cfg.LearnerID,
		Tracker:    tracker,
		Ledger:     ledger,
		Normalizer: normalizer,
		Confusion:  confusion,
	}
	if err := state.Restore(ctx, st.SnapshotRepo(), engines); err != nil {
		return nil, engines, fmt.Errorf("restore learner state: %w", err)
	}

	waivers, err := st.WaiverRepo().All(ctx)
	if err != nil {
		return nil, engines, fmt.Errorf("load waivers: %w", err)
	}
	for _, w := range waivers {
		cur.Graph.Grant(waiverFromRecord(w))
	}

	deps := session.Deps{
		Graph:      cur.Graph,
		Tracker:    tracker,
		Ledger:     ledger,
		Registry:   atom.NewRegistry(),
		Normalizer: normalizer,
		Confusion:  confusion,
		Events:     eventRepo,
	}

	// Remediation notes need an LLM; the session works without one.
	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Remediation notes will be unavailable.")
	} else {
		deps.Notes = remediation.NewNoteService(provider, remediation.DefaultNoteConfig())
	}

	sched := session.NewScheduler(cfg, deps)
	sched.AddAtoms(cur.Atoms...)
	for _, c := range cur.Clusters {
		sched.RegisterConfusionCluster(c.ID, c.Concepts)
	}
	return sched, engines, nil
}

// runLoop serves items until the queue empties or the learner quits.
func runLoop(ctx context.Context, sched *session.Scheduler) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(ui.Subtitle.Render("Type your answer, or: hint, break, tired, quit"))
	fmt.Println()

	for {
		item, err := sched.NextItem()
		if err != nil {
			return
		}

		renderItem(item)
		resp, action := readResponse(scanner, item.Atom)
		switch action {
		case actionQuit:
			return
		case actionHint:
			if h, ok := sched.Hint(); ok {
				fmt.Println(ui.Hint.Render("hint: " + h))
			} else {
				fmt.Println(ui.Hint.Render("No hints left for this one."))
			}
			continue
		case actionRetry:
			continue
		case actionTired:
			if v, ok := promptFatigue(scanner); ok {
				sched.SetFatigue(v)
				fmt.Println(ui.Hint.Render("Noted. Misses while you're drained count for less."))
			}
			continue
		}

		out, err := sched.RecordResponse(ctx, *resp)
		if err != nil {
			fmt.Fprintln(os.Stderr, "record response:", err)
			continue
		}
		renderOutcome(item, out)

		if note, ok := sched.ConsumeNote(); ok {
			renderNote(note)
		}
		if out.SuggestBreak {
			if promptBreak(scanner) {
				sched.TakeBreak()
			}
		}
	}
}

func renderItem(item *session.Item) {
	a := item.Atom
	switch item.Origin {
	case session.OriginBacktrack:
		fmt.Println(ui.Warn.Render("↩ reviewing a prerequisite"))
	case session.OriginRemediation:
		fmt.Println(ui.Warn.Render("↻ one more on this idea"))
	}

	fmt.Println(ui.Body.Render(a.Prompt))
	switch a.Type {
	case atom.TypeMCQ:
		for i, opt := range a.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
	case atom.TypeTrueFalse:
		fmt.Println(ui.Hint.Render("  (true/false)"))
	case atom.TypeCloze:
		fmt.Println(ui.Hint.Render(fmt.Sprintf("  (%d blanks, separate with ;)", len(a.Blanks))))
	case atom.TypeMatching:
		lefts := make([]string, 0, len(a.Pairs))
		rights := make([]string, 0, len(a.Pairs))
		for l, r := range a.Pairs {
			lefts = append(lefts, l)
			rights = append(rights, r)
		}
		sort.Strings(lefts)
		sort.Strings(rights)
		fmt.Printf("  match: %s\n", strings.Join(lefts, ", "))
		fmt.Printf("  with:  %s\n", strings.Join(rights, ", "))
		fmt.Println(ui.Hint.Render("  (answer as left=right, comma separated)"))
	case atom.TypeParsons:
		scrambled := scramble(a.Steps)
		for i, s := range scrambled {
			fmt.Printf("  %d) %s\n", i+1, s)
		}
		fmt.Println(ui.Hint.Render("  (order the steps, e.g. 3 1 2)"))
	}
	fmt.Print("> ")
}

type inputAction int

const (
	actionAnswer inputAction = iota
	actionQuit
	actionHint
	actionRetry
	actionTired
)

// readResponse parses one line of input into a graded response, or into
// a loop action (hint, break, tired, quit, bad input).
func readResponse(scanner *bufio.Scanner, a *atom.Atom) (*atom.Response, inputAction) {
	start := time.Now()
	if !scanner.Scan() {
		return nil, actionQuit
	}
	line := strings.TrimSpace(scanner.Text())
	elapsed := int(time.Since(start).Milliseconds())

	switch strings.ToLower(line) {
	case "quit", "q", "exit":
		return nil, actionQuit
	case "break":
		fmt.Println(ui.Hint.Render("Paused. Press enter to continue."))
		scanner.Scan()
		return nil, actionRetry
	case "hint", "?":
		return nil, actionHint
	case "tired":
		return nil, actionTired
	}

	resp := atom.Response{Text: line, TimeMs: elapsed}
	switch a.Type {
	case atom.TypeMCQ:
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(a.Options) {
			fmt.Println(ui.Incorrect.Render("Pick an option number."))
			return nil, actionRetry
		}
		resp.Option = n - 1
	case atom.TypeMatching:
		resp.Assignments = parseAssignments(line)
	case atom.TypeParsons:
		order, err := parseOrder(line, scramble(a.Steps))
		if err != nil {
			fmt.Println(ui.Incorrect.Render(err.Error()))
			return nil, actionRetry
		}
		resp.Order = order
	}
	return &resp, actionAnswer
}

func parseAssignments(line string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(line, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		out[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return out
}

func parseOrder(line string, displayed []string) ([]string, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(displayed) {
			return nil, fmt.Errorf("enter step numbers between 1 and %d", len(displayed))
		}
		order = append(order, displayed[n-1])
	}
	return order, nil
}

// scramble rotates the steps so the displayed order never matches the
// answer, while staying stable across re-renders of the same item.
func scramble(steps []string) []string {
	if len(steps) < 2 {
		return steps
	}
	out := make([]string, len(steps))
	copy(out, steps[1:])
	out[len(steps)-1] = steps[0]
	return out
}

func renderOutcome(item *session.Item, out *session.Outcome) {
	if out.Result.Correct {
		fmt.Println(ui.Correct.Render("✓ Correct"))
	} else {
		fmt.Println(ui.Incorrect.Render("✗ Not quite.") + " " + answerText(item.Atom))
		if out.Diagnosis != nil {
			fmt.Println(ui.Hint.Render("  " + diagnosisText(out.Diagnosis)))
		}
		if len(out.Backtracked) > 0 {
			fmt.Println(ui.Warn.Render("  Revisiting first: " + strings.Join(out.Backtracked, ", ")))
		}
	}
	if out.Mastery != nil {
		fmt.Printf("  mastery %s\n", ui.Bar(out.Mastery.CombinedMastery, 24))
	}
	for _, w := range out.Warnings {
		fmt.Println(ui.Warn.Render(fmt.Sprintf("  heads-up: %s is still shaky", w.Source)))
	}
	fmt.Println()
}

func answerText(a *atom.Atom) string {
	switch a.Type {
	case atom.TypeMCQ:
		return "Answer: " + a.Options[a.CorrectOption]
	case atom.TypeCloze:
		return "Answer: " + strings.Join(a.Blanks, "; ")
	case atom.TypeParsons:
		return "Order: " + strings.Join(a.Steps, " → ")
	case atom.TypeMatching:
		pairs := make([]string, 0, len(a.Pairs))
		for l, r := range a.Pairs {
			pairs = append(pairs, l+"="+r)
		}
		sort.Strings(pairs)
		return "Pairs: " + strings.Join(pairs, ", ")
	default:
		return "Answer: " + a.Answer
	}
}

func diagnosisText(d *diagnosis.Diagnosis) string {
	switch d.Mode {
	case diagnosis.ModeEncoding:
		return "Looks like this never quite stuck the first time."
	case diagnosis.ModeRetrieval:
		return "You've known this before; it needs a refresher."
	case diagnosis.ModeDiscrimination:
		return "You may be mixing this up with a similar idea."
	case diagnosis.ModeIntegration:
		return "The pieces are there; combining them is the hard part."
	case diagnosis.ModeExecutive:
		return "That looked like a slip, not a gap."
	case diagnosis.ModeFatigue:
		return "You seem tired; this miss may not mean much."
	default:
		return string(d.Mode)
	}
}

func renderNote(n *remediation.Note) {
	fmt.Println(ui.Label.Render("── " + n.Title + " ──"))
	fmt.Println(n.Body)
	if len(n.ContrastedWith) > 0 {
		fmt.Println(ui.Hint.Render("contrast with: " + strings.Join(n.ContrastedWith, ", ")))
	}
	fmt.Println()
}

// promptFatigue asks for a 1-5 drain rating and maps it onto the
// fatigue vector. Returns false when the input is not a usable rating.
func promptFatigue(scanner *bufio.Scanner) (diagnosis.FatigueVector, bool) {
	fmt.Print(ui.Hint.Render("How drained are you, 1 (fresh) to 5 (spent)? "))
	if !scanner.Scan() {
		return diagnosis.FatigueVector{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 1 || n > 5 {
		fmt.Println(ui.Incorrect.Render("Enter a number from 1 to 5."))
		return diagnosis.FatigueVector{}, false
	}
	return fatigueFromDrain(n), true
}

// fatigueFromDrain spreads a single self-reported drain rating across
// the three fatigue dimensions. Sustained study taxes the cognitive
// axis hardest, so it carries the full rating and the other two are
// discounted.
func fatigueFromDrain(level int) diagnosis.FatigueVector {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	f := float64(level) / 5
	return diagnosis.FatigueVector{
		Physical:     0.8 * f,
		Cognitive:    f,
		Motivational: 0.9 * f,
	}
}

func promptBreak(scanner *bufio.Scanner) bool {
	fmt.Print(ui.Warn.Render("You've been at it a while. Take a short break? [y/N] "))
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func waiverFromRecord(w store.WaiverRecord) conceptgraph.Waiver {
	return conceptgraph.Waiver{
		Source:    w.SourceID,
		Target:    w.TargetID,
		Type:      conceptgraph.WaiverType(w.Type),
		Note:      w.Note,
		GrantedAt: w.GrantedAt,
	}
}
