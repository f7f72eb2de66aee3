package atom

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when no handler is registered for an atom's type.
var ErrUnknownType = errors.New("unknown atom type")

// Handler is the per-family grading capability. The scheduler core depends
// only on Check's result shape and never branches on the type name;
// presentation and input capture live with the caller.
type Handler interface {
	// Type returns the item family this handler grades.
	Type() Type
	// Validate reports whether the atom carries the fields the family needs.
	Validate(a *Atom) error
	// Check grades a response.
	Check(a *Atom, r Response) Result
	// Hint returns a scaffold for the given attempt, or "" when exhausted.
	Hint(a *Atom, attempt int) string
}

// Registry maps item families to their handlers.
type Registry struct {
	handlers map[Type]Handler
}

// NewRegistry creates a registry with every built-in family registered.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[Type]Handler)}
	for _, h := range []Handler{
		&FlashcardHandler{},
		&ClozeHandler{},
		&MCQHandler{},
		&TrueFalseHandler{},
		&MatchingHandler{},
		&ParsonsHandler{},
		&NumericHandler{},
	} {
		r.Register(h)
	}
	return r
}

// Register adds or replaces the handler for a family.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Type()] = h
}

// Handler returns the handler for a family.
func (r *Registry) Handler(t Type) (Handler, error) {
	h, ok := r.handlers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return h, nil
}

// Check grades a response by dispatching to the atom's family handler.
func (r *Registry) Check(a *Atom, resp Response) (Result, error) {
	h, err := r.Handler(a.Type)
	if err != nil {
		return Result{}, err
	}
	return h.Check(a, resp), nil
}

// hintAt is the shared hint lookup used by most handlers: the first
// attempt gets hint 0, and attempts beyond the list return "".
func hintAt(a *Atom, attempt int) string {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(a.Hints) {
		return ""
	}
	return a.Hints[attempt-1]
}
