package session

import (
	"sync"

	"contest_client/internal/domain/model"
)

// ApplyOutcome describes what a whole-record write did to the registry.
type ApplyOutcome struct {
	// Inserted is true when the id was not present before.
	Inserted bool
	// TerminalTransition is true when this write moved the record from a
	// non-terminal status into ACCEPTED or WRONG_ANSWER. Each transition
	// happens at most once per id because terminal records are never
	// selected for polling again.
	TerminalTransition bool
	// UnknownStatus is true when the applied status is outside the closed
	// contract enumeration.
	UnknownStatus bool
	// Regressed is true when a previously terminal record was overwritten
	// with a non-terminal status. The judge contract forbids this; the
	// write is still applied verbatim (last response processed wins).
	Regressed bool
}

// Registry is the client's authoritative view of the current participant's
// submissions. Ids are unique, records are only ever replaced wholesale,
// and no id is ever dropped. The exposed order is most-recent-first.
type Registry struct {
	mu    sync.RWMutex
	byID  map[int64]model.Submission
	order []int64 // newest first
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[int64]model.Submission)}
}

// Insert records a freshly created submission at the front of the view.
// Inserting an id that already exists collapses to a replace.
func (r *Registry) Insert(sub model.Submission) ApplyOutcome {
	return r.put(sub)
}

// Apply replaces the record for sub.ID with the server's latest snapshot.
// Last write wins per id; field-level merging never happens.
func (r *Registry) Apply(sub model.Submission) ApplyOutcome {
	return r.put(sub)
}

func (r *Registry) put(sub model.Submission) ApplyOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	outcome := ApplyOutcome{UnknownStatus: !sub.Status.Known()}

	prev, exists := r.byID[sub.ID]
	if !exists {
		outcome.Inserted = true
		r.order = append([]int64{sub.ID}, r.order...)
	} else {
		outcome.TerminalTransition = !prev.Status.Terminal() && sub.Status.Terminal()
		outcome.Regressed = prev.Status.Terminal() && !sub.Status.Terminal()
	}
	r.byID[sub.ID] = sub
	return outcome
}

// Get returns the current record for id.
func (r *Registry) Get(id int64) (model.Submission, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.byID[id]
	return sub, ok
}

// List returns a copy of all submissions, most recent first.
func (r *Registry) List() []model.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subs := make([]model.Submission, 0, len(r.order))
	for _, id := range r.order {
		subs = append(subs, r.byID[id])
	}
	return subs
}

// ActiveIDs returns the ids still worth polling: exactly those whose status
// is PENDING or RUNNING. Terminal and unrecognized statuses are excluded,
// so polling stops implicitly once a record leaves the active set.
func (r *Registry) ActiveIDs() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []int64
	for _, id := range r.order {
		if r.byID[id].Status.Active() {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len reports the number of distinct submission ids held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
