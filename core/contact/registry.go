package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrFormNotFound = errors.New("contact form not found")

type (
	// MountedForm is a Form together with the notices meant for its page.
	MountedForm struct {
		*Form
		Notices *NoticeBox
	}

	// Registry keeps the forms of the page views currently open, by form ID.
	// Forms left idle longer than the idle timeout are swept, unless they are submitting.
	// Past maxForms, mounting evicts the least recently seen form that is not submitting.
	Registry struct {
		deps        FormDeps
		idleTimeout time.Duration
		maxForms    int
		nowFunc     func() time.Time

		mu    sync.Mutex
		forms map[string]*registryEntry
	}

	registryEntry struct {
		form     *MountedForm
		lastSeen time.Time
	}
)

// NewRegistry returns an empty registry. A non-positive maxForms leaves it unbounded.
func NewRegistry(deps FormDeps, idleTimeout time.Duration, maxForms int) *Registry {
	return &Registry{
		deps:        deps,
		idleTimeout: idleTimeout,
		maxForms:    maxForms,
		nowFunc:     time.Now,
		forms:       make(map[string]*registryEntry),
	}
}

// Mount creates a new form with a fresh ID.
func (r *Registry) Mount() *MountedForm {
	box := new(NoticeBox)
	deps := r.deps
	deps.Notifier = box
	mf := &MountedForm{
		Form:    NewForm(uuid.NewString(), deps),
		Notices: box,
	}

	r.mu.Lock()
	if r.maxForms > 0 && len(r.forms) >= r.maxForms {
		r.evictOldest()
	}
	r.forms[mf.ID()] = &registryEntry{form: mf, lastSeen: r.nowFunc()}
	r.mu.Unlock()
	return mf
}

// evictOldest must be called with mu held.
func (r *Registry) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, entry := range r.forms {
		if entry.form.State() == StateSubmitting {
			continue
		}
		if oldestID == "" || entry.lastSeen.Before(oldest) {
			oldestID, oldest = id, entry.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.forms, oldestID)
	}
}

func (r *Registry) Get(id string) (*MountedForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	entry.lastSeen = r.nowFunc()
	return entry.form, nil
}

// Unmount discards a form and whatever was typed in it.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	delete(r.forms, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Sweep unmounts idle forms and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}
	cutoff := r.nowFunc().Add(-r.idleTimeout)

	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for id, entry := range r.forms {
		if entry.lastSeen.Before(cutoff) && entry.form.State() != StateSubmitting {
			delete(r.forms, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	if r.idleTimeout <= 0 {
		return
	}
	ticker := time.NewTicker(r.idleTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
