// Package setting holds the authoritative in-memory copies of all
// user-editable configuration categories and persists them with a debounced,
// coalescing, retrying save engine. Saves never fail synchronously: callers
// fire and forget, failures are logged and optionally notified, and the
// on-disk file is never left worse than it was before a failed write.
package setting

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"

	"github.com/pitwall-app/pitwall/app/setting/request"
)

//go:generate moq -out mocks/fileops.go -pkg mocks -skip-ensure -fmt goimports . FileOps
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// FileOps defines the file primitives the engine drives for each save pass.
// Backup captures pre-write state, Verify is the write-success oracle and
// Restore brings back the backup byte-for-byte.
type FileOps interface {
	Save(data map[string]any, name, dir string) error
	Verify(data map[string]any, name, dir string) error
	CreateBackup(name, dir string) error
	RestoreBackup(name, dir string) error
	DeleteBackup(name, dir string) error
}

// Notifier interface defines notification delivery on exhausted save attempts.
type Notifier interface {
	Send(ctx context.Context, subj, text string) error
	IsOnFailure() bool
	MakeSaveFailureHTML(category, file, errorLog string) (string, error)
}

// History records completed save passes for later inspection.
type History interface {
	RecordSave(ctx context.Context, ev request.SaveEvent) error
}

// DefaultDebounce delays a flush so bursts of requests (a slider being
// dragged, rapid toggles) coalesce into one write.
const DefaultDebounce = 660 * time.Millisecond

const (
	minAttempts         = 3
	defaultRetryDelay   = 50 * time.Millisecond
	collaboratorTimeout = 30 * time.Second
)

// Params configures NewEngine.
type Params struct {
	FileOps     FileOps
	Notifier    Notifier      // optional, nil disables failure notifications
	History     History       // optional, nil disables save-event records
	MaxAttempts int           // write-and-verify budget per pass, raised to 3 when lower
	RetryDelay  time.Duration // pause between failed attempts, default 50ms
}

// Engine coordinates at-most-one background save worker over a FIFO queue of
// category files. Requests for a file already queued coalesce; the state
// written is whatever the category's source returns at write time.
type Engine struct {
	fileOps     FileOps
	notifier    Notifier
	history     History
	maxAttempts int
	retryDelay  time.Duration

	mu       sync.Mutex
	files    map[Category]target // registered categories
	queue    map[string]pending  // keyed by file name, coalesces repeats
	order    []string            // FIFO of queued file names
	active   bool                // a worker goroutine is running
	writing  string              // file currently being written, if any
	deadline time.Time           // debounce deadline, overwritten by each request
	bump     chan struct{}       // wakes the worker when the deadline moves
	waiters  []chan struct{}     // closed when the queue drains
}

type target struct {
	name   string
	dir    string
	source func() map[string]any
}

type pending struct {
	cat Category
	target
}

// Status is a point-in-time view of the engine state.
type Status struct {
	Saving bool     `json:"saving"`
	Active string   `json:"active,omitempty"`
	Queued []string `json:"queued"`
}

// NewEngine makes a save engine with the given collaborators.
func NewEngine(p Params) *Engine {
	if p.MaxAttempts < minAttempts {
		p.MaxAttempts = minAttempts
	}
	if p.RetryDelay <= 0 {
		p.RetryDelay = defaultRetryDelay
	}
	return &Engine{
		fileOps:     p.FileOps,
		notifier:    p.Notifier,
		history:     p.History,
		maxAttempts: p.MaxAttempts,
		retryDelay:  p.RetryDelay,
		files:       map[Category]target{},
		queue:       map[string]pending{},
		bump:        make(chan struct{}, 1),
	}
}

// Register binds a category to its file name, directory and state source.
// The source is invoked at write time and must return a self-contained copy
// of the current state. Re-registering replaces the binding, which is how a
// preset switch changes the setting category's file name.
func (e *Engine) Register(cat Category, name, dir string, source func() map[string]any) error {
	if !cat.Valid() {
		return fmt.Errorf("unknown category %q", cat)
	}
	if name == "" || source == nil {
		return fmt.Errorf("category %s needs a file name and a source", cat)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.files[cat] = target{name: name, dir: dir, source: source}
	return nil
}

// Save queues a write for the category and returns immediately. Repeated
// requests for a file already queued coalesce into one write; every accepted
// request re-arms the debounce window, so a burst flushes once, measured from
// its last edit, and a zero debounce flushes the pending head right away.
// Unknown categories are dropped with a log line, callers never see an error.
func (e *Engine) Save(cat Category, debounce time.Duration) {
	e.mu.Lock()
	t, ok := e.files[cat]
	if !ok {
		e.mu.Unlock()
		log.Printf("[WARN] save request for unknown category %q dropped", cat)
		return
	}
	if _, queued := e.queue[t.name]; !queued {
		e.queue[t.name] = pending{cat: cat, target: t}
		e.order = append(e.order, t.name)
	}
	e.deadline = time.Now().Add(debounce)
	start := !e.active
	e.active = true
	e.mu.Unlock()

	select {
	case e.bump <- struct{}{}:
	default:
	}
	if start {
		go e.worker()
	}
}

// Saving reports whether a save is running or queued.
func (e *Engine) Saving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active || len(e.order) > 0
}

// Wait blocks until the queue drains and the worker exits, or ctx ends.
func (e *Engine) Wait(ctx context.Context) error {
	e.mu.Lock()
	if !e.active && len(e.order) == 0 {
		e.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	e.waiters = append(e.waiters, ch)
	e.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status returns the current engine state for the status API.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		Saving: e.active || len(e.order) > 0,
		Active: e.writing,
		Queued: append([]string{}, e.order...),
	}
}

// worker is the single background loop draining the queue. It exists only
// while work is pending; the active flag under mu guarantees one instance
// system-wide, which serializes all writes in FIFO order.
func (e *Engine) worker() {
	for {
		e.waitDebounce()

		e.mu.Lock()
		if len(e.order) == 0 {
			e.active = false
			for _, ch := range e.waiters {
				close(ch)
			}
			e.waiters = nil
			e.mu.Unlock()
			return
		}
		name := e.order[0]
		p := e.queue[name]
		// dequeue before writing: a request arriving mid-write re-enters the
		// queue and gets a second pass with the newer state
		e.order = e.order[1:]
		delete(e.queue, name)
		e.writing = name
		e.mu.Unlock()

		e.process(p)

		e.mu.Lock()
		e.writing = ""
		e.mu.Unlock()
	}
}

// waitDebounce sleeps until the debounce deadline, re-arming whenever a new
// request moves it. Returns immediately once the deadline is in the past.
func (e *Engine) waitDebounce() {
	for {
		e.mu.Lock()
		d := time.Until(e.deadline)
		e.mu.Unlock()
		if d <= 0 {
			return
		}
		timer := time.NewTimer(d)
		select {
		case <-timer.C:
		case <-e.bump:
			timer.Stop()
		}
	}
}

// process runs one full save pass: backup, write-and-verify attempts, restore
// on exhaustion, cleanup. All failures stay inside this method.
func (e *Engine) process(p pending) {
	st := time.Now()
	data := p.source()
	budget := e.maxAttempts

	if err := e.fileOps.CreateBackup(p.name, p.dir); err != nil {
		log.Printf("[WARN] unable to back up %s before saving: %v", p.name, err)
	}

	used := 0
	rep := repeater.New(&strategy.FixedDelay{Repeats: budget, Delay: e.retryDelay})
	err := rep.Do(context.Background(), func() error {
		used++
		if err := e.fileOps.Save(data, p.name, p.dir); err != nil {
			log.Printf("[WARN] failed saving %s: %v, %d attempt(s) left", p.name, err, budget-used)
			return err
		}
		if err := e.fileOps.Verify(data, p.name, p.dir); err != nil {
			log.Printf("[WARN] failed verifying %s: %v, %d attempt(s) left", p.name, err, budget-used)
			return err
		}
		return nil
	})

	took := time.Since(st)
	outcome := request.OutcomeSaved
	if err != nil {
		outcome = request.OutcomeFailed
		if rerr := e.fileOps.RestoreBackup(p.name, p.dir); rerr != nil {
			log.Printf("[WARN] unable to restore %s after failed save: %v", p.name, rerr)
		}
		log.Printf("[ERROR] %s failed saving, previous file restored (took %v, %d/%d attempts)",
			p.name, took.Round(time.Millisecond), used, budget)
		e.notifyFailure(p, err)
	} else {
		log.Printf("[INFO] %s saved (took %v, %d/%d attempts)", p.name, took.Round(time.Millisecond), used, budget)
	}

	if derr := e.fileOps.DeleteBackup(p.name, p.dir); derr != nil {
		log.Printf("[WARN] unable to delete backup of %s: %v", p.name, derr)
	}

	e.record(p, outcome, used, took)
}

func (e *Engine) notifyFailure(p pending, err error) {
	if e.notifier == nil || reflect.ValueOf(e.notifier).IsNil() {
		return
	}
	if !e.notifier.IsOnFailure() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
	defer cancel()

	msg, merr := e.notifier.MakeSaveFailureHTML(string(p.cat), p.name, err.Error())
	if merr != nil {
		log.Printf("[WARN] failed to make failure message for %s: %v", p.name, merr)
		return
	}
	subj := fmt.Sprintf("pitwall: failed to save %s", p.name)
	if serr := e.notifier.Send(ctx, subj, msg); serr != nil {
		log.Printf("[WARN] failed to send failure notification for %s: %v", p.name, serr)
	}
}

func (e *Engine) record(p pending, outcome request.Outcome, used int, took time.Duration) {
	if e.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
	defer cancel()

	ev := request.SaveEvent{
		Category: string(p.cat),
		File:     p.name,
		Outcome:  outcome,
		Attempts: used,
		Took:     took,
		At:       time.Now(),
	}
	if err := e.history.RecordSave(ctx, ev); err != nil {
		log.Printf("[WARN] failed to record save event for %s: %v", p.name, err)
	}
}
