package scene

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is a handle to work scheduled on a Scene.
type Task interface {
	// ID returns the task's unique identifier.
	//
	// Returns:
	//   - uuid.UUID: the task ID
	ID() uuid.UUID

	// Cancel stops the task if its timer has not fired yet.
	//
	// Returns:
	//   - bool: true if this call cancelled the task
	Cancel() bool

	// Done returns a channel closed once the task has run or been cancelled.
	//
	// Returns:
	//   - <-chan struct{}: the completion channel
	Done() <-chan struct{}

	// Ran reports whether the task's work executed. Only meaningful after Done is closed.
	//
	// Returns:
	//   - bool: true if the work ran
	Ran() bool
}

type task struct {
	id    uuid.UUID
	owner *scene
	timer *time.Timer

	once sync.Once
	done chan struct{}
	mu   sync.Mutex
	ran  bool
}

var _ Task = &task{}

func newTask(owner *scene) *task {
	return &task{
		id:    uuid.New(),
		owner: owner,
		done:  make(chan struct{}),
	}
}

func (t *task) ID() uuid.UUID {
	return t.id
}

func (t *task) Cancel() bool {
	return t.owner.cancel(t)
}

func (t *task) Done() <-chan struct{} {
	return t.done
}

func (t *task) Ran() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ran
}

// finish records the outcome and closes Done. Only the first call has effect.
func (t *task) finish(ran bool) {
	t.once.Do(func() {
		t.mu.Lock()
		t.ran = ran
		t.mu.Unlock()
		close(t.done)
	})
}
