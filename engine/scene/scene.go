package scene

import (
	"log"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/crystal-runner/engine/game_object"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/google/uuid"
)

// Scene manages a registry of root GameObjects, standalone lights, and timed
// tasks whose lifetime is bound to the scene.
//
// Child objects are reached through their roots and are not registered on their
// own. Lights attached to any object in a registered tree are reported by Lights
// alongside standalone lights.
// Thread-safe for concurrent access; scheduled tasks run on a worker pool.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Count returns the number of non-ephemeral root objects in the registry.
	//
	// Returns:
	//   - int: count of non-ephemeral objects
	Count() int

	// CountEphemeral returns the number of ephemeral root objects (particles and
	// other effect-owned meshes) in the registry.
	//
	// Returns:
	//   - int: count of ephemeral objects
	CountEphemeral() int

	// Add registers a root GameObject. Objects without an ID are assigned the next
	// free one. Adding an already registered object is a no-op.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a registered object by its ID. Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove unregisters an object by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// RemoveObject unregisters obj if it is the object registered under its ID.
	//
	// Parameters:
	//   - obj: the object to remove
	RemoveObject(obj game_object.GameObject)

	// Contains reports whether obj is registered in this scene.
	//
	// Parameters:
	//   - obj: the object to look up
	//
	// Returns:
	//   - bool: true if registered
	Contains(obj game_object.GameObject) bool

	// Objects returns the registered root objects ordered by ID (insertion order).
	//
	// Returns:
	//   - []game_object.GameObject: a snapshot of the registry
	Objects() []game_object.GameObject

	// Clear removes all objects and standalone lights. Pending tasks are kept.
	Clear()

	// AddLight adds a standalone light. Adding the same light twice is a no-op.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a standalone light by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// HasLight reports whether l is registered as a standalone light.
	//
	// Parameters:
	//   - l: the Light to look up
	//
	// Returns:
	//   - bool: true if present
	HasLight(l light.Light) bool

	// Lights returns the standalone lights followed by lights attached to
	// registered object trees.
	//
	// Returns:
	//   - []light.Light: a snapshot of the scene's lights
	Lights() []light.Light

	// SyncLights copies the world position of every object with an attached light
	// onto that light. Call once per frame after moving objects.
	SyncLights()

	// AmbientColor returns the scene's ambient light color.
	//
	// Returns:
	//   - [3]float32: the ambient RGB color
	AmbientColor() [3]float32

	// SetAmbientColor sets the scene's ambient light color.
	//
	// Parameters:
	//   - color: the ambient RGB color
	SetAmbientColor(color [3]float32)

	// Schedule runs fn once after delay of wall time, independent of any frame
	// clock. The task belongs to the scene: Dispose cancels it if it has not
	// started. Scheduling on a disposed scene returns an already cancelled task.
	//
	// Parameters:
	//   - delay: wall-clock delay before fn runs
	//   - fn: the work to run
	//
	// Returns:
	//   - Task: a handle that can cancel or await the task
	Schedule(delay time.Duration, fn func()) Task

	// PendingTasks returns the number of scheduled tasks whose timer has not fired yet.
	//
	// Returns:
	//   - int: pending task count
	PendingTasks() int

	// Stats returns a snapshot of registry sizes for logging.
	//
	// Returns:
	//   - Stats: the counters
	Stats() Stats

	// Dispose cancels every pending task, clears the registry and marks the scene
	// disposed. Tasks already handed to a worker observe the flag and skip their work.
	// Safe to call multiple times.
	Dispose()

	// Disposed reports whether Dispose has been called.
	//
	// Returns:
	//   - bool: true once disposed
	Disposed() bool
}

// Stats is a point-in-time snapshot of a scene's contents.
type Stats struct {
	Objects      int
	Ephemeral    int
	Lights       int
	PendingTasks int
}

type scene struct {
	mu *sync.RWMutex

	name     string
	active   bool
	disposed bool

	registry map[uint64]game_object.GameObject
	nextID   uint64

	lights       []light.Light
	ambientColor [3]float32

	tasks       map[uuid.UUID]*task
	taskSeq     atomic.Int64
	taskWorkers int

	// taskPool runs fired task callbacks off the timer goroutines. Workers
	// idle-exit, so a quiet scene holds no goroutines.
	taskPool worker.DynamicWorkerPool
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new, inactive Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		registry:     make(map[uint64]game_object.GameObject),
		nextID:       1,
		tasks:        make(map[uuid.UUID]*task),
		taskWorkers:  max(runtime.NumCPU()/2, 1),
		ambientColor: [3]float32{0.1, 0.1, 0.1},
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithTaskWorkers can override the default.
	s.taskPool = worker.NewDynamicWorkerPool(s.taskWorkers, 64, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, obj := range s.registry {
		if !obj.Ephemeral() {
			n++
		}
	}
	return n
}

func (s *scene) CountEphemeral() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, obj := range s.registry {
		if obj.Ephemeral() {
			n++
		}
	}
	return n
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

// addLocked registers obj. Caller must hold the write lock.
func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) RemoveObject(obj game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.registry[obj.ID()]; ok && existing == obj {
		delete(s.registry, obj.ID())
	}
}

func (s *scene) Contains(obj game_object.GameObject) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	existing, ok := s.registry[obj.ID()]
	return ok && existing == obj
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint64, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]game_object.GameObject, len(ids))
	for i, id := range ids {
		out[i] = s.registry[id]
	}
	return out
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.registry)
	s.lights = nil
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.lights, l) {
		return
	}
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.lights, l); i >= 0 {
		s.lights = slices.Delete(s.lights, i, i+1)
	}
}

func (s *scene) HasLight(l light.Light) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.lights, l)
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.lights)
	for _, root := range s.registry {
		root.Walk(func(obj game_object.GameObject) bool {
			if l := obj.Light(); l != nil {
				out = append(out, l)
			}
			return true
		})
	}
	return out
}

func (s *scene) SyncLights() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, root := range s.registry {
		root.Walk(func(obj game_object.GameObject) bool {
			if l := obj.Light(); l != nil {
				p := obj.WorldPosition()
				l.SetPosition(p[0], p[1], p[2])
			}
			return true
		})
	}
}

func (s *scene) AmbientColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColor
}

func (s *scene) SetAmbientColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColor = color
}

func (s *scene) Schedule(delay time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTask(s)
	if s.disposed {
		t.finish(false)
		return t
	}
	s.tasks[t.id] = t
	t.timer = time.AfterFunc(delay, func() {
		s.dispatch(t, fn)
	})
	return t
}

// dispatch hands a fired task to the worker pool. A task cancelled between its
// timer firing and this call is dropped.
func (s *scene) dispatch(t *task, fn func()) {
	s.mu.Lock()
	if _, ok := s.tasks[t.id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.tasks, t.id)
	s.mu.Unlock()

	s.taskPool.SubmitTask(worker.Task{
		ID: int(s.taskSeq.Add(1)),
		Do: func() (any, error) {
			ran := false
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Scene %s] scheduled task %s panicked: %v", s.Name(), t.id, r)
				}
				t.finish(ran)
			}()
			if s.Disposed() {
				return nil, nil
			}
			fn()
			ran = true
			return nil, nil
		},
	})
}

// cancel stops t if it is still pending.
func (s *scene) cancel(t *task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.id]; !ok {
		return false
	}
	delete(s.tasks, t.id)
	t.timer.Stop()
	t.finish(false)
	return true
}

func (s *scene) PendingTasks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *scene) Stats() Stats {
	lights := len(s.Lights())
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Lights: lights, PendingTasks: len(s.tasks)}
	for _, obj := range s.registry {
		if obj.Ephemeral() {
			st.Ephemeral++
		} else {
			st.Objects++
		}
	}
	return st
}

func (s *scene) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	for id, t := range s.tasks {
		t.timer.Stop()
		t.finish(false)
		delete(s.tasks, id)
	}
	clear(s.registry)
	s.lights = nil
	s.active = false
}

func (s *scene) Disposed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disposed
}
