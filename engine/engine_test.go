package engine

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/crystal-runner/engine/game_object"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/profiler"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAsync(e Engine) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop")
	}
}

func TestRunTicksUntilQuit(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(WithTickRate(200), WithTickCallback(func(dt float32) {
		assert.GreaterOrEqual(t, dt, float32(0))
		ticks.Add(1)
	}))

	done := runAsync(e)
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, e.Running())

	e.Quit()
	e.Quit()
	waitDone(t, done)
	assert.False(t, e.Running())
}

func TestRunDisposesScenesOnExit(t *testing.T) {
	s := scene.NewScene("main", scene.WithActive(true))
	task := s.Schedule(time.Hour, func() {})

	e := NewEngine(WithScene(0, s))
	done := runAsync(e)
	e.Quit()
	waitDone(t, done)

	assert.True(t, s.Disposed())
	assert.False(t, task.Ran())
	assert.Equal(t, 0, s.PendingTasks())
}

func TestRunKeepsScenesWhenConfigured(t *testing.T) {
	s := scene.NewScene("main")
	defer s.Dispose()

	e := NewEngine(WithScene(0, s), WithDisposeOnExit(false))
	done := runAsync(e)
	e.Quit()
	waitDone(t, done)

	assert.False(t, s.Disposed())
}

func TestTickCallbackPanicQuits(t *testing.T) {
	e := NewEngine(WithTickRate(200), WithTickCallback(func(float32) {
		panic("boom")
	}))

	waitDone(t, runAsync(e))
	assert.False(t, e.Running())
}

func TestTickSyncsActiveSceneLights(t *testing.T) {
	l := light.NewPointLight([3]float32{1, 1, 1}, 1, 0.5)
	obj := game_object.NewGameObject(game_object.WithLight(l), game_object.WithPosition(0.5, 0, 0))
	s := scene.NewScene("main", scene.WithActive(true), scene.WithObjects(obj))

	var ticks atomic.Int32
	e := NewEngine(WithScene(0, s), WithTickRate(200), WithDisposeOnExit(false))
	e.SetTickCallback(func(float32) { ticks.Add(1) })

	done := runAsync(e)
	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)
	e.Quit()
	waitDone(t, done)

	assert.Equal(t, [3]float32{0.5, 0, 0}, l.Position())
	s.Dispose()
}

func TestSetTickRate(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, time.Second/60, e.TickRate())

	e.SetTickRate(120)
	assert.Equal(t, time.Second/120, e.TickRate())

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.TickRate())
}

func TestScenesRegistry(t *testing.T) {
	a := scene.NewScene("a")
	b := scene.NewScene("b")
	defer a.Dispose()
	defer b.Dispose()

	e := NewEngine(WithScene(0, a))
	e.AddScene(1, b)

	assert.Same(t, b, e.Scene(1))
	assert.Len(t, e.Scenes(), 2)

	e.RemoveScene(0)
	assert.Nil(t, e.Scene(0))
	assert.Len(t, e.Scenes(), 1)
}

func TestRemoveSceneStopsProfiling(t *testing.T) {
	var lines []string
	p := profiler.NewProfiler(
		profiler.WithInterval(time.Nanosecond),
		profiler.WithLogger(func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		}),
	)
	a := scene.NewScene("a")
	b := scene.NewScene("b")
	c := scene.NewScene("c")
	defer a.Dispose()
	defer b.Dispose()
	defer c.Dispose()

	e := NewEngine(WithProfiler(p), WithScene(0, a), WithScene(1, b))
	require.Same(t, p, e.Profiler())
	e.RemoveScene(0)
	e.AddScene(1, c)

	time.Sleep(time.Millisecond)
	require.True(t, p.Tick())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `Scene "c"`)
}
