package spindle

import (
	"fmt"
	"log/slog"
	"time"
)

// Kernel is the composition root: it owns the scheduler, the keyboard, the
// scene stack and the input registry. Create one per process with NewKernel
// and hand it to the scenes that need it.
//
// All methods must be called from the platform's control thread, either
// inside a tick or before Exec.
type Kernel struct {
	platform  Platform
	surface   Surface
	scheduler *Scheduler
	keyboard  *Keyboard
	stack     []Scene
	inputs    map[string]Button
	sink      EventSink

	// Composites watched on behalf of BindExpr, by input ID.
	stepComposites bool
	watched        map[string]Button

	injectQueue []syntheticKeyEvent
	script      *ScriptRunner

	debug  bool
	logger *slog.Logger
}

// NewKernel creates a kernel on platform, subscribes its keyboard to the
// platform's key events and applies cfg.Bindings.
func NewKernel(cfg Config, platform Platform) (*Kernel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	k := &Kernel{
		platform: platform,
		surface:  platform.Surface(),
		keyboard: NewKeyboard(platform),
		inputs:   make(map[string]Button),
		logger:   discardLogger,

		stepComposites: cfg.StepComposites,
		watched:        make(map[string]Button),
	}
	k.scheduler = NewScheduler(platform, cfg.TargetFPS, k.Tick)
	k.SetDebugMode(cfg.Debug)

	for _, id := range sortedKeys(cfg.Bindings) {
		if _, err := k.BindExpr(id, cfg.Bindings[id]); err != nil {
			return nil, fmt.Errorf("input %q: %w", id, err)
		}
	}
	return k, nil
}

// Keyboard returns the kernel's keyboard device.
func (k *Kernel) Keyboard() *Keyboard { return k.keyboard }

// Scheduler returns the kernel's frame scheduler.
func (k *Kernel) Scheduler() *Scheduler { return k.scheduler }

// Surface returns the rendering surface cleared each tick.
func (k *Kernel) Surface() Surface { return k.surface }

// SetEventSink sets the optional stack-event consumer.
func (k *Kernel) SetEventSink(sink EventSink) { k.sink = sink }

// --- Scene stack ---

// Push suspends the current top scene (if any) and makes scene active.
func (k *Kernel) Push(scene Scene) {
	k.stack = append(k.stack, scene)
	k.debugCheckDepth()
	k.emit(EventPush, scene)
}

// Pop discards the top scene and resumes the one below it, untouched.
// It returns the discarded scene, or nil when the stack is empty.
func (k *Kernel) Pop() Scene {
	top := k.pop()
	if top != nil {
		k.emit(EventPop, top)
	}
	return top
}

// Swap replaces the top scene with scene in a single step; no tick can
// observe the stack without a top in between. On an empty stack Swap
// behaves like Push.
func (k *Kernel) Swap(scene Scene) {
	if len(k.stack) > 0 {
		k.pop()
	}
	k.stack = append(k.stack, scene)
	k.emit(EventSwap, scene)
}

func (k *Kernel) pop() Scene {
	n := len(k.stack)
	if n == 0 {
		if k.debug {
			k.logger.Warn("pop on empty scene stack")
		}
		return nil
	}
	top := k.stack[n-1]
	k.stack[n-1] = nil
	k.stack = k.stack[:n-1]
	return top
}

// Top returns the active scene, or nil when the stack is empty.
func (k *Kernel) Top() Scene {
	if len(k.stack) == 0 {
		return nil
	}
	return k.stack[len(k.stack)-1]
}

// Depth returns the number of scenes on the stack.
func (k *Kernel) Depth() int { return len(k.stack) }

func (k *Kernel) emit(t StackEventType, scene Scene) {
	if k.sink == nil {
		return
	}
	k.sink.EmitEvent(StackEvent{Type: t, Scene: scene, Depth: len(k.stack)})
}

// --- Loop ---

// Exec pushes scene, focuses the surface and starts the scheduler. Calling
// Exec again pushes another scene; the scheduler keeps its single chain.
func (k *Kernel) Exec(scene Scene) {
	k.Push(scene)
	if f, ok := k.surface.(Focuser); ok {
		f.Focus()
	}
	k.scheduler.Start()
}

// Stop halts the scheduler. The stack and registry are kept.
func (k *Kernel) Stop() {
	k.scheduler.Stop()
}

// Exit stops the scheduler and asks the platform to shut down if it can.
func (k *Kernel) Exit() {
	k.scheduler.Stop()
	if c, ok := k.platform.(Closer); ok {
		c.Close()
	}
}

// Tick runs one frame: poll input, update the active scene, clear the
// surface, render the active scene. It is the scheduler's callback and may
// be called directly to step the kernel by hand.
func (k *Kernel) Tick(dt float64) {
	var stats tickStats
	var t0 time.Time
	if k.debug {
		t0 = time.Now()
	}

	if k.script != nil {
		k.script.step(k)
	}
	k.processInjectedInput()
	k.keyboard.Update(dt)

	if k.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	if top := k.Top(); top != nil {
		top.Update(dt)
	}

	if k.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	k.surface.Clear()
	// Re-read the top: update may have pushed, popped or swapped.
	if top := k.Top(); top != nil {
		top.Render(dt, k.surface)
	}

	if k.debug {
		stats.renderTime = time.Since(t0)
		stats.depth = len(k.stack)
		k.debugLog(stats)
	}
}
