// Package spindle is a minimal real-time loop runtime for [Ebitengine] games:
// a rate-capped frame scheduler, a stack of mutually-exclusive scenes, and a
// composable edge-triggered button model.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, a
// [Kernel] and the game loop for you:
//
//	cfg := spindle.DefaultConfig()
//	cfg.Bindings = map[string]string{"Jump": "or(Space, ArrowUp)"}
//	err := spindle.Run(cfg, func(k *spindle.Kernel) spindle.Scene {
//		return newTitleScene(k)
//	})
//
// # Ticks
//
// Each accepted frame runs one tick: the keyboard snapshots raw key state,
// the scene on top of the stack is updated, the surface is cleared and the
// top scene renders. The [Scheduler] skips notifications that arrive sooner
// than 1/TargetFPS seconds after the last tick; skipped time is carried into
// the next dt. The first notification after Start only records the time.
//
// # Scenes
//
// [Kernel.Push] suspends the active scene under a new one, [Kernel.Pop]
// resumes the scene below with its state untouched, and [Kernel.Swap]
// replaces the top in one step. Transitions are usually made from the active
// scene's own Update.
//
// # Buttons
//
// [Keyboard.Key] issues leaf buttons that read a per-tick snapshot, so a key
// event arriving mid-tick is never half-seen. [And], [Or] and [Not] combine
// buttons; their IsDown is always recomputed. Pressed and Released on a
// composite only work if something steps it each tick: register it with
// [Keyboard.Watch] or set [Config].StepComposites for [Kernel.BindExpr] bindings.
//
// Logical inputs are bound by name on the kernel and can be remapped at
// runtime:
//
//	k.Bind("MoveLeft", spindle.Or(kb.Key("ArrowLeft"), kb.Key("A")))
//	if k.IsDown("MoveLeft") { ... }
//
// [Ebitengine]: https://ebitengine.org
package spindle
