package spindle

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts the color to a premultiplied color.RGBA for image.Fill.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Scene is a swappable unit of game logic and rendering. Only the scene on
// top of the kernel's stack receives calls; scenes below it are suspended.
type Scene interface {
	// Update advances the scene by dt seconds.
	Update(dt float64)
	// Render draws the scene onto surface. The surface has already been
	// cleared for this tick.
	Render(dt float64, surface Surface)
}

// Surface is the rendering target handed to Scene.Render. The kernel only
// ever clears it; drawing is up to the scene, which may type-assert to the
// platform's concrete type (*ebiten.Image on the Ebitengine platform).
type Surface interface {
	Clear()
}

// Focuser is implemented by surfaces that can take input focus.
type Focuser interface {
	Focus()
}

// Closer is implemented by platforms that can shut down their host loop.
type Closer interface {
	Close()
}

// FrameSource delivers one absolute timestamp (seconds) per request. The
// callback must be requested again after each delivery to keep receiving
// frames.
type FrameSource interface {
	RequestFrame(fn func(timestamp float64))
}

// KeySource delivers named key-down and key-up notifications.
type KeySource interface {
	SubscribeKeys(down, up func(name string))
}

// Platform bundles everything the kernel consumes from its host.
type Platform interface {
	FrameSource
	KeySource
	Surface() Surface
}

// StackEventType identifies a scene-stack transition.
type StackEventType uint8

const (
	EventPush StackEventType = iota // a scene became active on top of the stack
	EventPop                        // the top scene was discarded
	EventSwap                       // the top scene was replaced in one step
)

// String returns the lower-case event name.
func (t StackEventType) String() string {
	switch t {
	case EventPush:
		return "push"
	case EventPop:
		return "pop"
	case EventSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// StackEvent describes one scene-stack transition.
type StackEvent struct {
	Type StackEventType
	// Scene is the scene that became active (push, swap) or was discarded (pop).
	Scene Scene
	// Depth is the stack depth after the transition.
	Depth int
}

// EventSink is the interface for optional stack-event consumers such as the
// donburi bridge in spindle/ecs.
type EventSink interface {
	EmitEvent(event StackEvent)
}
