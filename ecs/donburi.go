package ecs

import (
	"github.com/phanxgames/spindle"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StackEventType is the Donburi event type for spindle stack events.
var StackEventType = events.NewEventType[spindle.StackEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on StackEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) spindle.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event spindle.StackEvent) {
	StackEventType.Publish(s.world, event)
}
