// Package ecs provides ECS adapters for spindle's scene-stack events.
//
// The primary adapter is [NewDonburiSink], which publishes kernel push, pop
// and swap transitions into a [Donburi] world as typed events. Subscribe to
// [StackEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	kernel.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
