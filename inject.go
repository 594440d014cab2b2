package spindle

// syntheticKeyEvent is a single injected key-down or key-up notification.
type syntheticKeyEvent struct {
	name string
	down bool
}

// InjectKeyDown queues a key-down notification for name. Queued events are
// applied one per tick, before the keyboard's sync barrier, exactly as if the
// platform had delivered them between ticks.
func (k *Kernel) InjectKeyDown(name string) {
	k.injectQueue = append(k.injectQueue, syntheticKeyEvent{name: name, down: true})
}

// InjectKeyUp queues a key-up notification for name.
func (k *Kernel) InjectKeyUp(name string) {
	k.injectQueue = append(k.injectQueue, syntheticKeyEvent{name: name})
}

// InjectTap queues a key-down followed by a key-up. Consumes two ticks, so
// the key is seen pressed on one tick and released on the next.
func (k *Kernel) InjectTap(name string) {
	k.InjectKeyDown(name)
	k.InjectKeyUp(name)
}

// Pending returns the number of injected events not yet applied.
func (k *Kernel) Pending() int {
	return len(k.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it to
// the keyboard's raw state. Returns true if an event was applied.
func (k *Kernel) processInjectedInput() bool {
	if len(k.injectQueue) == 0 {
		return false
	}
	evt := k.injectQueue[0]
	copy(k.injectQueue, k.injectQueue[1:])
	k.injectQueue = k.injectQueue[:len(k.injectQueue)-1]

	if evt.down {
		k.keyboard.KeyDown(evt.name)
	} else {
		k.keyboard.KeyUp(evt.name)
	}
	return true
}
