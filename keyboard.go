package spindle

// Keyboard owns the raw key state reported by the platform and every Key
// leaf it has issued. Raw notifications only touch the raw map; Key leaves
// see them at the next Update, which is the single per-tick sync barrier.
type Keyboard struct {
	raw     map[string]bool // held keys; absence means up
	keys    []*Key
	watched []Button
}

// NewKeyboard creates a keyboard and subscribes it to src. A nil src is
// allowed; events can then be fed through KeyDown and KeyUp directly.
func NewKeyboard(src KeySource) *Keyboard {
	kb := &Keyboard{raw: make(map[string]bool)}
	if src != nil {
		src.SubscribeKeys(kb.KeyDown, kb.KeyUp)
	}
	return kb
}

// KeyDown marks name as held in the raw state.
func (kb *Keyboard) KeyDown(name string) {
	kb.raw[name] = true
}

// KeyUp marks name as released in the raw state.
func (kb *Keyboard) KeyUp(name string) {
	delete(kb.raw, name)
}

// Held reports the raw state of name, bypassing the per-tick snapshot.
func (kb *Keyboard) Held(name string) bool {
	return kb.raw[name]
}

// Key issues a new leaf button bound to name and registers it for per-tick
// updates. Repeated calls with the same name return independent buttons that
// read the same raw flag.
func (kb *Keyboard) Key(name string) *Key {
	k := &Key{kb: kb, name: name}
	kb.keys = append(kb.keys, k)
	return k
}

// Keys returns the number of issued Key leaves.
func (kb *Keyboard) Keys() int {
	return len(kb.keys)
}

// Watch registers b to be stepped at every Update, before the Key leaves
// resample. Use it for composite buttons whose Pressed and Released must
// work; the keyboard never steps composites on its own.
func (kb *Keyboard) Watch(b Button) {
	kb.watched = append(kb.watched, b)
}

// Unwatch removes the first registration of b made with Watch. Buttons are
// compared by identity, so b must be of a comparable type such as a pointer.
func (kb *Keyboard) Unwatch(b Button) {
	for i, w := range kb.watched {
		if w == b {
			kb.watched = append(kb.watched[:i], kb.watched[i+1:]...)
			return
		}
	}
}

// Update steps watched buttons and then every issued Key. Called once per
// tick by the Kernel.
func (kb *Keyboard) Update(dt float64) {
	// Watched composites record their result over last tick's snapshots.
	for _, b := range kb.watched {
		b.Update(dt)
	}
	for _, k := range kb.keys {
		k.Update(dt)
	}
}

// Key is a leaf Button bound to one named key on a Keyboard. IsDown reads a
// snapshot taken at the last Update, never the raw map.
type Key struct {
	edge
	kb    *Keyboard
	name  string
	state bool
}

// Name returns the key name this button is bound to.
func (k *Key) Name() string { return k.name }

func (k *Key) IsDown() bool   { return k.state }
func (k *Key) IsUp() bool     { return !k.state }
func (k *Key) Pressed() bool  { return k.pressed(k.state) }
func (k *Key) Released() bool { return k.released(k.state) }

// Update records the previous snapshot and resamples the raw state.
func (k *Key) Update(dt float64) {
	k.wasDown = k.state
	k.state = k.kb.raw[k.name]
}
