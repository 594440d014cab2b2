package spindle

import "testing"

func TestKeyboardSubscribesOnce(t *testing.T) {
	p := newFakePlatform()
	kb := NewKeyboard(p)
	if p.down == nil || p.up == nil {
		t.Fatal("keyboard should subscribe to key events at construction")
	}
	p.down("A")
	if !kb.Held("A") {
		t.Error("raw state should record key down")
	}
	p.up("A")
	if kb.Held("A") {
		t.Error("raw state should record key up")
	}
}

func TestKeyboardNilSource(t *testing.T) {
	kb := NewKeyboard(nil)
	kb.KeyDown("Space")
	if !kb.Held("Space") {
		t.Error("KeyDown should work without a source")
	}
}

func TestKeySnapshotIsPerTick(t *testing.T) {
	kb := NewKeyboard(nil)
	k := kb.Key("A")

	kb.KeyDown("A")
	if k.IsDown() {
		t.Error("Key must not see raw state before Update")
	}

	kb.Update(0)
	if !k.IsDown() || !k.Pressed() {
		t.Error("Key should be down and pressed after Update")
	}

	// A mid-tick release does not tear the snapshot.
	kb.KeyUp("A")
	if !k.IsDown() || !k.Pressed() {
		t.Error("snapshot should hold until the next Update")
	}

	kb.Update(0)
	if k.IsDown() || !k.Released() || k.Pressed() {
		t.Error("Key should be released after the next Update")
	}

	kb.Update(0)
	if k.Released() {
		t.Error("Released should clear when the state is stable")
	}
}

func TestKeyPressedOnce(t *testing.T) {
	kb := NewKeyboard(nil)
	k := kb.Key("Space")
	kb.Update(0)
	kb.KeyDown("Space")

	var presses int
	for i := 0; i < 5; i++ {
		kb.Update(1.0 / 60)
		if k.Pressed() {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("held key reported %d presses, want 1", presses)
	}
}

func TestKeyUnknownIsUp(t *testing.T) {
	kb := NewKeyboard(nil)
	k := kb.Key("NeverPressed")
	kb.Update(0)
	if k.IsDown() || k.Pressed() || k.Released() {
		t.Error("unknown key should read as up with no edges")
	}
}

func TestKeySameNameIndependent(t *testing.T) {
	kb := NewKeyboard(nil)
	k1 := kb.Key("A")
	kb.KeyDown("A")
	kb.Update(0)

	// k2 is issued after the press; both share the raw flag.
	k2 := kb.Key("A")
	if k1 == k2 {
		t.Fatal("Key should return a new instance per call")
	}
	if kb.Keys() != 2 {
		t.Errorf("Keys() = %d, want 2", kb.Keys())
	}

	kb.Update(0)
	if k1.Pressed() {
		t.Error("k1 has been down for two ticks and should not be pressed")
	}
	if !k2.Pressed() {
		t.Error("k2 sees its first down tick and should be pressed")
	}
	if k1.Name() != "A" || k2.Name() != "A" {
		t.Error("both keys should be bound to A")
	}
}

func TestDoubleKeyDownIsIdempotent(t *testing.T) {
	kb := NewKeyboard(nil)
	k := kb.Key("A")
	kb.KeyDown("A")
	kb.KeyDown("A")
	kb.KeyUp("A")
	kb.Update(0)
	if k.IsDown() {
		t.Error("a single key up should clear repeated downs")
	}
}

func TestCompositeNotSteppedByKeyboard(t *testing.T) {
	kb := NewKeyboard(nil)
	jump := Or(kb.Key("Space"), kb.Key("ArrowUp"))

	kb.Update(0)
	kb.KeyDown("Space")
	kb.Update(0)
	if !jump.Pressed() {
		t.Fatal("composite should be pressed on first down tick")
	}

	// Held across a tick, but nothing stepped the composite.
	kb.Update(0)
	if !jump.Pressed() {
		t.Error("unwatched composite is expected to keep reporting Pressed")
	}
}

func TestWatchedCompositeEdges(t *testing.T) {
	kb := NewKeyboard(nil)
	jump := Or(kb.Key("Space"), kb.Key("ArrowUp"))
	kb.Watch(jump)

	type frame struct {
		down, up          string
		pressed, released bool
	}
	frames := []frame{
		{},
		{down: "Space", pressed: true},
		{},
		{down: "ArrowUp"},               // still down via Space
		{up: "Space"},                   // still down via ArrowUp
		{up: "ArrowUp", released: true}, // both up
		{},
	}
	for i, f := range frames {
		if f.down != "" {
			kb.KeyDown(f.down)
		}
		if f.up != "" {
			kb.KeyUp(f.up)
		}
		kb.Update(1.0 / 60)
		if jump.Pressed() != f.pressed {
			t.Errorf("frame %d: Pressed = %v, want %v", i, jump.Pressed(), f.pressed)
		}
		if jump.Released() != f.released {
			t.Errorf("frame %d: Released = %v, want %v", i, jump.Released(), f.released)
		}
	}
}

func TestUnwatch(t *testing.T) {
	kb := NewKeyboard(nil)
	a := Or(kb.Key("A"), kb.Key("B"))
	b := Not(kb.Key("C"))
	kb.Watch(a)
	kb.Watch(b)

	kb.Unwatch(a)
	if len(kb.watched) != 1 || kb.watched[0] != b {
		t.Fatalf("watched = %v, want only b", kb.watched)
	}
	kb.Unwatch(a)
	if len(kb.watched) != 1 {
		t.Error("unwatching an unknown button should be a no-op")
	}
}
