package spindle

// Button is an edge-tracking digital input. IsDown is the primitive; the
// other queries derive from it and the state recorded by the last Update.
//
// Pressed and Released are mutually exclusive. Both are false unless the
// held state changed since the previous Update.
type Button interface {
	// IsDown reports whether the button is held this tick.
	IsDown() bool
	// IsUp reports whether the button is not held this tick.
	IsUp() bool
	// Pressed reports a transition from up to down since the last Update.
	Pressed() bool
	// Released reports a transition from down to up since the last Update.
	Released() bool
	// Update records the current held state as the previous state. Call it
	// exactly once per tick.
	Update(dt float64)
}

// edge holds the held state recorded by the last Update. Every Button
// variant embeds one.
type edge struct {
	wasDown bool
}

func (e *edge) pressed(down bool) bool  { return down && !e.wasDown }
func (e *edge) released(down bool) bool { return !down && e.wasDown }

// --- Composite buttons ---

// AndButton is down while both of its children are down.
//
// Composites are not stepped by the Keyboard. Their Pressed and Released
// are only meaningful if the caller invokes Update once per tick (directly
// or through Keyboard.Watch).
type AndButton struct {
	edge
	a, b Button
}

// And returns a button that is down while both a and b are down.
func And(a, b Button) *AndButton {
	return &AndButton{a: a, b: b}
}

func (c *AndButton) IsDown() bool      { return c.a.IsDown() && c.b.IsDown() }
func (c *AndButton) IsUp() bool        { return !c.IsDown() }
func (c *AndButton) Pressed() bool     { return c.pressed(c.IsDown()) }
func (c *AndButton) Released() bool    { return c.released(c.IsDown()) }
func (c *AndButton) Update(dt float64) { c.wasDown = c.IsDown() }

// OrButton is down while either of its children is down.
type OrButton struct {
	edge
	a, b Button
}

// Or returns a button that is down while a or b is down.
func Or(a, b Button) *OrButton {
	return &OrButton{a: a, b: b}
}

func (c *OrButton) IsDown() bool      { return c.a.IsDown() || c.b.IsDown() }
func (c *OrButton) IsUp() bool        { return !c.IsDown() }
func (c *OrButton) Pressed() bool     { return c.pressed(c.IsDown()) }
func (c *OrButton) Released() bool    { return c.released(c.IsDown()) }
func (c *OrButton) Update(dt float64) { c.wasDown = c.IsDown() }

// NotButton is down while its child is up.
type NotButton struct {
	edge
	a Button
}

// Not returns a button that is down while a is up.
func Not(a Button) *NotButton {
	return &NotButton{a: a}
}

func (c *NotButton) IsDown() bool      { return !c.a.IsDown() }
func (c *NotButton) IsUp() bool        { return !c.IsDown() }
func (c *NotButton) Pressed() bool     { return c.pressed(c.IsDown()) }
func (c *NotButton) Released() bool    { return c.released(c.IsDown()) }
func (c *NotButton) Update(dt float64) { c.wasDown = c.IsDown() }
