package spindle

import "fmt"

// fakeFrames records frame requests; fire delivers one batch by hand.
type fakeFrames struct {
	pending []func(float64)
}

func (f *fakeFrames) RequestFrame(fn func(float64)) {
	f.pending = append(f.pending, fn)
}

// fire delivers ts to every pending request, like one host frame.
func (f *fakeFrames) fire(ts float64) {
	batch := f.pending
	f.pending = nil
	for _, fn := range batch {
		fn(ts)
	}
}

// fakeSurface counts clears and records the order of kernel calls in log.
type fakeSurface struct {
	clears  int
	focused bool
	log     *[]string
}

func (s *fakeSurface) Clear() {
	s.clears++
	if s.log != nil {
		*s.log = append(*s.log, "clear")
	}
}

func (s *fakeSurface) Focus() { s.focused = true }

// fakePlatform is a Platform driven entirely by the test.
type fakePlatform struct {
	fakeFrames
	surface  *fakeSurface
	down, up func(string)
	closed   bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{surface: &fakeSurface{}}
}

func (p *fakePlatform) SubscribeKeys(down, up func(string)) {
	p.down = down
	p.up = up
}

func (p *fakePlatform) Surface() Surface { return p.surface }
func (p *fakePlatform) Close()           { p.closed = true }

// recordScene logs its update and render calls.
type recordScene struct {
	name     string
	updates  int
	renders  int
	lastDT   float64
	log      *[]string
	onUpdate func(dt float64)
}

func (s *recordScene) Update(dt float64) {
	s.updates++
	s.lastDT = dt
	if s.log != nil {
		*s.log = append(*s.log, s.name+".update")
	}
	if s.onUpdate != nil {
		s.onUpdate(dt)
	}
}

func (s *recordScene) Render(dt float64, surface Surface) {
	s.renders++
	if s.log != nil {
		*s.log = append(*s.log, s.name+".render")
	}
}

func (s *recordScene) String() string {
	return fmt.Sprintf("%s(u=%d r=%d)", s.name, s.updates, s.renders)
}

func newTestKernel(cfg Config) (*Kernel, *fakePlatform) {
	p := newFakePlatform()
	k, err := NewKernel(cfg, p)
	if err != nil {
		panic(err)
	}
	return k, p
}
