package spindle

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameQueue holds pending frame requests and delivers them one batch per
// host frame. Requests made during delivery wait for the next batch.
type frameQueue struct {
	pending []func(float64)
	spare   []func(float64)
}

func (q *frameQueue) request(fn func(float64)) {
	q.pending = append(q.pending, fn)
}

func (q *frameQueue) deliver(ts float64) {
	batch := q.pending
	q.pending = q.spare[:0]
	for i, fn := range batch {
		fn(ts)
		batch[i] = nil
	}
	q.spare = batch[:0]
}

// EbitenPlatform runs a Kernel inside Ebitengine. It implements Platform,
// Closer and ebiten.Game: every Ebitengine Update forwards key transitions
// and then one frame notification; the kernel renders into an offscreen
// canvas that Draw presents.
type EbitenPlatform struct {
	cfg    WindowConfig
	canvas *ebiten.Image
	frames frameQueue
	start  time.Time

	keyDown, keyUp func(string)
	keyBuf         []ebiten.Key

	closed bool
}

// NewEbitenPlatform creates a platform with a canvas of the configured size.
func NewEbitenPlatform(cfg WindowConfig) *EbitenPlatform {
	if cfg.Width <= 0 {
		cfg.Width = defaultWindowWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultWindowHeight
	}
	return &EbitenPlatform{
		cfg:    cfg,
		canvas: ebiten.NewImage(cfg.Width, cfg.Height),
		start:  time.Now(),
	}
}

// RequestFrame implements FrameSource.
func (p *EbitenPlatform) RequestFrame(fn func(timestamp float64)) {
	p.frames.request(fn)
}

// SubscribeKeys implements KeySource. Key names are ebiten.Key names, such
// as "A", "Space", "ArrowLeft" or "ShiftLeft".
func (p *EbitenPlatform) SubscribeKeys(down, up func(name string)) {
	p.keyDown = down
	p.keyUp = up
}

// Surface returns the offscreen canvas the kernel clears and scenes draw on.
func (p *EbitenPlatform) Surface() Surface {
	return p.canvas
}

// Close makes the next Update return ebiten.Termination.
func (p *EbitenPlatform) Close() {
	p.closed = true
}

// Update implements ebiten.Game.
func (p *EbitenPlatform) Update() error {
	if p.closed {
		return ebiten.Termination
	}
	p.pollKeys()
	p.frames.deliver(time.Since(p.start).Seconds())
	if p.closed {
		return ebiten.Termination
	}
	return nil
}

func (p *EbitenPlatform) pollKeys() {
	if p.keyDown != nil {
		p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
		for _, key := range p.keyBuf {
			p.keyDown(key.String())
		}
	}
	if p.keyUp != nil {
		p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
		for _, key := range p.keyBuf {
			p.keyUp(key.String())
		}
	}
}

// Draw implements ebiten.Game.
func (p *EbitenPlatform) Draw(screen *ebiten.Image) {
	screen.Fill(p.cfg.ClearColor.RGBA())
	screen.DrawImage(p.canvas, nil)
	if p.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game.
func (p *EbitenPlatform) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.cfg.Width, p.cfg.Height
}

// Run creates a window and an Ebitengine-backed Kernel, calls start to build
// the first scene and runs until the window closes or a scene calls
// Kernel.Exit.
func Run(cfg Config, start func(k *Kernel) Scene) error {
	p := NewEbitenPlatform(cfg.Window)
	k, err := NewKernel(cfg, p)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(p.cfg.Width, p.cfg.Height)
	// One host frame per display refresh; the kernel applies its own cap.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	k.Exec(start(k))
	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
