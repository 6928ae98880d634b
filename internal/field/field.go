// internal/field/field.go
package field

import (
	"image/color"
	"io"
	"log"
	"math"

	"github.com/pkg/errors"

	"gravity-stars/internal/appearance"
	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/frame"
	"gravity-stars/internal/pointer"
	"gravity-stars/internal/utils"
	"gravity-stars/pkg/render"
)

var (
	ErrMounted     = errors.New("field: already mounted")
	ErrNoContainer = errors.New("field: nil container")
	ErrNoScheduler = errors.New("field: nil frame scheduler")
)

// Rand is the random source used for seeding.
type Rand interface {
	Float64() float64
}

// Container is the host region the field decorates.
type Container interface {
	// Bounds is the measured box in logical pixels, relative to the host
	// window.
	Bounds() (x, y, width, height float64)
	DevicePixelRatio() float64
	// TextColor is the computed inherited text colour, e.g. "rgb(1, 2, 3)".
	TextColor() string
}

// Viewport is the simulated area and the scale of the backing surface.
type Viewport struct {
	Width, Height float64
	DPR           float64
}

func (v Viewport) Empty() bool {
	return !(v.Width > 0 && v.Height > 0)
}

// SurfaceSize is the backing store size in device pixels.
func (v Viewport) SurfaceSize() (int, int) {
	w := int(math.Floor(v.Width * v.DPR))
	h := int(math.Floor(v.Height * v.DPR))
	return max(1, w), max(1, h)
}

// CompositeScale stretches the backing store onto a host that lays out at
// hostDPR device pixels per logical pixel. It differs from 1 when the
// host's ratio was clamped.
func (v Viewport) CompositeScale(hostDPR float64) float64 {
	if !(v.DPR > 0) || !(hostDPR > 0) || math.IsInf(hostDPR, 0) {
		return 1
	}
	return hostDPR / v.DPR
}

var observed = []event.EventType{event.Resized, event.AppearanceChanged, event.PointerMoved}

// Field is the gravity stars background: a fixed population of particles
// drifting on a torus, pulled or pushed by the pointer, painted once per
// frame. A Field serves one mount at a time.
type Field struct {
	Logger *log.Logger

	opts config.Field
	rng  Rand

	particles []Particle
	seeded    bool
	viewport  Viewport
	color     color.NRGBA

	pointer *pointer.Cell
	origin  *pointer.Cell // container offset, read by SetPointer

	container Container
	surface   render.Surface
	bus       *event.Dispatcher
	frames    frame.Scheduler
	handle    frame.Handle
	mounted   bool
}

// New creates an unmounted field. A nil rng seeds from the clock.
func New(opts config.Field, rng Rand) *Field {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	f := &Field{
		Logger:  log.Default(),
		opts:    opts,
		rng:     rng,
		color:   appearance.Fallback,
		pointer: pointer.NewCell(),
		origin:  &pointer.Cell{},
	}
	f.origin.Store(0, 0)
	return f
}

// Quiet silences lifecycle logging.
func (f *Field) Quiet() *Field {
	f.Logger = log.New(io.Discard, "", 0)
	return f
}

// Mount attaches the field to a container and starts the frame loop. The
// surface may be nil, in which case frames are skipped until one exists.
// The bus may be nil when the host never resizes or restyles.
func (f *Field) Mount(c Container, s render.Surface, bus *event.Dispatcher, frames frame.Scheduler) error {
	if c == nil {
		return ErrNoContainer
	}
	if frames == nil {
		return ErrNoScheduler
	}
	if f.mounted {
		return ErrMounted
	}
	if err := f.opts.Validate(); err != nil {
		return errors.Wrap(err, "field: mount")
	}

	f.container = c
	f.surface = s
	f.bus = bus
	f.frames = frames
	f.mounted = true
	f.pointer.Reset()

	f.sampleColor()
	if bus != nil {
		for _, t := range observed {
			bus.Subscribe(t, f)
		}
	}
	f.measure()
	f.handle = frames.Request(f.frame)

	f.logf("field: mounted, %d stars, %s", f.opts.Count, f.opts.PointerMode)
	return nil
}

// Unmount stops the loop, drops observers and releases the surface.
func (f *Field) Unmount() {
	if !f.mounted {
		return
	}
	f.mounted = false
	f.frames.Cancel(f.handle)
	f.handle = 0
	if f.bus != nil {
		for _, t := range observed {
			f.bus.Unsubscribe(t, f)
		}
	}
	if f.surface != nil {
		f.surface.Release()
	}

	f.particles = nil
	f.seeded = false
	f.viewport = Viewport{}
	f.pointer.Reset()
	f.origin.Store(0, 0)
	f.container, f.surface, f.bus, f.frames = nil, nil, nil, nil
	f.logf("field: unmounted")
}

// OnEvent implements event.Listener.
func (f *Field) OnEvent(e event.Event) {
	switch e.Type {
	case event.Resized:
		f.measure()
	case event.AppearanceChanged:
		f.sampleColor()
	case event.PointerMoved:
		if p, ok := e.Data.(event.PointerData); ok {
			f.SetPointer(p.X, p.Y)
		}
	}
}

// Resize sets a new viewport size in logical pixels at the container's
// current pixel ratio. Particles are seeded on the first nonzero size and
// never reseeded.
func (f *Field) Resize(width, height float64) {
	if !f.mounted {
		return
	}
	f.resize(width, height, clampDPR(f.container.DevicePixelRatio()))
}

// SetPointer records a pointer sample in host window coordinates. Safe to
// call from an input goroutine.
func (f *Field) SetPointer(hostX, hostY float64) {
	ox, oy := f.origin.Load()
	f.pointer.Store(hostX-ox, hostY-oy)
}

// ClearPointer moves the pointer out of reach, e.g. when it leaves the
// window.
func (f *Field) ClearPointer() {
	f.pointer.Reset()
}

func (f *Field) SetPointerMode(m config.PointerMode) { f.opts.PointerMode = m }
func (f *Field) SetInteractive(on bool)              { f.opts.Interactive = on }

func (f *Field) Options() config.Field { return f.opts }
func (f *Field) Mounted() bool         { return f.mounted }
func (f *Field) Seeded() bool          { return f.seeded }
func (f *Field) Viewport() Viewport    { return f.viewport }
func (f *Field) Color() color.NRGBA    { return f.color }

// Particles returns a copy of the current population.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// frame is the scheduled callback: one tick, then reschedule while mounted.
func (f *Field) frame() {
	if !f.mounted {
		return
	}
	f.Tick()
	if f.mounted {
		f.handle = f.frames.Request(f.frame)
	}
}

// Tick advances the simulation one step and paints it. It does nothing
// while unmounted, while the viewport is empty or without a surface.
func (f *Field) Tick() {
	if !f.mounted || f.viewport.Empty() || f.surface == nil {
		return
	}
	f.step()
	f.draw(f.surface)
}

func (f *Field) measure() {
	x, y, w, h := f.container.Bounds()
	f.origin.Store(x, y)
	f.resize(w, h, clampDPR(f.container.DevicePixelRatio()))
}

func (f *Field) resize(w, h, dpr float64) {
	f.viewport = Viewport{Width: w, Height: h, DPR: dpr}
	if f.viewport.Empty() {
		f.viewport.Width, f.viewport.Height = 0, 0
		if !f.seeded {
			f.logf("field: container has no size, waiting for layout")
		}
		return
	}
	if f.surface != nil {
		f.surface.Resize(f.viewport.SurfaceSize())
	}
	if !f.seeded {
		f.seed(w, h)
	}
}

func (f *Field) seed(w, h float64) {
	o := f.opts
	f.particles = make([]Particle, o.Count)
	for i := range f.particles {
		angle := f.rng.Float64() * math.Pi * 2
		speed := o.DriftSpeed * utils.Lerp(config.MinSpeedFactor, config.MaxSpeedFactor, f.rng.Float64())
		f.particles[i] = Particle{
			X:           f.rng.Float64() * w,
			Y:           f.rng.Float64() * h,
			VX:          math.Cos(angle) * speed,
			VY:          math.Sin(angle) * speed,
			Radius:      f.rng.Float64()*o.ParticleSize + config.RadiusFloor,
			BaseOpacity: o.BaseOpacity,
			Glow:        1,
		}
	}
	f.seeded = true
	f.logf("field: seeded %d stars in %.0fx%.0f", o.Count, w, h)
}

func (f *Field) sampleColor() {
	f.color = appearance.Sample(f.container.TextColor())
}

func (f *Field) logf(format string, args ...interface{}) {
	if f.Logger != nil {
		f.Logger.Printf(format, args...)
	}
}

// clampDPR limits the pixel ratio to [1, 2]; unusable readings count as 1.
func clampDPR(dpr float64) float64 {
	if math.IsNaN(dpr) || math.IsInf(dpr, 0) || dpr <= 0 {
		return config.MinDeviceScale
	}
	return utils.Clamp(dpr, config.MinDeviceScale, config.MaxDeviceScale)
}
