// Package animation moves an object along a sampled path at a fixed rate.
package animation

import (
	"errors"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrEmptyPath is returned when a driver is created without path points.
	ErrEmptyPath = errors.New("animation: path has no points")
	// ErrInvalidFPS is returned for a non-positive target frame rate.
	ErrInvalidFPS = errors.New("animation: target fps must be positive")
)

// DefaultHeadingOffset rotates the atan2 heading by -90° because the models
// face +Y at rest instead of +X.
const DefaultHeadingOffset = -math32.Pi / 2

// Frame is the pose the driver reports for one rendered frame.
type Frame struct {
	Position mgl32.Vec3 // point at the index held when the frame started
	Heading  float32    // radians around Z
	Index    int        // index after this update
	Advanced bool       // true if the index moved during this update
}

// Driver steps through path points at most once per 1/fps seconds.
// Speed along the path therefore depends on point density, not on path
// length or wall-clock frame time.
type Driver struct {
	points   []mgl32.Vec3
	interval time.Duration
	offset   float32

	index       int
	lastAdvance time.Time
	heading     float32
}

// Option configures a Driver.
type Option func(*Driver)

// WithHeadingOffset replaces DefaultHeadingOffset.
func WithHeadingOffset(radians float32) Option {
	return func(d *Driver) {
		d.offset = radians
	}
}

// New creates a driver over points. The slice is not copied and must not be
// modified while the driver is in use.
func New(points []mgl32.Vec3, fps float64, opts ...Option) (*Driver, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}
	if fps <= 0 {
		return nil, ErrInvalidFPS
	}

	d := &Driver{
		points:   points,
		interval: time.Duration(float64(time.Second) / fps),
		offset:   DefaultHeadingOffset,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.heading = d.offset
	return d, nil
}

// Update advances the driver if at least one interval has passed since the
// last advance. The returned position is the point held before advancing.
func (d *Driver) Update(now time.Time) Frame {
	prev := d.points[d.index]
	f := Frame{Position: prev}

	if d.lastAdvance.IsZero() || now.Sub(d.lastAdvance) >= d.interval {
		d.index = (d.index + 1) % len(d.points)
		d.lastAdvance = now
		f.Advanced = true

		// Coincident points (a closed loop's seam) keep the last heading.
		dir := d.points[d.index].Sub(prev)
		if dir.Len() > 0 {
			dir = dir.Normalize()
			d.heading = math32.Atan2(dir.Y(), dir.X()) + d.offset
		}
	}

	f.Heading = d.heading
	f.Index = d.index
	return f
}

// Index returns the current path index.
func (d *Driver) Index() int {
	return d.index
}

// Heading returns the last computed heading in radians.
func (d *Driver) Heading() float32 {
	return d.heading
}

// Len returns the number of path points.
func (d *Driver) Len() int {
	return len(d.points)
}

// Interval returns the minimum time between two advances.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Reset rewinds the driver to the first point.
func (d *Driver) Reset() {
	d.index = 0
	d.lastAdvance = time.Time{}
	d.heading = d.offset
}
