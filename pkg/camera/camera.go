// Package camera implements a first-person fly camera driven by mouse deltas
// and movement keys.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the camera from flipping over the vertical axis.
const MaxPitch = math.Pi / 2.1

// Movement is the set of movement inputs held during a frame.
type Movement struct {
	Forward, Back, Left, Right bool
	// KeepHeight cancels the vertical part of forward/back motion.
	KeepHeight bool
}

type Camera struct {
	Position mgl32.Vec3
	Up       mgl32.Vec3
	// Yaw and Pitch are in radians.
	Yaw   float32
	Pitch float32
	// Speed is in units per second.
	Speed float32
	// Sensitivity converts cursor pixels to radians.
	Sensitivity float32
}

func New(position mgl32.Vec3, speed, sensitivity float32) *Camera {
	return &Camera{
		Position:    position,
		Up:          mgl32.Vec3{0, 1, 0},
		Speed:       speed,
		Sensitivity: sensitivity,
	}
}

// Look turns the camera by a cursor delta in pixels. Yaw wraps at a full
// turn and pitch is clamped to ±MaxPitch.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Yaw = float32(math.Mod(float64(c.Yaw), 2*math.Pi))
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
}

func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(c.Yaw)
	pitch := float64(c.Pitch)
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(c.Up).Normalize()
}

// Move advances the camera for dt seconds of held movement input.
func (c *Camera) Move(m Movement, dt float32) {
	front := c.Front().Mul(dt * c.Speed)
	if m.KeepHeight {
		front[1] = 0
	}
	right := c.Right().Mul(dt * c.Speed)

	if m.Forward {
		c.Position = c.Position.Add(front)
	}
	if m.Back {
		c.Position = c.Position.Sub(front)
	}
	if m.Left {
		c.Position = c.Position.Sub(right)
	}
	if m.Right {
		c.Position = c.Position.Add(right)
	}
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), c.Up)
}

// Projection is a perspective projection with fovy in radians.
func Projection(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, aspect, near, far)
}
