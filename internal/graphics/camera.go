package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a target point at a fixed distance; the preview tools
// use it to inspect an extracted surface from all sides.
type OrbitCamera struct {
	Target      mgl32.Vec3
	Distance    float32
	Yaw, Pitch  float32 // radians
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(target mgl32.Vec3, distance float32, width, height int) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Pitch:       0.5,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	eye := c.Target.Add(mgl32.Vec3{
		c.Distance * float32(math.Cos(float64(c.Pitch))*math.Sin(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * float32(math.Cos(float64(c.Pitch))*math.Cos(float64(c.Yaw))),
	})
	return mgl32.LookAtV(eye, c.Target, mgl32.Vec3{0, 1, 0})
}
