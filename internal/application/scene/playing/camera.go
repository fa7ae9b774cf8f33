package playing

import "github.com/younwookim/locomotion/internal/domain/entity"

// Camera is the possessing view: a control rotation the boom camera follows
// without lag.
type Camera struct {
	control entity.Rotator
}

// NewCamera creates a camera looking along yaw
func NewCamera(yaw float64) *Camera {
	return &Camera{control: entity.Rotator{Yaw: yaw}}
}

// CameraRotation implements system.ViewController
func (c *Camera) CameraRotation() entity.Rotator {
	return c.control
}

// ControlRotation implements system.ViewController
func (c *Camera) ControlRotation() entity.Rotator {
	return c.control
}

// SetControlRotation implements system.ViewController
func (c *Camera) SetControlRotation(rot entity.Rotator) {
	c.control = rot
}
