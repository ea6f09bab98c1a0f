package controls

import (
	"math"

	"GopherLook/internal/logger"
	"GopherLook/internal/platform"
	"GopherLook/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Radians of rotation per unit of pointer movement at PointerSpeed 1.
const radiansPerPixel = 0.002

const halfPi = math.Pi / 2

// PointerLockControls turns relative pointer motion into first-person
// camera rotation while its surface holds pointer lock.
type PointerLockControls struct {
	// Vertical look limits measured from straight up, 0 to Pi radians
	MinPolarAngle float32
	MaxPolarAngle float32
	PointerSpeed  float32

	camera  *renderer.Camera
	surface platform.Element
	events  Dispatcher

	isLocked  bool
	connected bool
	disposed  bool

	moveID, changeID, errorID platform.ListenerID
}

// NewPointerLockControls binds camera to surface and starts listening.
func NewPointerLockControls(camera *renderer.Camera, surface platform.Element) *PointerLockControls {
	c := &PointerLockControls{
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		PointerSpeed:  1.0,
		camera:        camera,
		surface:       surface,
	}
	c.Connect()
	return c
}

// AddEventListener subscribes fn to change, lock or unlock notifications.
func (c *PointerLockControls) AddEventListener(event ControlEvent, fn func()) ListenerID {
	return c.events.AddEventListener(event, fn)
}

func (c *PointerLockControls) RemoveEventListener(event ControlEvent, id ListenerID) {
	c.events.RemoveEventListener(event, id)
}

func (c *PointerLockControls) HasEventListener(event ControlEvent, id ListenerID) bool {
	return c.events.HasEventListener(event, id)
}

func (c *PointerLockControls) IsLocked() bool {
	return c.isLocked
}

func (c *PointerLockControls) IsConnected() bool {
	return c.connected
}

func (c *PointerLockControls) onPointerMove(e platform.Event) {
	if !c.isLocked {
		return
	}

	var euler renderer.Euler
	euler.SetFromQuaternion(c.camera.Quaternion)

	scale := radiansPerPixel * c.PointerSpeed
	euler.Y -= float32(e.MovementX) * scale
	euler.X -= float32(e.MovementY) * scale

	euler.X = mgl32.Clamp(euler.X, halfPi-c.MaxPolarAngle, halfPi-c.MinPolarAngle)
	euler.Z = 0

	c.camera.Quaternion = euler.Quaternion()

	c.events.DispatchEvent(EventChange)
}

func (c *PointerLockControls) onPointerLockChange(platform.Event) {
	if c.surface.OwnerDocument().PointerLockElement() == c.surface {
		c.isLocked = true
		c.events.DispatchEvent(EventLock)
		return
	}
	// Some other element changed lock state while we never held it
	if !c.isLocked {
		return
	}
	c.isLocked = false
	c.events.DispatchEvent(EventUnlock)
}

func (c *PointerLockControls) onPointerLockError(platform.Event) {
	logger.Log.Error("Unable to use Pointer Lock API", zap.String("fun", "PointerLockControls"))
}

// Connect attaches the document listeners. Calling it while connected
// does nothing.
func (c *PointerLockControls) Connect() {
	if c.disposed {
		logger.Log.Warn("Connect called on disposed PointerLockControls")
		return
	}
	if c.connected {
		return
	}
	doc := c.surface.OwnerDocument()
	c.moveID = doc.AddEventListener(platform.PointerMove, c.onPointerMove)
	c.changeID = doc.AddEventListener(platform.PointerLockChange, c.onPointerLockChange)
	c.errorID = doc.AddEventListener(platform.PointerLockError, c.onPointerLockError)
	c.connected = true
}

func (c *PointerLockControls) Disconnect() {
	if !c.connected {
		return
	}
	doc := c.surface.OwnerDocument()
	doc.RemoveEventListener(platform.PointerMove, c.moveID)
	doc.RemoveEventListener(platform.PointerLockChange, c.changeID)
	doc.RemoveEventListener(platform.PointerLockError, c.errorID)
	c.connected = false
}

// Dispose disconnects for good.
func (c *PointerLockControls) Dispose() {
	c.Disconnect()
	c.disposed = true
}

// GetObject returns the controlled camera.
func (c *PointerLockControls) GetObject() *renderer.Camera {
	return c.camera
}

// GetDirection stores the camera's world-space viewing direction in v and
// returns it.
func (c *PointerLockControls) GetDirection(v *mgl32.Vec3) *mgl32.Vec3 {
	*v = c.camera.Quaternion.Rotate(mgl32.Vec3{0, 0, -1})
	return v
}

// MoveForward moves parallel to the plane orthogonal to camera.Up, so
// looking down does not make the camera sink.
func (c *PointerLockControls) MoveForward(distance float32) {
	right := c.camera.Matrix().Col(0).Vec3()
	forward := c.camera.Up.Cross(right)
	c.camera.Position = c.camera.Position.Add(forward.Mul(distance))
}

func (c *PointerLockControls) MoveRight(distance float32) {
	right := c.camera.Matrix().Col(0).Vec3()
	c.camera.Position = c.camera.Position.Add(right.Mul(distance))
}

// Lock requests pointer capture for the surface. IsLocked changes once the
// platform reports the new state.
func (c *PointerLockControls) Lock() {
	c.surface.RequestPointerLock()
}

func (c *PointerLockControls) Unlock() {
	c.surface.OwnerDocument().ExitPointerLock()
}
