package debugkit

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

type GizmoType int

const (
	GizmoLine GizmoType = iota
	GizmoCube
	GizmoSphere
	GizmoRect   // Wireframe rectangle
	GizmoCircle // Wireframe circle
	GizmoPoint  // Screen-space point marker
)

// GizmoComponent allows an entity to be visualized as a 3D gizmo.
// Gizmos are rendered as wireframes by whatever renderer the host wires up;
// this toolkit only produces and refreshes the data.
type GizmoComponent struct {
	Type  GizmoType
	Color [4]float32

	// For Cube, Sphere, Rect, Circle, Point: Position is the center.
	// For Line: Position is the start.
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3 // Default {1,1,1}

	// Specifics
	LineEnd   mgl32.Vec3 // For GizmoLine, world-space end point
	Radius    float32    // For Sphere/Circle
	PointSize float32    // For GizmoPoint, in pixels
}

// DebugOwned tags gizmo entities spawned by a visualizer so dumps and
// snapshots can skip them and the visualizer systems can reclaim them.
type DebugOwned struct {
	Owner EntityId
	Kind  string
}

func NewGizmoLine(start, end mgl32.Vec3, color [4]float32) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoLine,
		Position: start,
		LineEnd:  end,
		Color:    color,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoCube(center mgl32.Vec3, size mgl32.Vec3, color [4]float32) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoCube,
		Position: center,
		Scale:    size,
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoSphere(center mgl32.Vec3, radius float32, color [4]float32) GizmoComponent {
	return GizmoComponent{
		Type:     GizmoSphere,
		Position: center,
		Radius:   radius,
		Scale:    mgl32.Vec3{1, 1, 1},
		Color:    color,
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoPoint(center mgl32.Vec3, size float32, color [4]float32) GizmoComponent {
	return GizmoComponent{
		Type:      GizmoPoint,
		Position:  center,
		PointSize: size,
		Scale:     mgl32.Vec3{1, 1, 1},
		Color:     color,
		Rotation:  mgl32.QuatIdent(),
	}
}

// ColorOf converts an 8-bit color to the normalized RGBA gizmos carry.
func ColorOf(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}

// Default debug palette, named after the SVG colors they come from.
var (
	ColorRed    = ColorOf(colornames.Red)
	ColorGreen  = ColorOf(colornames.Green)
	ColorBlue   = ColorOf(colornames.Blue)
	ColorYellow = ColorOf(colornames.Yellow)
	ColorWhite  = ColorOf(colornames.White)
	ColorOrange = ColorOf(colornames.Orange)
	ColorCyan   = ColorOf(colornames.Cyan)
)
