package debugkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AxesVisualizer attaches a coordinate-axes gizmo to an entity: three line
// gizmos along the owner's world +X/+Y/+Z, red/green/blue by default.
// The gizmo sub-entities are spawned lazily on the first enabled update and
// despawned when the visualizer is disabled or its owner goes away.
type AxesVisualizer struct {
	Enabled    bool
	AxisLength float32    // default 1
	ColorX     [4]float32 // zero alpha selects the defaults: red, green, blue
	ColorY     [4]float32
	ColorZ     [4]float32
	TipPoints  bool    // add a point marker at each axis tip
	TipSize    float32 // default 4 px

	Gizmos []EntityId // managed by AxesVisualizerSystem
}

var axisDirections = [3]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

var axisNames = [3]string{"axes-x", "axes-y", "axes-z"}

func (viz *AxesVisualizer) length() float32 {
	if viz.AxisLength > 0 {
		return viz.AxisLength
	}
	return 1
}

func (viz *AxesVisualizer) colors() [3][4]float32 {
	colors := [3][4]float32{viz.ColorX, viz.ColorY, viz.ColorZ}
	defaults := [3][4]float32{ColorRed, ColorGreen, ColorBlue}
	for i := range colors {
		if colors[i][3] == 0 {
			colors[i] = defaults[i]
		}
	}
	return colors
}

func (viz *AxesVisualizer) tipSize() float32 {
	if viz.TipSize > 0 {
		return viz.TipSize
	}
	return 4
}

func AxesVisualizerSystem(cmd *Commands) {
	MakeQuery2[AxesVisualizer, TransformComponent](cmd).Map(func(eid EntityId, viz *AxesVisualizer, tr *TransformComponent) bool {
		if !viz.Enabled {
			if len(viz.Gizmos) > 0 {
				despawnGizmos(cmd, viz.Gizmos)
				viz.Gizmos = nil
			}
			return true
		}

		colors := viz.colors()
		start := tr.Position
		var ends [3]mgl32.Vec3
		for i, axis := range axisDirections {
			ends[i] = start.Add(tr.Rotation.Rotate(axis).Mul(viz.length()))
		}

		needed := 3
		if viz.TipPoints {
			needed = 6
		}

		// First enable, or TipPoints toggled: rebuild the gizmo set.
		if len(viz.Gizmos) != needed {
			despawnGizmos(cmd, viz.Gizmos)
			viz.Gizmos = nil

			for i := range axisDirections {
				line := NewGizmoLine(start, ends[i], colors[i])
				viz.Gizmos = append(viz.Gizmos, cmd.AddEntity(
					&line,
					&DebugOwned{Owner: eid, Kind: debugKindAxes},
					&NameComponent{Name: axisNames[i]},
				))
			}
			if viz.TipPoints {
				for i := range axisDirections {
					point := NewGizmoPoint(ends[i], viz.tipSize(), colors[i])
					viz.Gizmos = append(viz.Gizmos, cmd.AddEntity(
						&point,
						&DebugOwned{Owner: eid, Kind: debugKindAxes},
						&NameComponent{Name: axisNames[i] + "-tip"},
					))
				}
			}
			cmd.Logger().Debugf("debugviz: spawned %d axes gizmos for entity %v", needed, eid)
			return true
		}

		for i := range axisDirections {
			gizmo, ok := GetComponent[GizmoComponent](cmd, viz.Gizmos[i])
			if !ok {
				continue
			}
			gizmo.Position = start
			gizmo.LineEnd = ends[i]
			gizmo.Color = colors[i]
		}
		if viz.TipPoints {
			for i := range axisDirections {
				gizmo, ok := GetComponent[GizmoComponent](cmd, viz.Gizmos[3+i])
				if !ok {
					continue
				}
				gizmo.Position = ends[i]
				gizmo.PointSize = viz.tipSize()
				gizmo.Color = colors[i]
			}
		}
		return true
	})
}
