package debugkit

// BoundsVisualizer attaches a wireframe gizmo matching the owner's bounding
// volume: a cube for box bounds (from the world AABBComponent) or a sphere
// for sphere bounds. Yellow by default.
type BoundsVisualizer struct {
	Enabled bool
	Color   [4]float32 // zero alpha selects the default yellow

	Gizmos []EntityId // managed by BoundsVisualizerSystem
}

func (viz *BoundsVisualizer) color() [4]float32 {
	if viz.Color[3] == 0 {
		return ColorYellow
	}
	return viz.Color
}

func BoundsVisualizerSystem(cmd *Commands) {
	MakeQuery3[BoundsVisualizer, TransformComponent, AABBComponent](cmd).Map(func(eid EntityId, viz *BoundsVisualizer, tr *TransformComponent, aabb *AABBComponent) bool {
		if !viz.Enabled {
			if len(viz.Gizmos) > 0 {
				despawnGizmos(cmd, viz.Gizmos)
				viz.Gizmos = nil
			}
			return true
		}

		sphere := false
		radius := float32(0)
		if bounds, ok := GetComponent[BoundsComponent](cmd, eid); ok && bounds.Shape == BoundsSphere {
			sphere = true
			// The AABB of a sphere is a cube; half its size is the world
			// radius, scale already applied.
			radius = aabb.Size().X() / 2
		}

		if len(viz.Gizmos) == 0 {
			var gizmo GizmoComponent
			if sphere {
				gizmo = NewGizmoSphere(aabb.Center(), radius, viz.color())
			} else {
				gizmo = NewGizmoCube(aabb.Center(), aabb.Size(), viz.color())
			}
			viz.Gizmos = append(viz.Gizmos, cmd.AddEntity(
				&gizmo,
				&DebugOwned{Owner: eid, Kind: debugKindBounds},
				&NameComponent{Name: "bounds"},
			))
			cmd.Logger().Debugf("debugviz: spawned bounds gizmo for entity %v", eid)
			return true
		}

		gizmo, ok := GetComponent[GizmoComponent](cmd, viz.Gizmos[0])
		if !ok {
			return true
		}
		gizmo.Color = viz.color()
		gizmo.Position = aabb.Center()
		if sphere {
			gizmo.Type = GizmoSphere
			gizmo.Radius = radius
		} else {
			gizmo.Type = GizmoCube
			gizmo.Scale = aabb.Size()
		}
		return true
	})
}
