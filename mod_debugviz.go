package debugkit

// DebugVisualsModule installs every visualizer system. Install it after
// HierarchyModule so gizmo refresh sees settled world transforms within the
// same frame.
type DebugVisualsModule struct{}

func (DebugVisualsModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(AxesVisualizerSystem).InStage(PostUpdate),
	).UseSystem(
		System(BoundsVisualizerSystem).InStage(PostUpdate),
	).UseSystem(
		System(SkeletonVisualizerSystem).InStage(PostUpdate),
	).UseSystem(
		System(debugOwnedReaperSystem).InStage(Finale),
	)
}

// Visualizer kinds, stored on DebugOwned gizmos so the reaper can tell which
// visualizer component a gizmo belongs to.
const (
	debugKindAxes     = "axes"
	debugKindBounds   = "bounds"
	debugKindSkeleton = "skeleton"
)

// debugOwnedReaperSystem removes gizmos whose owning entity disappeared or
// no longer carries the visualizer that spawned them. Normal disable paths
// are handled by the visualizer systems; this catches entity removal.
func debugOwnedReaperSystem(cmd *Commands) {
	MakeQuery1[DebugOwned](cmd).Map(func(gid EntityId, owned *DebugOwned) bool {
		if !cmd.EntityExists(owned.Owner) {
			cmd.RemoveEntity(gid)
			return true
		}

		alive := false
		switch owned.Kind {
		case debugKindAxes:
			_, alive = GetComponent[AxesVisualizer](cmd, owned.Owner)
		case debugKindBounds:
			_, alive = GetComponent[BoundsVisualizer](cmd, owned.Owner)
		case debugKindSkeleton:
			_, alive = GetComponent[SkeletonVisualizer](cmd, owned.Owner)
		default:
			// Not spawned by a visualizer (e.g. user gizmos with lifetimes);
			// owner liveness is the only contract.
			alive = true
		}
		if !alive {
			cmd.Logger().Debugf("debugviz: reaping orphaned %s gizmo %v", owned.Kind, gid)
			cmd.RemoveEntity(gid)
		}
		return true
	})
}

func despawnGizmos(cmd *Commands, gizmos []EntityId) {
	for _, gid := range gizmos {
		cmd.RemoveEntity(gid)
	}
}
