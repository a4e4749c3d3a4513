package debugkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(TransformHierarchySystem).InStage(PostUpdate),
	)
}

const hierarchyMaxPasses = 8

// TransformHierarchySystem propagates world transforms down Parent links.
// Children combine their LocalTransformComponent with the parent's world
// TransformComponent; roots with both components sync local from world.
func TransformHierarchySystem(cmd *Commands) {
	// Roots that carry both components: world is authoritative.
	MakeQuery2[LocalTransformComponent, TransformComponent](cmd).Map(func(eid EntityId, local *LocalTransformComponent, tr *TransformComponent) bool {
		if _, hasParent := GetComponent[Parent](cmd, eid); hasParent {
			return true
		}

		local.Position = tr.Position
		local.Rotation = tr.Rotation
		local.Scale = tr.Scale
		return true
	})

	// Children: iterate multiple passes so deep hierarchies settle without
	// needing a topological sort. Stops early once nothing changes.
	for pass := 0; pass < hierarchyMaxPasses; pass++ {
		changed := false
		MakeQuery3[LocalTransformComponent, Parent, TransformComponent](cmd).Map(func(eid EntityId, local *LocalTransformComponent, parent *Parent, world *TransformComponent) bool {
			parentWorld, ok := GetComponent[TransformComponent](cmd, parent.Entity)
			if !ok {
				return true
			}

			// Propagate components directly to preserve scale signs
			// (reflections).
			// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
			scaledLocalPos := mgl32.Vec3{
				local.Position.X() * parentWorld.Scale.X(),
				local.Position.Y() * parentWorld.Scale.Y(),
				local.Position.Z() * parentWorld.Scale.Z(),
			}
			newPos := parentWorld.Position.Add(parentWorld.Rotation.Rotate(scaledLocalPos))

			// WorldRot = ParentRot * LocalRot
			newRot := parentWorld.Rotation.Mul(local.Rotation).Normalize()

			// WorldScale = ParentScale * LocalScale
			newScale := mgl32.Vec3{
				parentWorld.Scale.X() * local.Scale.X(),
				parentWorld.Scale.Y() * local.Scale.Y(),
				parentWorld.Scale.Z() * local.Scale.Z(),
			}

			if newPos != world.Position || newRot != world.Rotation || newScale != world.Scale {
				world.Position = newPos
				world.Rotation = newRot
				world.Scale = newScale
				changed = true
			}
			return true
		})
		if !changed {
			break
		}
	}
}
