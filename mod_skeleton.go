package debugkit

import (
	"slices"
)

// BoneComponent marks an entity as an armature joint. Bones chain together
// with Parent + LocalTransformComponent like any other scene entities; the
// hierarchy system gives them world transforms.
type BoneComponent struct {
	Influenced bool // has vertex weights; drawn in the influence color
}

// SkeletonVisualizer attaches to an armature root and draws a point gizmo
// at every joint plus a line gizmo along every bone link underneath it.
type SkeletonVisualizer struct {
	Enabled        bool
	HeadColor      [4]float32 // joint points; zero alpha selects the default white
	InfluenceColor [4]float32 // influenced joint points; zero alpha selects the default orange
	LinkColor      [4]float32 // bone links; zero alpha selects the default cyan
	PointSize      float32    // default 6 px

	Gizmos []EntityId // managed by SkeletonVisualizerSystem
}

func (viz *SkeletonVisualizer) headColor() [4]float32 {
	if viz.HeadColor[3] == 0 {
		return ColorWhite
	}
	return viz.HeadColor
}

func (viz *SkeletonVisualizer) influenceColor() [4]float32 {
	if viz.InfluenceColor[3] == 0 {
		return ColorOrange
	}
	return viz.InfluenceColor
}

func (viz *SkeletonVisualizer) linkColor() [4]float32 {
	if viz.LinkColor[3] == 0 {
		return ColorCyan
	}
	return viz.LinkColor
}

func (viz *SkeletonVisualizer) pointSize() float32 {
	if viz.PointSize > 0 {
		return viz.PointSize
	}
	return 6
}

type boneLink struct {
	parent EntityId
	child  EntityId
}

func SkeletonVisualizerSystem(cmd *Commands) {
	MakeQuery2[SkeletonVisualizer, TransformComponent](cmd).Map(func(eid EntityId, viz *SkeletonVisualizer, tr *TransformComponent) bool {
		if !viz.Enabled {
			if len(viz.Gizmos) > 0 {
				despawnGizmos(cmd, viz.Gizmos)
				viz.Gizmos = nil
			}
			return true
		}

		bones, links := collectBones(cmd, eid)
		needed := len(bones) + len(links)

		// Armature structure changed: rebuild from scratch. Gizmo order is
		// bones first, links second, both sorted, so refresh stays aligned.
		if len(viz.Gizmos) != needed {
			despawnGizmos(cmd, viz.Gizmos)
			viz.Gizmos = nil

			for _, bone := range bones {
				boneTr, ok := GetComponent[TransformComponent](cmd, bone)
				if !ok {
					continue
				}
				color := viz.headColor()
				if bc, ok := GetComponent[BoneComponent](cmd, bone); ok && bc.Influenced {
					color = viz.influenceColor()
				}
				point := NewGizmoPoint(boneTr.Position, viz.pointSize(), color)
				viz.Gizmos = append(viz.Gizmos, cmd.AddEntity(
					&point,
					&DebugOwned{Owner: eid, Kind: debugKindSkeleton},
					&NameComponent{Name: "skeleton-joint"},
				))
			}
			for _, link := range links {
				from, okFrom := GetComponent[TransformComponent](cmd, link.parent)
				to, okTo := GetComponent[TransformComponent](cmd, link.child)
				if !okFrom || !okTo {
					continue
				}
				line := NewGizmoLine(from.Position, to.Position, viz.linkColor())
				viz.Gizmos = append(viz.Gizmos, cmd.AddEntity(
					&line,
					&DebugOwned{Owner: eid, Kind: debugKindSkeleton},
					&NameComponent{Name: "skeleton-link"},
				))
			}
			cmd.Logger().Debugf("debugviz: spawned %d skeleton gizmos for entity %v", needed, eid)
			return true
		}

		for i, bone := range bones {
			gizmo, okGizmo := GetComponent[GizmoComponent](cmd, viz.Gizmos[i])
			boneTr, okBone := GetComponent[TransformComponent](cmd, bone)
			if !okGizmo || !okBone {
				continue
			}
			gizmo.Position = boneTr.Position
			gizmo.PointSize = viz.pointSize()
			color := viz.headColor()
			if bc, ok := GetComponent[BoneComponent](cmd, bone); ok && bc.Influenced {
				color = viz.influenceColor()
			}
			gizmo.Color = color
		}
		for i, link := range links {
			gizmo, okGizmo := GetComponent[GizmoComponent](cmd, viz.Gizmos[len(bones)+i])
			from, okFrom := GetComponent[TransformComponent](cmd, link.parent)
			to, okTo := GetComponent[TransformComponent](cmd, link.child)
			if !okGizmo || !okFrom || !okTo {
				continue
			}
			gizmo.Position = from.Position
			gizmo.LineEnd = to.Position
			gizmo.Color = viz.linkColor()
		}
		return true
	})
}

// collectBones gathers every BoneComponent entity whose Parent chain passes
// through the armature root, sorted by id, plus the parent/child links
// between bones.
func collectBones(cmd *Commands, root EntityId) ([]EntityId, []boneLink) {
	var bones []EntityId
	MakeQuery2[BoneComponent, Parent](cmd).Map(func(bone EntityId, bc *BoneComponent, p *Parent) bool {
		if isDescendantOf(cmd, bone, root) {
			bones = append(bones, bone)
		}
		return true
	})
	slices.Sort(bones)

	var links []boneLink
	for _, bone := range bones {
		p, ok := GetComponent[Parent](cmd, bone)
		if !ok {
			continue
		}
		if _, parentIsBone := GetComponent[BoneComponent](cmd, p.Entity); parentIsBone {
			links = append(links, boneLink{parent: p.Entity, child: bone})
		}
	}
	return bones, links
}

func isDescendantOf(cmd *Commands, eid, ancestor EntityId) bool {
	for {
		p, ok := GetComponent[Parent](cmd, eid)
		if !ok {
			return false
		}
		if p.Entity == ancestor {
			return true
		}
		eid = p.Entity
	}
}
