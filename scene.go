package debugkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef defines the initial state of a scene as a tree of node defs.
type SceneDef struct {
	Nodes []NodeDef
}

// NodeDef describes one entity and its children. Position/Rotation/Scale
// are local to the parent node; zero rotation and scale default to identity
// and {1,1,1}.
type NodeDef struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	Bounds    *BoundsComponent
	Light     *LightComponent
	Bone      bool
	Axes      *AxesVisualizer
	BoundsViz *BoundsVisualizer
	Skeleton  *SkeletonVisualizer

	Children []NodeDef
}

// LoadScene spawns the scene tree and returns the root entity ids in def
// order.
func LoadScene(cmd *Commands, scene *SceneDef) []EntityId {
	roots := make([]EntityId, 0, len(scene.Nodes))
	for _, node := range scene.Nodes {
		roots = append(roots, spawnNode(cmd, node, 0, false))
	}
	return roots
}

func spawnNode(cmd *Commands, def NodeDef, parent EntityId, hasParent bool) EntityId {
	rotation := def.Rotation
	if rotation == (mgl32.Quat{}) {
		rotation = mgl32.QuatIdent()
	}
	scale := def.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}

	comps := []any{
		&TransformComponent{
			Position: def.Position,
			Rotation: rotation,
			Scale:    scale,
		},
	}
	if hasParent {
		comps = append(comps,
			&Parent{Entity: parent},
			&LocalTransformComponent{
				Position: def.Position,
				Rotation: rotation,
				Scale:    scale,
			},
		)
	}
	if def.Name != "" {
		comps = append(comps, &NameComponent{Name: def.Name})
	}
	if def.Bounds != nil {
		comps = append(comps, def.Bounds, &AABBComponent{})
	}
	if def.Light != nil {
		comps = append(comps, def.Light)
	}
	if def.Bone {
		comps = append(comps, &BoneComponent{})
	}
	if def.Axes != nil {
		comps = append(comps, def.Axes)
	}
	if def.BoundsViz != nil {
		comps = append(comps, def.BoundsViz)
	}
	if def.Skeleton != nil {
		comps = append(comps, def.Skeleton)
	}

	eid := cmd.AddEntity(comps...)

	for _, child := range def.Children {
		spawnNode(cmd, child, eid, true)
	}
	return eid
}
