package debugkit

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent is the entity's world-space transform.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// LocalTransformComponent is the transform relative to the Parent entity.
// Roots may omit it; for them TransformComponent is authoritative.
type LocalTransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Parent links an entity into the scene hierarchy.
type Parent struct {
	Entity EntityId
}

// NameComponent gives an entity a human-readable name for dumps and lookups.
type NameComponent struct {
	Name string
}

func IdentityTransform() TransformComponent {
	return TransformComponent{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func IdentityLocalTransform() LocalTransformComponent {
	return LocalTransformComponent{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// ChildrenOf returns the entities whose Parent is eid, sorted by id.
func ChildrenOf(cmd *Commands, eid EntityId) []EntityId {
	var children []EntityId
	MakeQuery1[Parent](cmd).Map(func(child EntityId, p *Parent) bool {
		if p.Entity == eid {
			children = append(children, child)
		}
		return true
	})
	sortEntityIds(children)
	return children
}

// Roots returns every entity that has a transform but no Parent, sorted.
func Roots(cmd *Commands) []EntityId {
	var roots []EntityId
	MakeQuery1[TransformComponent](cmd).Map(func(eid EntityId, tr *TransformComponent) bool {
		if _, hasParent := GetComponent[Parent](cmd, eid); !hasParent {
			roots = append(roots, eid)
		}
		return true
	})
	sortEntityIds(roots)
	return roots
}

// RootOf walks Parent links up to the top of eid's hierarchy.
func RootOf(cmd *Commands, eid EntityId) EntityId {
	for {
		p, ok := GetComponent[Parent](cmd, eid)
		if !ok {
			return eid
		}
		eid = p.Entity
	}
}

// NameOf returns the entity's name, or "" when it has none.
func NameOf(cmd *Commands, eid EntityId) string {
	if name, ok := GetComponent[NameComponent](cmd, eid); ok {
		return name.Name
	}
	return ""
}

func sortEntityIds(ids []EntityId) {
	slices.Sort(ids)
}
