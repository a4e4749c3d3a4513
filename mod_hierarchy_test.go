package debugkit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3Near(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-5)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-5)
	assert.InDelta(t, expected.Z(), actual.Z(), 1e-5)
}

func TestHierarchy_TranslationPropagates(t *testing.T) {
	app := NewApp().UseModules(HierarchyModule{})
	cmd := app.Commands()

	root := cmd.AddEntity(
		TransformComponent{
			Position: mgl32.Vec3{10, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	)
	child := cmd.AddEntity(
		IdentityTransform(),
		LocalTransformComponent{
			Position: mgl32.Vec3{0, 5, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		Parent{Entity: root},
	)
	grandchild := cmd.AddEntity(
		IdentityTransform(),
		LocalTransformComponent{
			Position: mgl32.Vec3{0, 0, 2},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		Parent{Entity: child},
	)
	app.FlushCommands()

	app.Update()

	childWorld, ok := GetComponent[TransformComponent](cmd, child)
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{10, 5, 0}, childWorld.Position)

	grandchildWorld, ok := GetComponent[TransformComponent](cmd, grandchild)
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{10, 5, 2}, grandchildWorld.Position)
}

func TestHierarchy_RotationRotatesChildOffset(t *testing.T) {
	app := NewApp().UseModules(HierarchyModule{})
	cmd := app.Commands()

	// Root rotated 90 degrees around Y: child's +X offset lands on -Z.
	root := cmd.AddEntity(
		TransformComponent{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	)
	child := cmd.AddEntity(
		IdentityTransform(),
		LocalTransformComponent{
			Position: mgl32.Vec3{1, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		Parent{Entity: root},
	)
	app.FlushCommands()

	app.Update()

	childWorld, ok := GetComponent[TransformComponent](cmd, child)
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, childWorld.Position)
}

func TestHierarchy_ScaleMultipliesDownTheChain(t *testing.T) {
	app := NewApp().UseModules(HierarchyModule{})
	cmd := app.Commands()

	root := cmd.AddEntity(
		TransformComponent{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{2, 2, 2},
		},
	)
	child := cmd.AddEntity(
		IdentityTransform(),
		LocalTransformComponent{
			Position: mgl32.Vec3{1, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{3, 1, 1},
		},
		Parent{Entity: root},
	)
	app.FlushCommands()

	app.Update()

	childWorld, ok := GetComponent[TransformComponent](cmd, child)
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{2, 0, 0}, childWorld.Position)
	assertVec3Near(t, mgl32.Vec3{6, 2, 2}, childWorld.Scale)
}

func TestHierarchy_RootSyncsLocalFromWorld(t *testing.T) {
	app := NewApp().UseModules(HierarchyModule{})
	cmd := app.Commands()

	root := cmd.AddEntity(
		TransformComponent{
			Position: mgl32.Vec3{3, 4, 5},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		IdentityLocalTransform(),
	)
	app.FlushCommands()

	app.Update()

	local, ok := GetComponent[LocalTransformComponent](cmd, root)
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{3, 4, 5}, local.Position)
}

func TestHierarchy_Helpers(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	root := cmd.AddEntity(IdentityTransform(), NameComponent{Name: "root"})
	childA := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform(), Parent{Entity: root})
	childB := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform(), Parent{Entity: root})
	grandchild := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform(), Parent{Entity: childA})
	app.FlushCommands()

	assert.Equal(t, []EntityId{childA, childB}, ChildrenOf(cmd, root))
	assert.Equal(t, []EntityId{root}, Roots(cmd))
	assert.Equal(t, root, RootOf(cmd, grandchild))
	assert.Equal(t, "root", NameOf(cmd, root))
	assert.Equal(t, "", NameOf(cmd, grandchild))
}
