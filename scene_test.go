package debugkit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScene_SpawnsTree(t *testing.T) {
	app := NewApp().UseModules(HierarchyModule{})
	cmd := app.Commands()

	scene := &SceneDef{
		Nodes: []NodeDef{
			{
				Name:     "arena",
				Position: mgl32.Vec3{0, 0, 0},
				Children: []NodeDef{
					{
						Name:     "pillar",
						Position: mgl32.Vec3{4, 0, 0},
						Bounds:   &BoundsComponent{Shape: BoundsBox, HalfExtents: mgl32.Vec3{0.5, 2, 0.5}},
					},
					{
						Name:     "torch",
						Position: mgl32.Vec3{4, 3, 0},
						Light:    &LightComponent{Type: LightTypePoint, Intensity: 2, Range: 8},
					},
				},
			},
			{Name: "sky"},
		},
	}
	roots := LoadScene(cmd, scene)
	app.FlushCommands()

	require.Len(t, roots, 2)
	assert.Equal(t, "arena", NameOf(cmd, roots[0]))
	assert.Equal(t, "sky", NameOf(cmd, roots[1]))

	children := ChildrenOf(cmd, roots[0])
	require.Len(t, children, 2)

	pillar := children[0]
	assert.Equal(t, "pillar", NameOf(cmd, pillar))

	// Children get local transforms and default identity rotation/scale.
	local, ok := GetComponent[LocalTransformComponent](cmd, pillar)
	require.True(t, ok)
	assertVec3Near(t, mgl32.Vec3{4, 0, 0}, local.Position)
	assert.Equal(t, mgl32.QuatIdent(), local.Rotation)
	assertVec3Near(t, mgl32.Vec3{1, 1, 1}, local.Scale)

	// Bounds defs also get an AABB for the grid systems to fill in.
	_, ok = GetComponent[AABBComponent](cmd, pillar)
	assert.True(t, ok)

	torch := children[1]
	light, ok := GetComponent[LightComponent](cmd, torch)
	require.True(t, ok)
	assert.Equal(t, LightTypePoint, light.Type)

	// Roots have no Parent link.
	_, hasParent := GetComponent[Parent](cmd, roots[0])
	assert.False(t, hasParent)
}

func TestLoadScene_VisualizersComeUpAfterOneFrame(t *testing.T) {
	app := NewApp().UseModules(SpatialGridModule{}, HierarchyModule{}, DebugVisualsModule{})
	cmd := app.Commands()

	scene := &SceneDef{
		Nodes: []NodeDef{
			{
				Name:   "crate",
				Bounds: &BoundsComponent{Shape: BoundsBox, HalfExtents: mgl32.Vec3{1, 1, 1}},
				Axes:   &AxesVisualizer{Enabled: true},
				BoundsViz: &BoundsVisualizer{
					Enabled: true,
				},
			},
		},
	}
	LoadScene(cmd, scene)
	app.FlushCommands()

	app.Update()

	// Three axis lines plus one bounds cube.
	assert.Equal(t, 4, countDebugOwned(cmd))
}
