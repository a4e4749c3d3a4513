package debugkit

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDumpScene(t *testing.T) (*App, *Commands) {
	t.Helper()

	app := NewApp().UseModules(HierarchyModule{})
	cmd := app.Commands()

	scene := &SceneDef{
		Nodes: []NodeDef{
			{
				Name:     "level",
				Position: mgl32.Vec3{1, 2, 3},
				Children: []NodeDef{
					{Name: "torch", Position: mgl32.Vec3{0, 1, 0}},
					{Name: "crate", Position: mgl32.Vec3{2, 0, 0}},
				},
			},
		},
	}
	LoadScene(cmd, scene)
	app.FlushCommands()
	app.Update()

	return app, cmd
}

func TestDumper_DumpHierarchy(t *testing.T) {
	_, cmd := buildDumpScene(t)

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.Dump(cmd))

	expected := strings.Join([]string{
		`#0 "level" pos=(1 2 3)`,
		`  #1 "torch" pos=(1 3 3)`,
		`  #2 "crate" pos=(3 2 3)`,
		``,
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestDumper_MaxDepth(t *testing.T) {
	_, cmd := buildDumpScene(t)

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	dumper.MaxDepth = 1
	require.NoError(t, dumper.Dump(cmd))

	assert.Equal(t, `#0 "level" pos=(1 2 3)`+"\n", buf.String())
}

func TestDumper_CustomIndent(t *testing.T) {
	_, cmd := buildDumpScene(t)

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	dumper.Indent = "...."
	require.NoError(t, dumper.Dump(cmd))

	assert.Contains(t, buf.String(), `....#1 "torch"`)
}

func TestDumper_DumpSubtree(t *testing.T) {
	_, cmd := buildDumpScene(t)

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.DumpSubtree(cmd, 1))

	assert.Equal(t, `#1 "torch" pos=(1 3 3)`+"\n", buf.String())

	err := dumper.DumpSubtree(cmd, 999)
	assert.Error(t, err)
}

func TestDumper_SkipsDebugOwnedByDefault(t *testing.T) {
	app := NewApp().UseModules(HierarchyModule{}, DebugVisualsModule{})
	cmd := app.Commands()

	cmd.AddEntity(
		IdentityTransform(),
		NameComponent{Name: "hero"},
		AxesVisualizer{Enabled: true},
	)
	app.FlushCommands()
	app.Update()
	require.Equal(t, 3, countDebugOwned(cmd))

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.Dump(cmd))

	assert.NotContains(t, buf.String(), "axes-x")
	assert.Contains(t, buf.String(), `"hero"`)

	buf.Reset()
	dumper.SkipDebugOwned = false
	require.NoError(t, dumper.Dump(cmd))
	assert.Contains(t, buf.String(), "axes-x")
	assert.Contains(t, buf.String(), "owner=#0(axes)")
}

func TestDumper_OrphansListedAfterHierarchy(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	cmd.AddEntity(IdentityTransform(), NameComponent{Name: "root"})
	cmd.AddEntity(LifetimeComponent{TimeLeft: 1.5}) // no transform
	app.FlushCommands()

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.Dump(cmd))

	assert.Contains(t, buf.String(), "ttl=1.5")

	buf.Reset()
	dumper.Orphans = false
	require.NoError(t, dumper.Dump(cmd))
	assert.NotContains(t, buf.String(), "ttl=1.5")
}

func TestDumper_ParentCycleIsReported(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	a := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform())
	b := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform(), Parent{Entity: a})
	app.FlushCommands()
	cmd.AddComponents(a, Parent{Entity: b})
	app.FlushCommands()

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.DumpSubtree(cmd, a))

	assert.Contains(t, buf.String(), "... cycle at")
}

func TestDumper_DetachedCycleStillListed(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	a := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform(), NameComponent{Name: "ouro"})
	b := cmd.AddEntity(IdentityTransform(), IdentityLocalTransform(), Parent{Entity: a})
	app.FlushCommands()
	cmd.AddComponents(a, Parent{Entity: b})
	app.FlushCommands()

	// Neither entity is a root now, so the hierarchy walk never reaches
	// them; the orphan pass still lists both.
	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.Dump(cmd))

	assert.Contains(t, buf.String(), `#0 "ouro"`)
	assert.Contains(t, buf.String(), "#1")
}

func TestDumper_DumpRadius(t *testing.T) {
	app := NewApp().UseModules(SpatialGridModule{CellSize: 1.0})
	cmd := app.Commands()

	cmd.AddEntity(
		TransformComponent{
			Position: mgl32.Vec3{0.5, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		BoundsComponent{Shape: BoundsBox, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}},
		AABBComponent{},
		NameComponent{Name: "near-crate"},
	)
	cmd.AddEntity(
		TransformComponent{
			Position: mgl32.Vec3{40, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		BoundsComponent{Shape: BoundsBox, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}},
		AABBComponent{},
		NameComponent{Name: "far-crate"},
	)
	app.FlushCommands()
	app.Update()

	grid := app.resources[reflect.TypeOf(SpatialHashGrid{})].(*SpatialHashGrid)

	var buf bytes.Buffer
	dumper := NewDumper(&buf)
	require.NoError(t, dumper.DumpRadius(cmd, grid, mgl32.Vec3{0, 0, 0}, 2))

	assert.Contains(t, buf.String(), `"near-crate"`)
	assert.NotContains(t, buf.String(), `"far-crate"`)
}

func TestDescriber_KnownComponents(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	eid := cmd.AddEntity(
		NameComponent{Name: "lamp"},
		TransformComponent{
			Position: mgl32.Vec3{1, 0, -2.5},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{2, 2, 2},
		},
		BoundsComponent{Shape: BoundsSphere, Radius: 0.75},
		LightComponent{Type: LightTypePoint, Color: [3]float32{1, 0.5, 0}, Intensity: 2, Range: 10},
	)
	app.FlushCommands()

	desc := NewDescriber().DescribeEntity(cmd, eid)
	assert.Equal(t,
		`#0 "lamp" pos=(1 0 -2.5) scale=(2 2 2) bounds=sphere(r=0.75) light=point(rgb=1 0.5 0 int=2 range=10)`,
		desc)
}

func TestDescriber_RegisteredExtra(t *testing.T) {
	type healthComponent struct {
		HP int
	}

	app := NewApp()
	cmd := app.Commands()

	eid := cmd.AddEntity(
		NameComponent{Name: "orc"},
		healthComponent{HP: 40},
	)
	app.FlushCommands()

	describer := NewDescriber()
	describer.Register(func(component any) (string, bool) {
		if health, ok := component.(healthComponent); ok {
			return "hp=" + TrimFloat(float32(health.HP)), true
		}
		return "", false
	})

	assert.Equal(t, `#0 "orc" hp=40`, describer.DescribeEntity(cmd, eid))
}

func TestDescriber_NilRegisterPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDescriber().Register(nil)
	})
}

func TestNewDumper_NilWriterPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDumper(nil)
	})
}
