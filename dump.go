package debugkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Dumper writes an indented textual dump of the live entity hierarchy,
// walking roots and their Parent-linked children recursively. The format is
// human-readable debug output with no stability contract.
type Dumper struct {
	out       io.Writer
	describer *Describer

	// Indent is prepended once per depth level. Default two spaces.
	Indent string
	// MaxDepth limits recursion; 0 means unlimited.
	MaxDepth int
	// SkipDebugOwned drops gizmo entities spawned by visualizers. On by
	// default via NewDumper; dumps of the debug geometry itself can turn
	// it off.
	SkipDebugOwned bool
	// Orphans controls whether entities without a TransformComponent
	// (pure data entities) get listed after the hierarchy.
	Orphans bool
}

func NewDumper(out io.Writer) *Dumper {
	if out == nil {
		panic("dump target must not be nil")
	}
	return &Dumper{
		out:            out,
		describer:      NewDescriber(),
		Indent:         "  ",
		SkipDebugOwned: true,
		Orphans:        true,
	}
}

// Describer exposes the dumper's describer for registering extra component
// describe funcs.
func (d *Dumper) Describer() *Describer {
	return d.describer
}

// Dump writes the whole scene: every root and its subtree, then (when
// Orphans is set) everything else - entities with no transform at all and
// entities stuck in a Parent cycle no root reaches.
func (d *Dumper) Dump(cmd *Commands) error {
	seen := make(set[EntityId])
	for _, root := range Roots(cmd) {
		if err := d.dumpSubtree(cmd, root, 0, seen); err != nil {
			return err
		}
	}

	if !d.Orphans {
		return nil
	}
	for _, eid := range cmd.EntityIds() {
		if _, ok := seen[eid]; ok {
			continue
		}
		if d.skip(cmd, eid) {
			continue
		}
		if err := d.writeLine(cmd, eid, 0); err != nil {
			return err
		}
	}
	return nil
}

// DumpRadius writes every entity whose AABB the grid places within radius
// of center, one line each sorted by id. The grid does broadphase only, so
// the listing can include entities slightly outside the exact sphere.
func (d *Dumper) DumpRadius(cmd *Commands, grid *SpatialHashGrid, center mgl32.Vec3, radius float32) error {
	ids := grid.QueryRadius(center, radius)
	sortEntityIds(ids)
	for _, eid := range ids {
		if d.skip(cmd, eid) {
			continue
		}
		if err := d.writeLine(cmd, eid, 0); err != nil {
			return err
		}
	}
	return nil
}

// DumpSubtree writes the entity and everything underneath it.
func (d *Dumper) DumpSubtree(cmd *Commands, eid EntityId) error {
	if !cmd.EntityExists(eid) {
		return fmt.Errorf("entity %d does not exist", eid)
	}
	return d.dumpSubtree(cmd, eid, 0, make(set[EntityId]))
}

func (d *Dumper) dumpSubtree(cmd *Commands, eid EntityId, depth int, seen set[EntityId]) error {
	if _, ok := seen[eid]; ok {
		// Parent cycles would recurse forever; note and bail.
		_, err := fmt.Fprintf(d.out, "%s... cycle at #%d\n", d.indentFor(depth), eid)
		return err
	}
	seen[eid] = struct{}{}

	if d.skip(cmd, eid) {
		return nil
	}
	if err := d.writeLine(cmd, eid, depth); err != nil {
		return err
	}

	if d.MaxDepth > 0 && depth+1 >= d.MaxDepth {
		// Mark the cut-off descendants so the orphan pass doesn't list
		// them as detached.
		for _, child := range ChildrenOf(cmd, eid) {
			d.markSubtree(cmd, child, seen)
		}
		return nil
	}
	for _, child := range ChildrenOf(cmd, eid) {
		if err := d.dumpSubtree(cmd, child, depth+1, seen); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) markSubtree(cmd *Commands, eid EntityId, seen set[EntityId]) {
	if _, ok := seen[eid]; ok {
		return
	}
	seen[eid] = struct{}{}
	for _, child := range ChildrenOf(cmd, eid) {
		d.markSubtree(cmd, child, seen)
	}
}

func (d *Dumper) writeLine(cmd *Commands, eid EntityId, depth int) error {
	_, err := fmt.Fprintf(d.out, "%s%s\n", d.indentFor(depth), d.describer.DescribeEntity(cmd, eid))
	return err
}

func (d *Dumper) skip(cmd *Commands, eid EntityId) bool {
	if !d.SkipDebugOwned {
		return false
	}
	_, owned := GetComponent[DebugOwned](cmd, eid)
	return owned
}

func (d *Dumper) indentFor(depth int) string {
	return strings.Repeat(d.Indent, depth)
}
