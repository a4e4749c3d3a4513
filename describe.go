package debugkit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// DescribeFunc turns a component the Describer doesn't know about into a
// short string. Return ok=false to skip the component.
type DescribeFunc func(component any) (desc string, ok bool)

// Describer renders compact single-line descriptions of entities and their
// components for scene dumps. The output is free-form debug text with no
// stability contract.
type Describer struct {
	extra []DescribeFunc
}

func NewDescriber() *Describer {
	return &Describer{}
}

// Register adds a describe func for component types the Describer doesn't
// handle natively. Funcs run in registration order.
func (d *Describer) Register(fn DescribeFunc) {
	if fn == nil {
		panic("describe func must not be nil")
	}
	d.extra = append(d.extra, fn)
}

// DescribeEntity renders one line for the entity: id, quoted name, then the
// known components in a fixed order, then any registered extras.
func (d *Describer) DescribeEntity(cmd *Commands, eid EntityId) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("#%d", eid))

	if name, ok := GetComponent[NameComponent](cmd, eid); ok {
		parts = append(parts, Quote(name.Name))
	}
	if tr, ok := GetComponent[TransformComponent](cmd, eid); ok {
		parts = append(parts, d.describeTransform(*tr))
	}
	if bounds, ok := GetComponent[BoundsComponent](cmd, eid); ok {
		parts = append(parts, d.describeBounds(*bounds))
	}
	if light, ok := GetComponent[LightComponent](cmd, eid); ok {
		parts = append(parts, d.describeLight(*light))
	}
	if bone, ok := GetComponent[BoneComponent](cmd, eid); ok {
		if bone.Influenced {
			parts = append(parts, "bone*")
		} else {
			parts = append(parts, "bone")
		}
	}
	if gizmo, ok := GetComponent[GizmoComponent](cmd, eid); ok {
		parts = append(parts, d.describeGizmo(*gizmo))
	}
	if owned, ok := GetComponent[DebugOwned](cmd, eid); ok {
		parts = append(parts, fmt.Sprintf("owner=#%d(%s)", owned.Owner, owned.Kind))
	}
	if viz, ok := GetComponent[AxesVisualizer](cmd, eid); ok {
		parts = append(parts, "axes["+onOff(viz.Enabled)+"]")
	}
	if viz, ok := GetComponent[BoundsVisualizer](cmd, eid); ok {
		parts = append(parts, "boundsviz["+onOff(viz.Enabled)+"]")
	}
	if viz, ok := GetComponent[SkeletonVisualizer](cmd, eid); ok {
		parts = append(parts, "skeleton["+onOff(viz.Enabled)+"]")
	}
	if lt, ok := GetComponent[LifetimeComponent](cmd, eid); ok {
		parts = append(parts, "ttl="+TrimFloat(lt.TimeLeft))
	}

	if len(d.extra) > 0 {
		var extras []string
		for _, comp := range cmd.GetAllComponents(eid) {
			for _, fn := range d.extra {
				if desc, ok := fn(comp); ok {
					extras = append(extras, desc)
					break
				}
			}
		}
		// GetAllComponents iterates a map; sort for stable output.
		slices.Sort(extras)
		parts = append(parts, extras...)
	}

	return strings.Join(parts, " ")
}

func (d *Describer) describeTransform(tr TransformComponent) string {
	desc := "pos=" + FormatVec3(tr.Position)
	if tr.Rotation != mgl32.QuatIdent() && tr.Rotation != (mgl32.Quat{}) {
		desc += " rot=" + FormatQuat(tr.Rotation)
	}
	if tr.Scale != (mgl32.Vec3{1, 1, 1}) && tr.Scale != (mgl32.Vec3{}) {
		desc += " scale=" + FormatVec3(tr.Scale)
	}
	return desc
}

func (d *Describer) describeBounds(bounds BoundsComponent) string {
	if bounds.Shape == BoundsSphere {
		return "bounds=sphere(r=" + TrimFloat(bounds.Radius) + ")"
	}
	return "bounds=box" + FormatVec3(bounds.HalfExtents)
}

func (d *Describer) describeLight(light LightComponent) string {
	desc := fmt.Sprintf("light=%s(rgb=%s %s %s int=%s",
		light.Type,
		TrimFloat(light.Color[0]), TrimFloat(light.Color[1]), TrimFloat(light.Color[2]),
		TrimFloat(light.Intensity))
	if light.Type == LightTypePoint || light.Type == LightTypeSpot {
		desc += " range=" + TrimFloat(light.Range)
	}
	if light.Type == LightTypeSpot {
		desc += " cone=" + TrimFloat(light.ConeAngle)
	}
	return desc + ")"
}

func (d *Describer) describeGizmo(gizmo GizmoComponent) string {
	switch gizmo.Type {
	case GizmoLine:
		return "gizmo=line" + FormatVec3(gizmo.Position) + ".." + FormatVec3(gizmo.LineEnd)
	case GizmoCube:
		return "gizmo=cube" + FormatVec3(gizmo.Position)
	case GizmoSphere:
		return "gizmo=sphere" + FormatVec3(gizmo.Position) + "(r=" + TrimFloat(gizmo.Radius) + ")"
	case GizmoRect:
		return "gizmo=rect" + FormatVec3(gizmo.Position)
	case GizmoCircle:
		return "gizmo=circle" + FormatVec3(gizmo.Position)
	case GizmoPoint:
		return "gizmo=point" + FormatVec3(gizmo.Position)
	}
	return "gizmo=?"
}

// FormatVec3 renders a vector as "(x y z)" with trimmed floats.
func FormatVec3(v mgl32.Vec3) string {
	return "(" + TrimFloat(v.X()) + " " + TrimFloat(v.Y()) + " " + TrimFloat(v.Z()) + ")"
}

// FormatQuat renders a quaternion as "(x y z w)" with trimmed floats.
func FormatQuat(q mgl32.Quat) string {
	return "(" + TrimFloat(q.V[0]) + " " + TrimFloat(q.V[1]) + " " + TrimFloat(q.V[2]) + " " + TrimFloat(q.W) + ")"
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
