package debugkit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshots capture the transform hierarchy as JSON so dumps taken at
// different times can be diffed offline and small test scenes can be
// reloaded. Visualizer-spawned gizmos are skipped.

type EntityData struct {
	ID         EntityId   `json:"id"`
	Name       string     `json:"name,omitempty"`
	Position   mgl32.Vec3 `json:"position"`
	Rotation   mgl32.Quat `json:"rotation"`
	Scale      mgl32.Vec3 `json:"scale"`
	HasLocal   bool       `json:"has_local"`
	LocalPos   mgl32.Vec3 `json:"local_position,omitempty"`
	LocalRot   mgl32.Quat `json:"local_rotation,omitempty"`
	LocalScale mgl32.Vec3 `json:"local_scale,omitempty"`
	HasParent  bool       `json:"has_parent"`
	ParentID   EntityId   `json:"parent_id"`
}

type SnapshotData struct {
	Entities []EntityData `json:"entities"`
}

// TakeSnapshot captures every transform-carrying entity except debug-owned
// gizmos, in id order.
func TakeSnapshot(cmd *Commands) SnapshotData {
	var snap SnapshotData

	for _, eid := range cmd.EntityIds() {
		tr, ok := GetComponent[TransformComponent](cmd, eid)
		if !ok {
			continue
		}
		if _, owned := GetComponent[DebugOwned](cmd, eid); owned {
			continue
		}

		data := EntityData{
			ID:       eid,
			Name:     NameOf(cmd, eid),
			Position: tr.Position,
			Rotation: tr.Rotation,
			Scale:    tr.Scale,
		}
		if local, ok := GetComponent[LocalTransformComponent](cmd, eid); ok {
			data.HasLocal = true
			data.LocalPos = local.Position
			data.LocalRot = local.Rotation
			data.LocalScale = local.Scale
		}
		if parent, ok := GetComponent[Parent](cmd, eid); ok {
			data.HasParent = true
			data.ParentID = parent.Entity
		}

		snap.Entities = append(snap.Entities, data)
	}
	return snap
}

// Save writes the snapshot as indented JSON.
func (snap SnapshotData) Save(filename string) error {
	bytes, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func SaveSnapshot(cmd *Commands, filename string) error {
	return TakeSnapshot(cmd).Save(filename)
}

// LoadSnapshot spawns the snapshot's entities into the scene. Parent links
// are remapped to the freshly spawned ids; links pointing outside the
// snapshot are dropped with a warning. Returns old-id -> new-id.
func LoadSnapshot(cmd *Commands, filename string) (map[EntityId]EntityId, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap SnapshotData
	if err := json.Unmarshal(bytes, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	idMap := make(map[EntityId]EntityId, len(snap.Entities))
	for _, data := range snap.Entities {
		comps := []any{
			&TransformComponent{
				Position: data.Position,
				Rotation: data.Rotation,
				Scale:    data.Scale,
			},
		}
		if data.Name != "" {
			comps = append(comps, &NameComponent{Name: data.Name})
		}
		if data.HasLocal {
			comps = append(comps, &LocalTransformComponent{
				Position: data.LocalPos,
				Rotation: data.LocalRot,
				Scale:    data.LocalScale,
			})
		}
		idMap[data.ID] = cmd.AddEntity(comps...)
	}

	// Parent links in a second pass, once every new id is known.
	for _, data := range snap.Entities {
		if !data.HasParent {
			continue
		}
		newParent, ok := idMap[data.ParentID]
		if !ok {
			cmd.Logger().Warnf("snapshot: entity %d references parent %d outside the snapshot, dropping link",
				data.ID, data.ParentID)
			continue
		}
		cmd.AddComponents(idMap[data.ID], &Parent{Entity: newParent})
	}

	return idMap, nil
}
