package debugkit

import (
	"reflect"
	"slices"
)

// Commands is the system-facing handle to the App. Structural changes
// (entity/component adds and removals) are buffered and applied at the next
// FlushCommands, which the App runs after every stage.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

func (cmd *Commands) AddComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompAdds = append(cmd.app.pendingCompAdds, pendingCompAdd{
		eid:        entityId,
		components: components,
	})
}

func (cmd *Commands) RemoveComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompRemovals = append(cmd.app.pendingCompRemovals, pendingCompRemoval{
		eid:        entityId,
		components: components,
	})
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, entityId)
}

func (cmd *Commands) EntityExists(entityId EntityId) bool {
	return cmd.app.ecs.hasEntity(entityId)
}

// EntityIds returns every live entity, sorted for deterministic iteration.
func (cmd *Commands) EntityIds() []EntityId {
	ids := make([]EntityId, 0, len(cmd.app.ecs.entityIndex))
	for eid := range cmd.app.ecs.entityIndex {
		ids = append(ids, eid)
	}
	slices.Sort(ids)
	return ids
}

func (cmd *Commands) GetAllComponents(entityId EntityId) []any {
	ecs := cmd.app.ecs
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil
	}
	arch := ecs.archetypes[archId]

	row := arch.entities[entityId]

	var res []any
	for _, componentsSlice := range arch.componentData {
		val := reflectSliceGet(componentsSlice, int(row))
		res = append(res, val.Interface())
	}
	return res
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}

// GetComponent returns a pointer into the entity's component storage, valid
// until the next structural change. Second return is false when the entity
// is gone or doesn't carry T.
func GetComponent[T any](cmd *Commands, entityId EntityId) (*T, bool) {
	ecs := cmd.app.ecs

	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil, false
	}
	arch := ecs.archetypes[archId]

	var zero T
	compId, ok := ecs.componentTypeIdMap[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}

	data, ok := arch.componentData[compId]
	if !ok {
		return nil, false
	}

	row := arch.entities[entityId]
	comps := data.([]T)
	return &comps[row], true
}
