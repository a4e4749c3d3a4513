package debugkit

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
)

type systemFn any

// Module installs components, resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App hosts the entity store, resources and scheduled systems. It performs
// no frame loop of its own: the embedding application calls Update once per
// rendered frame, on a single thread.
type App struct {
	stages  []Stage
	systems map[string][]systemFn

	resources map[reflect.Type]any
	ecs       *Ecs

	// Command buffering
	pendingAdditions    []pendingAdd
	pendingRemovals     []EntityId
	pendingCompAdds     []pendingCompAdd
	pendingCompRemovals []pendingCompRemoval
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

type pendingCompAdd struct {
	eid        EntityId
	components []any
}

type pendingCompRemoval struct {
	eid        EntityId
	components []any
}

func NewApp() *App {
	ecs := MakeEcs()
	app := &App{
		resources: make(map[reflect.Type]any),
		systems:   make(map[string][]systemFn),
		ecs:       &ecs,
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules installs modules in order. Each module gets a command buffer
// that is flushed once all modules are installed.
func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	app.FlushCommands()
	return app
}

// Update runs one frame: every stage in order, flushing buffered commands
// after each stage.
func (app *App) Update() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

var typeOfCommands = reflect.TypeOf(Commands{})

// Systems are plain functions. Arguments are resolved by type: *Commands is
// always available, everything else must be a registered resource pointer.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 &&
		len(app.pendingCompAdds) == 0 && len(app.pendingCompRemovals) == 0 {
		return
	}

	// Removals first, so we don't add to dead entities.
	for _, eid := range app.pendingRemovals {
		if app.ecs.hasEntity(eid) {
			app.ecs.removeEntity(eid)
		}
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]

	for _, add := range app.pendingCompAdds {
		if app.ecs.hasEntity(add.eid) {
			app.ecs.addComponents(add.eid, add.components...)
		}
	}
	app.pendingCompAdds = app.pendingCompAdds[:0]

	for _, rem := range app.pendingCompRemovals {
		if app.ecs.hasEntity(rem.eid) {
			app.ecs.removeComponents(rem.eid, rem.components...)
		}
	}
	app.pendingCompRemovals = app.pendingCompRemovals[:0]
}

type Stage struct {
	Name string
}

var (
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	Finale     = Stage{Name: "Finale"}
)

var defaultStages = []Stage{PreUpdate, Update, PostUpdate, Finale}

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	stageIdx := -1
	for i, s := range app.stages {
		if s.Name == where.target.Name {
			stageIdx = i
			break
		}
	}
	if -1 == stageIdx {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	insertAt := stageIdx
	if stageAfter == where.position {
		insertAt = stageIdx + 1
	}

	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.systems[stage.Name] = make([]systemFn, 0)

	return app
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if _, ok := app.systems[system.inStage.Name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systems[system.inStage.Name] = append(app.systems[system.inStage.Name], system.system)
	return app
}
