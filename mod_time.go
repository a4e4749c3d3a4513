package debugkit

import (
	"time"
)

// Time is a per-frame clock resource. Dt is the last frame's duration in
// seconds, clamped so visualizer lifetimes stay sane after a debugger pause.
type Time struct {
	Now   time.Time
	Dt    float32
	MaxDt float32
}

type TimeModule struct {
	MaxDt float32
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	maxDt := mod.MaxDt
	if maxDt <= 0 {
		maxDt = 0.25
	}
	cmd.AddResources(&Time{
		Now:   time.Now(),
		MaxDt: maxDt,
	})
	app.UseSystem(System(timeSystem).InStage(PreUpdate))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	dt := float32(now.Sub(timeResource.Now).Seconds())
	if dt > timeResource.MaxDt {
		dt = timeResource.MaxDt
	}
	timeResource.Dt = dt
	timeResource.Now = now
}
