package system

import (
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// DashAbility owns the dashing flag. A dash lasts Duration seconds and can
// be triggered again after Cooldown seconds.
type DashAbility struct {
	cfg       config.DashConfig
	flags     *entity.ModeFlags
	scheduler Scheduler
	ready     bool
}

// NewDashAbility creates a dash ability writing to flags.
func NewDashAbility(cfg config.DashConfig, flags *entity.ModeFlags, scheduler Scheduler) *DashAbility {
	return &DashAbility{
		cfg:       cfg,
		flags:     flags,
		scheduler: scheduler,
		ready:     true,
	}
}

// Trigger starts a dash if the cooldown has expired.
func (a *DashAbility) Trigger() bool {
	if !a.ready {
		return false
	}

	a.ready = false
	a.flags.IsDashing = true
	a.scheduler.ScheduleOnce(a.cfg.Duration, func() { a.flags.IsDashing = false })
	a.scheduler.ScheduleOnce(a.cfg.Cooldown, func() { a.ready = true })
	return true
}

// Ready reports whether a dash can be triggered.
func (a *DashAbility) Ready() bool { return a.ready }

// SlideAbility owns the sliding flag. A slide starts from the ground and
// lasts while the slide input is held.
type SlideAbility struct {
	flags *entity.ModeFlags
}

// NewSlideAbility creates a slide ability writing to flags.
func NewSlideAbility(flags *entity.ModeFlags) *SlideAbility {
	return &SlideAbility{flags: flags}
}

// Update starts, keeps or stops the slide.
func (a *SlideAbility) Update(held, grounded bool) {
	switch {
	case !held:
		a.flags.IsSliding = false
	case grounded:
		a.flags.IsSliding = true
	}
}

// WallRunAbility owns the wall-running flag. Wall contact is not modelled by
// the sandbox backend, so the host reports it.
type WallRunAbility struct {
	flags *entity.ModeFlags
}

// NewWallRunAbility creates a wall-run ability writing to flags.
func NewWallRunAbility(flags *entity.ModeFlags) *WallRunAbility {
	return &WallRunAbility{flags: flags}
}

// Update sets wall running while touching a wall in the air.
func (a *WallRunAbility) Update(touchingWall, grounded bool) {
	a.flags.IsWallRunning = touchingWall && !grounded
}
