// internal/state/env.go
package state

import (
	"gravity-stars/internal/appearance"
	"gravity-stars/internal/config"
	"gravity-stars/internal/event"
	"gravity-stars/internal/frame"
	"gravity-stars/internal/page"
	"gravity-stars/internal/ui"
)

// Env is what the page states share with the host.
type Env struct {
	Bus     *event.Dispatcher
	Frames  *frame.Queue
	Hero    *page.Hero
	Options config.Field
	HUD     *ui.HUD
	Aurora  *appearance.Aurora
}
