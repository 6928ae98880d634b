// internal/state/blank_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// BlankState — страница без фона, поле размонтировано
type BlankState struct {
	sm  *StateMachine
	env *Env
}

func NewBlankState(sm *StateMachine, env *Env) *BlankState {
	return &BlankState{sm: sm, env: env}
}

func (b *BlankState) Enter() {
	// Ничего не делаем при входе
}

func (b *BlankState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		b.sm.SetState(NewHeroState(b.sm, b.env))
	}
}

func (b *BlankState) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "field unmounted, press space to mount", 16, 72)
}

func (b *BlankState) Exit() {
	// Ничего не делаем при выходе
}
