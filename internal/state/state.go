// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает состояния
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Restore возвращает ранее активное состояние без вызова Exit/Enter.
// Нужен паузе: игра продолжается с того же места.
func (sm *StateMachine) Restore(prev State) {
	sm.current = prev
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
