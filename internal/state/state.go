// internal/state/state.go
package state

import "go-decryptviz/internal/component"

// State интерфейс для состояний режима
type State interface {
	Enter()
	Exit()
	Mode() component.Mode
}

// Rebuilder пересобирает пространственное состояние сцены под режим.
// Его реализует контроллер поверхностей.
type Rebuilder interface {
	Rebuild(mode component.Mode)
}

// StateMachine структура для управления состояниями
type StateMachine struct {
	current State
	target  Rebuilder
}

// NewStateMachine создаёт машину состояний без начального состояния.
// target получает Rebuild при каждом входе в состояние.
func NewStateMachine(target Rebuilder) *StateMachine {
	return &StateMachine{target: target}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает текущее состояние или nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Mode возвращает режим текущего состояния; без состояния это Idle.
func (sm *StateMachine) Mode() component.Mode {
	if sm.current == nil {
		return component.Idle
	}
	return sm.current.Mode()
}

// Switch переводит машину в состояние режима m. Повторный запрос того же
// режима ничего не делает. Возвращает true, если переход состоялся.
func (sm *StateMachine) Switch(m component.Mode) bool {
	if sm.current != nil && sm.current.Mode() == m {
		return false
	}
	sm.SetState(ForMode(m, sm.target))
	return true
}

// ForMode возвращает состояние для режима m.
func ForMode(m component.Mode, target Rebuilder) State {
	if m == component.Active {
		return &ActiveState{target: target}
	}
	return &IdleState{target: target}
}
