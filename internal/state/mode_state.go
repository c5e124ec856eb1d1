// internal/state/mode_state.go
package state

import "go-decryptviz/internal/component"

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*IdleState)(nil)
	_ State = (*ActiveState)(nil)
)

// IdleState фоновый режим: разреженная сцена, без трассировщика.
type IdleState struct {
	target Rebuilder
}

func (s *IdleState) Enter() {
	if s.target != nil {
		s.target.Rebuild(component.Idle)
	}
}

func (s *IdleState) Exit() {}

func (s *IdleState) Mode() component.Mode { return component.Idle }

// ActiveState режим расшифровки: плотная сцена, импульсы, трассировщик.
type ActiveState struct {
	target Rebuilder
}

func (s *ActiveState) Enter() {
	if s.target != nil {
		s.target.Rebuild(component.Active)
	}
}

func (s *ActiveState) Exit() {}

func (s *ActiveState) Mode() component.Mode { return component.Active }
