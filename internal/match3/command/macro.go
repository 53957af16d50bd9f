package command

import "errors"

// Errors reported by Slot.
var (
	ErrNoMacro  = errors.New("command: no current macro")
	ErrSlotBusy = errors.New("command: current macro is still pending")
	ErrNilMacro = errors.New("command: nil macro")
)

// Macro groups commands into one execute/undo unit.
type Macro struct {
	commands []Command
}

// NewMacro creates a macro from the given commands, in order.
func NewMacro(commands ...Command) *Macro {
	return &Macro{commands: commands}
}

// Len returns the number of commands.
func (m *Macro) Len() int {
	return len(m.commands)
}

// Commands returns the member commands.
func (m *Macro) Commands() []Command {
	return m.commands
}

// Execute executes every member in order.
func (m *Macro) Execute() {
	for _, c := range m.commands {
		c.Execute()
	}
}

// Undo undoes every member in order.
func (m *Macro) Undo() {
	for _, c := range m.commands {
		c.Undo()
	}
}

// Slot holds the single current macro. A stored macro stays pending until
// Resolve; storing another one meanwhile fails with ErrSlotBusy instead of
// silently replacing it.
type Slot struct {
	current *Macro
}

// Store makes m the current macro.
func (s *Slot) Store(m *Macro) error {
	if m == nil {
		return ErrNilMacro
	}
	if s.current != nil {
		return ErrSlotBusy
	}
	s.current = m
	return nil
}

// Current returns the pending macro, or nil.
func (s *Slot) Current() *Macro {
	return s.current
}

// Pending reports whether a macro is stored.
func (s *Slot) Pending() bool {
	return s.current != nil
}

// Execute executes the current macro.
func (s *Slot) Execute() error {
	if s.current == nil {
		return ErrNoMacro
	}
	s.current.Execute()
	return nil
}

// Undo undoes the current macro. The macro stays pending until Resolve.
func (s *Slot) Undo() error {
	if s.current == nil {
		return ErrNoMacro
	}
	s.current.Undo()
	return nil
}

// Resolve releases the current macro.
func (s *Slot) Resolve() error {
	if s.current == nil {
		return ErrNoMacro
	}
	s.current = nil
	return nil
}

// Run stores, executes and resolves m in one step. Used for macros that need
// no confirmation, such as falls.
func (s *Slot) Run(m *Macro) error {
	if err := s.Store(m); err != nil {
		return err
	}
	m.Execute()
	return s.Resolve()
}
