package valve

// Command records one Set call.
type Command struct {
	Zone int
	On   bool
}

// Fake is a test double recording every actuator command.
type Fake struct {
	// Commands holds every Set call in order.
	Commands []Command

	// State holds the last commanded state per zone.
	State map[int]bool

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, is returned by Set (the command is still recorded).
	SetError error
}

// NewFake creates an empty Fake.
func NewFake() *Fake {
	return &Fake{State: make(map[int]bool)}
}

// Set records the command and updates the tracked state.
func (f *Fake) Set(zone int, on bool) error {
	f.Commands = append(f.Commands, Command{Zone: zone, On: on})
	f.State[zone] = on
	return f.SetError
}

// IsOn returns the last commanded state for zone (off if never commanded).
func (f *Fake) IsOn(zone int) bool {
	return f.State[zone]
}

// Close marks the driver as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
