package valve

import "log"

// Log is the -sim actuator: it logs commands and remembers state but
// touches no hardware.
type Log struct {
	state map[int]bool
}

// NewLog creates a logging driver.
func NewLog() *Log {
	return &Log{state: make(map[int]bool)}
}

// Set logs the command.
func (l *Log) Set(zone int, on bool) error {
	l.state[zone] = on
	log.Printf("valve(sim): zone=%d on=%v", zone+1, on)
	return nil
}

// Close logs shutdown, switching anything still on off first.
func (l *Log) Close() error {
	for zone, on := range l.state {
		if on {
			log.Printf("valve(sim): zone=%d on=false (close)", zone+1)
		}
	}
	return nil
}
