package gamemode

// Mode is the lifecycle state of the paint loop.
type Mode int

const (
	Running Mode = iota // Window open, frames are produced
	Closed              // Close observed; terminal
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Close moves to Closed. Calling it again is a no-op.
func (m *Mode) Close() {
	*m = Closed
}

func (m Mode) IsClosed() bool {
	return m == Closed
}
