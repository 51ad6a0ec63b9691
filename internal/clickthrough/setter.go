package clickthrough

import "fmt"

// Setter performs one input-shape change per call: parse the identifier,
// connect, verify the SHAPE extension, issue the request, synchronize.
// It keeps no state between calls; each call opens and closes its own
// connection.
type Setter struct {
	connect ConnectFunc
}

// NewSetter returns a Setter that opens display connections with connect.
func NewSetter(connect ConnectFunc) *Setter {
	return &Setter{connect: connect}
}

// Set makes the window identified by text click-through by clearing its
// input shape. The parsed handle is returned for reporting.
func (s *Setter) Set(text string) (WindowID, error) {
	return s.run(text, "clear", func(d Display, id WindowID) error {
		return d.ClearInputShape(id)
	})
}

// Restore removes a click-through override from the window identified by
// text, so it accepts input again.
func (s *Setter) Restore(text string) (WindowID, error) {
	return s.run(text, "reset", func(d Display, id WindowID) error {
		return d.ResetInputShape(id)
	})
}

func (s *Setter) run(text, verb string, mutate func(Display, WindowID) error) (WindowID, error) {
	id, err := ParseWindowID(text)
	if err != nil {
		return 0, err
	}

	display, err := s.connect()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to X display: %w", err)
	}
	defer display.Close()

	if !display.SupportsShape() {
		return 0, ErrShapeUnavailable
	}

	if err := mutate(display, id); err != nil {
		return 0, fmt.Errorf("failed to %s input shape of window %s: %w", verb, id, err)
	}

	if err := display.Sync(); err != nil {
		return 0, fmt.Errorf("failed to synchronize with X display: %w", err)
	}

	return id, nil
}
