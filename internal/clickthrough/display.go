package clickthrough

// Display is the part of an X server session the setter needs: one
// capability check, one input-shape request, one synchronization.
type Display interface {
	// SupportsShape reports whether the server advertises the SHAPE
	// extension and prepares it for use.
	SupportsShape() bool
	// ClearInputShape replaces the window's input shape with the empty
	// region, so every pointer and keyboard event falls through to
	// whatever is stacked beneath.
	ClearInputShape(id WindowID) error
	// ResetInputShape removes an installed input-shape override,
	// reverting the window to its default input region.
	ResetInputShape(id WindowID) error
	// Sync blocks until every queued request has reached the server.
	Sync() error
	// Close releases the connection.
	Close()
}

// ConnectFunc opens a connection to the display server. Implementations
// decide how the display is selected (environment, configuration).
type ConnectFunc func() (Display, error)
