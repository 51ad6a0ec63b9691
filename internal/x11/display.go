package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/borttappat/Hydrix/internal/clickthrough"
)

// Display wraps an xgbutil connection to one X server session
type Display struct {
	XUtil *xgbutil.XUtil

	shapeReady bool
}

var _ clickthrough.Display = (*Display)(nil)

// OpenDisplay connects to the named X display; the empty string selects the
// display from the environment (DISPLAY, XAUTHORITY)
func OpenDisplay(display string) (*Display, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, err
	}

	return &Display{XUtil: xu}, nil
}

// SupportsShape reports whether the server advertises the SHAPE extension.
// A true result also registers the extension on the connection, which the
// shape requests below require
func (d *Display) SupportsShape() bool {
	if d.shapeReady {
		return true
	}
	if err := shape.Init(d.XUtil.Conn()); err != nil {
		return false
	}
	d.shapeReady = true
	return true
}

// ClearInputShape replaces the window's input shape with the empty region,
// so the window accepts no pointer or keyboard events anywhere
func (d *Display) ClearInputShape(id clickthrough.WindowID) error {
	if !d.shapeReady {
		return fmt.Errorf("SHAPE extension not initialized")
	}

	// Set semantics with an empty YXBanded rectangle list and zero offset
	return shape.RectanglesChecked(
		d.XUtil.Conn(),
		shape.SoSet,
		shape.SkInput,
		xproto.ClipOrderingYXBanded,
		xproto.Window(id),
		0, 0,
		nil,
	).Check()
}

// ResetInputShape removes the input-shape override by combining with a None
// source bitmap; the server reverts the window to its default input region
func (d *Display) ResetInputShape(id clickthrough.WindowID) error {
	if !d.shapeReady {
		return fmt.Errorf("SHAPE extension not initialized")
	}

	return shape.MaskChecked(
		d.XUtil.Conn(),
		shape.SoSet,
		shape.SkInput,
		xproto.Window(id),
		0, 0,
		xproto.PixmapNone,
	).Check()
}

// Sync performs a GetInputFocus round trip, the standard way to guarantee
// every queued request has been processed by the server
func (d *Display) Sync() error {
	_, err := xproto.GetInputFocus(d.XUtil.Conn()).Reply()
	return err
}

// Close disconnects from the X server
func (d *Display) Close() {
	d.XUtil.Conn().Close()
}
