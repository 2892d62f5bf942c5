package flirone

import (
	"errors"
	"fmt"

	"github.com/openthermal/flirone/usbhost"
)

// ErrDeviceNotFound is returned by Open when no device with the FLIR
// One vendor/product identity is attached.
var ErrDeviceNotFound = errors.New("flirone: device not found")

// InterfaceClaimError reports a failure to claim one of the device's
// interfaces during Open.
type InterfaceClaimError struct {
	Number int
	Err    error
}

func (e *InterfaceClaimError) Error() string {
	return fmt.Sprintf("flirone: claim interface %d: %v", e.Number, e.Err)
}

func (e *InterfaceClaimError) Unwrap() error { return e.Err }

// UnexpectedEndpointError reports an enumerated endpoint that does not
// belong to the device's fixed six-endpoint topology.
type UnexpectedEndpointError struct {
	Direction usbhost.Direction
	Number    int
}

func (e *UnexpectedEndpointError) Error() string {
	return fmt.Sprintf("flirone: unexpected %s endpoint %d", e.Direction, e.Number)
}

// MissingEndpointError reports a required channel endpoint that was
// never seen during enumeration. Binding never produces a partially
// usable session; the first missing slot fails the bind.
type MissingEndpointError struct {
	Channel   Channel
	Direction usbhost.Direction
}

func (e *MissingEndpointError) Error() string {
	return fmt.Sprintf("flirone: missing %s endpoint for %s channel", e.Direction, e.Channel)
}

// ControlTransferError reports a failed channel arming transfer. The
// armed flag of the channel is left unchanged on failure.
type ControlTransferError struct {
	Channel Channel
	Start   bool
	Err     error
}

func (e *ControlTransferError) Error() string {
	verb := "disarm"
	if e.Start {
		verb = "arm"
	}
	return fmt.Sprintf("flirone: %s %s channel: %v", verb, e.Channel, e.Err)
}

func (e *ControlTransferError) Unwrap() error { return e.Err }

// BulkTransferError reports a failed bulk read or write. Transfer
// failures do not tear down the session or change channel arming; the
// caller decides whether to retry, re-arm or abort.
type BulkTransferError struct {
	Channel   Channel
	Direction usbhost.Direction
	Err       error
}

func (e *BulkTransferError) Error() string {
	return fmt.Sprintf("flirone: bulk %s on %s channel: %v", e.Direction, e.Channel, e.Err)
}

func (e *BulkTransferError) Unwrap() error { return e.Err }
