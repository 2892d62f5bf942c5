// Package usbhost defines the narrow surface of the USB host stack the
// driver depends on: open a device by VID/PID, claim interfaces,
// enumerate endpoint descriptors, and run blocking control and bulk
// transfers. The production implementation is backed by libusb via
// gousb; tests substitute in-memory fakes.
package usbhost

import (
	"errors"
	"time"
)

// ErrNoDevice is returned by Stack.OpenVIDPID when no attached device
// matches the requested vendor/product pair.
var ErrNoDevice = errors.New("usbhost: no matching device attached")

// Direction is the transfer direction of a single endpoint.
type Direction int

const (
	DirOut Direction = iota
	DirIn
)

func (d Direction) String() string {
	if d == DirIn {
		return "in"
	}
	return "out"
}

// EndpointDesc describes one enumerated endpoint. Address is the raw
// bEndpointAddress (direction bit included); Number is the endpoint
// number without the direction bit.
type EndpointDesc struct {
	Address   uint8
	Direction Direction
	Number    int
}

// InterfaceDesc lists the endpoints exposed by one interface of the
// active configuration.
type InterfaceDesc struct {
	Number    int
	Endpoints []EndpointDesc
}

// DeviceHandle is an open, exclusive handle to a USB device. All
// transfer calls block for at most the given timeout. The handle must
// outlive every EndpointDesc obtained from it.
type DeviceHandle interface {
	// Interfaces enumerates all interfaces of the active
	// configuration with their endpoint descriptors.
	Interfaces() ([]InterfaceDesc, error)

	// ClaimInterface claims the numbered interface for exclusive use.
	ClaimInterface(number int) error

	// Control performs a blocking control transfer on endpoint zero
	// and returns the number of data-stage bytes transferred.
	Control(bmRequestType, bRequest uint8, wValue, wIndex uint16, data []byte, timeout time.Duration) (int, error)

	// Bulk performs a blocking bulk transfer on the endpoint with the
	// given address. For IN endpoints buf is filled and the byte count
	// returned; short reads are not an error. For OUT endpoints buf is
	// sent.
	Bulk(address uint8, buf []byte, timeout time.Duration) (int, error)

	Close() error
}

// Stack is the entry point into the host USB stack.
type Stack interface {
	// OpenVIDPID opens the first device matching vendor/product.
	// Returns ErrNoDevice when nothing matches.
	OpenVIDPID(vid, pid uint16) (DeviceHandle, error)
}
