package flirone_test

import (
	"errors"
	"time"

	"github.com/openthermal/flirone/usbhost"
)

// controlCall records the wire encoding of one control transfer.
type controlCall struct {
	bmRequestType uint8
	bRequest      uint8
	wValue        uint16
	wIndex        uint16
	timeout       time.Duration
}

var errTransferTimeout = errors.New("transfer timed out")

// fakeHandle is an in-memory usbhost.DeviceHandle simulating the
// camera's fixed six-endpoint topology.
type fakeHandle struct {
	interfaces []usbhost.InterfaceDesc

	controls   []controlCall
	controlErr error

	// bulk simulates one transfer on the given endpoint address.
	bulk func(address uint8, buf []byte) (int, error)

	claimed  []int
	claimErr error
	closed   bool
}

func (f *fakeHandle) Interfaces() ([]usbhost.InterfaceDesc, error) {
	return f.interfaces, nil
}

func (f *fakeHandle) ClaimInterface(number int) error {
	if f.claimErr != nil {
		return f.claimErr
	}
	f.claimed = append(f.claimed, number)
	return nil
}

func (f *fakeHandle) Control(bmRequestType, bRequest uint8, wValue, wIndex uint16, data []byte, timeout time.Duration) (int, error) {
	if f.controlErr != nil {
		return 0, f.controlErr
	}
	f.controls = append(f.controls, controlCall{bmRequestType, bRequest, wValue, wIndex, timeout})
	return 0, nil
}

func (f *fakeHandle) Bulk(address uint8, buf []byte, timeout time.Duration) (int, error) {
	if f.bulk == nil {
		return 0, errTransferTimeout
	}
	return f.bulk(address, buf)
}

func (f *fakeHandle) Close() error {
	f.closed = true
	return nil
}

// fakeStack hands out a single prepared handle.
type fakeStack struct {
	handle  *fakeHandle
	openErr error
}

func (f *fakeStack) OpenVIDPID(vid, pid uint16) (usbhost.DeviceHandle, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.handle, nil
}

func endpoint(dir usbhost.Direction, number int) usbhost.EndpointDesc {
	addr := uint8(number)
	if dir == usbhost.DirIn {
		addr |= 0x80
	}
	return usbhost.EndpointDesc{Address: addr, Direction: dir, Number: number}
}

// allEndpoints returns the camera's complete topology: IN 1/3/5 and
// OUT 2/4/6.
func allEndpoints() []usbhost.EndpointDesc {
	return []usbhost.EndpointDesc{
		endpoint(usbhost.DirIn, 1),
		endpoint(usbhost.DirOut, 2),
		endpoint(usbhost.DirIn, 3),
		endpoint(usbhost.DirOut, 4),
		endpoint(usbhost.DirIn, 5),
		endpoint(usbhost.DirOut, 6),
	}
}

// newFakeDevice builds a handle exposing the full topology on a single
// interface.
func newFakeDevice() *fakeHandle {
	return &fakeHandle{
		interfaces: []usbhost.InterfaceDesc{
			{Number: 0, Endpoints: allEndpoints()},
		},
	}
}
