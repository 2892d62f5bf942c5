// Package flirone implements the channel-role resolver and session
// protocol for the FLIR One thermal camera.
//
// The device multiplexes three logical channels over six bulk
// endpoints of one USB device: device configuration, file transfer and
// live video frames. Endpoint numbers are fixed by the device
// protocol, so classification is a pure lookup on (direction, number).
// Before bulk I/O on a channel is meaningful the channel has to be
// armed with a vendor control transfer; Session tracks that state.
package flirone

import (
	"fmt"
	"time"

	"github.com/openthermal/flirone/usbhost"
)

// USB identity of the FLIR One camera. The resolver refuses to bind
// any other device.
const (
	VendorID  uint16 = 0x09CB
	ProductID uint16 = 0x1996
)

// Vendor control transfer used to arm or disarm a channel:
// bmRequestType 0x01 (host-to-device, vendor, interface recipient),
// bRequest 11, wValue 1 to start or 0 to stop, wIndex the channel's
// protocol index, no data stage.
const (
	toggleRequestType uint8 = 0x01
	toggleRequest     uint8 = 11
)

// Transfer timeouts. Bulk payloads may need the sensor to finish a
// capture cycle, hence the much longer bulk timeout.
const (
	ControlTimeout = 1 * time.Second
	BulkTimeout    = 30 * time.Second
)

// Empirical transfer capacities for this device model. Reads may
// return fewer bytes; there is no length header on this layer.
const (
	ConfigBufferSize = 4096
	FrameBufferSize  = 131072
)

// Channel is one of the three logical data paths multiplexed over the
// device's endpoints.
type Channel int

const (
	Config Channel = iota
	FileIO
	Frame

	numChannels
)

func (c Channel) String() string {
	switch c {
	case Config:
		return "config"
	case FileIO:
		return "fileio"
	case Frame:
		return "frame"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Index returns the wIndex value identifying the channel in vendor
// control transfers.
func (c Channel) Index() uint16 {
	return uint16(c)
}

// ParseChannel maps a channel name (as printed by String) back to its
// Channel value.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "config":
		return Config, nil
	case "fileio":
		return FileIO, nil
	case "frame":
		return Frame, nil
	default:
		return 0, fmt.Errorf("flirone: unknown channel %q", s)
	}
}

type endpointKey struct {
	dir    usbhost.Direction
	number int
}

// endpointRoles is the protocol's fixed endpoint-number contract:
// IN 1/3/5 and OUT 2/4/6 carry Config, FileIO and Frame respectively.
var endpointRoles = map[endpointKey]Channel{
	{usbhost.DirIn, 1}:  Config,
	{usbhost.DirOut, 2}: Config,
	{usbhost.DirIn, 3}:  FileIO,
	{usbhost.DirOut, 4}: FileIO,
	{usbhost.DirIn, 5}:  Frame,
	{usbhost.DirOut, 6}: Frame,
}

// ClassifyEndpoint resolves the channel an enumerated endpoint belongs
// to. ok is false for any (direction, number) outside the fixed
// six-endpoint topology.
func ClassifyEndpoint(dir usbhost.Direction, number int) (ch Channel, ok bool) {
	ch, ok = endpointRoles[endpointKey{dir, number}]
	return ch, ok
}
