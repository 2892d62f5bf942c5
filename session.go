package flirone

import (
	"log/slog"

	"github.com/openthermal/flirone/usbhost"
)

type channelEndpoints struct {
	in  usbhost.EndpointDesc
	out usbhost.EndpointDesc
}

// TraceFunc receives the raw bytes of every completed bulk transfer.
// in is true for device-to-host payloads.
type TraceFunc func(in bool, data []byte)

// Session is the live device: it exclusively owns the open handle and
// the three bound channels, and tracks which channels are armed. The
// model is single-shot and single-threaded; Session is not safe for
// concurrent use and there are no reconnect semantics.
type Session struct {
	handle    usbhost.DeviceHandle
	logger    *slog.Logger
	endpoints [numChannels]channelEndpoints

	// armed[Config] is never set: the protocol reads the config
	// channel without arming it first.
	armed     [numChannels]bool
	connected bool

	// Trace, when set, observes every bulk payload. Wire it to a raw
	// transfer logger for hex dumps.
	Trace TraceFunc
}

// Toggle arms (start=true) or disarms a channel via the vendor control
// transfer. The armed flag is updated only after the transfer
// succeeds, so a failed toggle leaves the session state untouched.
func (s *Session) Toggle(ch Channel, start bool) error {
	var value uint16
	if start {
		value = 1
	}
	if _, err := s.handle.Control(toggleRequestType, toggleRequest, value, ch.Index(), nil, ControlTimeout); err != nil {
		return &ControlTransferError{Channel: ch, Start: start, Err: err}
	}
	if ch != Config {
		s.armed[ch] = start
	}
	s.logger.Debug("toggled channel", "channel", ch.String(), "start", start)
	return nil
}

// Connect transitions the session to connected and arms the fileio
// channel. Calling Connect on a connected session is a no-op; frame
// streaming is not implied and must be armed separately.
func (s *Session) Connect() error {
	if s.connected {
		return nil
	}
	if err := s.Toggle(FileIO, true); err != nil {
		return err
	}
	s.connected = true
	return nil
}

// Disconnect disarms every armed channel and clears the connected
// latch. Disarming continues past failures; the first error is
// returned.
func (s *Session) Disconnect() error {
	var first error
	for ch := Config; ch < numChannels; ch++ {
		if !s.armed[ch] {
			continue
		}
		if err := s.Toggle(ch, false); err != nil && first == nil {
			first = err
		}
	}
	s.connected = false
	return first
}

// Read performs one bulk transfer on the channel's IN endpoint. Short
// reads are expected: payload sizes are not negotiated on this layer,
// so n may be anything up to len(buf).
func (s *Session) Read(ch Channel, buf []byte) (int, error) {
	n, err := s.handle.Bulk(s.endpoints[ch].in.Address, buf, BulkTimeout)
	if err != nil {
		return 0, &BulkTransferError{Channel: ch, Direction: usbhost.DirIn, Err: err}
	}
	if s.Trace != nil {
		s.Trace(true, buf[:n])
	}
	return n, nil
}

// Write performs one bulk transfer on the channel's OUT endpoint.
func (s *Session) Write(ch Channel, buf []byte) (int, error) {
	n, err := s.handle.Bulk(s.endpoints[ch].out.Address, buf, BulkTimeout)
	if err != nil {
		return 0, &BulkTransferError{Channel: ch, Direction: usbhost.DirOut, Err: err}
	}
	if s.Trace != nil {
		s.Trace(false, buf[:n])
	}
	return n, nil
}

// Armed reports whether the channel is currently armed. Config always
// reports false.
func (s *Session) Armed(ch Channel) bool { return s.armed[ch] }

// Connected reports whether Connect has completed.
func (s *Session) Connected() bool { return s.connected }

// Endpoints returns the bound IN and OUT endpoint descriptors of a
// channel, for diagnostics.
func (s *Session) Endpoints(ch Channel) (in, out usbhost.EndpointDesc) {
	return s.endpoints[ch].in, s.endpoints[ch].out
}

// Close releases the device handle. All endpoint descriptors obtained
// from the session are invalid afterwards.
func (s *Session) Close() error { return s.handle.Close() }
