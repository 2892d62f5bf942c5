package flirone

import (
	"fmt"
	"log/slog"

	"github.com/openthermal/flirone/usbhost"
)

// Binder accumulates enumerated endpoint descriptors into the six
// fixed channel slots (read and write per channel) and produces a
// Session only once every slot is filled. An incomplete binding can
// never escape as a usable Session.
type Binder struct {
	handle usbhost.DeviceHandle
	logger *slog.Logger
	slots  [numChannels][2]*usbhost.EndpointDesc
}

// NewBinder starts a binding for an open device handle. A nil logger
// defaults to slog.Default.
func NewBinder(handle usbhost.DeviceHandle, logger *slog.Logger) *Binder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Binder{handle: handle, logger: logger}
}

// Add classifies one enumerated endpoint into its channel slot.
// Endpoints outside the fixed topology return UnexpectedEndpointError;
// a slot seen twice is also a topology mismatch.
func (b *Binder) Add(ep usbhost.EndpointDesc) error {
	ch, ok := ClassifyEndpoint(ep.Direction, ep.Number)
	if !ok {
		return &UnexpectedEndpointError{Direction: ep.Direction, Number: ep.Number}
	}
	slot := &b.slots[ch][int(ep.Direction)]
	if *slot != nil {
		return fmt.Errorf("flirone: duplicate %s endpoint %d", ep.Direction, ep.Number)
	}
	d := ep
	*slot = &d
	b.logger.Debug("bound endpoint", "channel", ch.String(), "direction", ep.Direction.String(), "address", fmt.Sprintf("%#02x", ep.Address))
	return nil
}

// Bind verifies that all six slots are filled and returns the
// completed Session. The first unfilled slot is reported as a
// MissingEndpointError naming the channel and direction.
func (b *Binder) Bind() (*Session, error) {
	s := &Session{handle: b.handle, logger: b.logger}
	for ch := Config; ch < numChannels; ch++ {
		for _, dir := range []usbhost.Direction{usbhost.DirIn, usbhost.DirOut} {
			ep := b.slots[ch][int(dir)]
			if ep == nil {
				return nil, &MissingEndpointError{Channel: ch, Direction: dir}
			}
			if dir == usbhost.DirIn {
				s.endpoints[ch].in = *ep
			} else {
				s.endpoints[ch].out = *ep
			}
		}
	}
	return s, nil
}
