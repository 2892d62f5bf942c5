package usbhost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// LibusbStack is the production Stack backed by libusb via gousb.
type LibusbStack struct {
	ctx *gousb.Context
}

// NewLibusbStack initializes a libusb context. Callers own the stack
// and must Close it after every handle opened from it is closed.
func NewLibusbStack() *LibusbStack {
	return &LibusbStack{ctx: gousb.NewContext()}
}

func (s *LibusbStack) Close() error {
	return s.ctx.Close()
}

// OpenVIDPID opens the first matching device and selects its active
// configuration. The kernel driver, if any, is detached automatically
// while interfaces are claimed.
func (s *LibusbStack) OpenVIDPID(vid, pid uint16) (DeviceHandle, error) {
	dev, err := s.ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		return nil, fmt.Errorf("usbhost: open %04x:%04x: %w", vid, pid, err)
	}
	if dev == nil {
		return nil, ErrNoDevice
	}
	if err := dev.SetAutoDetach(true); err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("usbhost: set auto-detach: %w", err)
	}

	num, err := dev.ActiveConfigNum()
	if err != nil {
		num = 1
	}
	cfg, err := dev.Config(num)
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("usbhost: select configuration %d: %w", num, err)
	}

	return &libusbDevice{
		dev:     dev,
		cfg:     cfg,
		claimed: make(map[int]*gousb.Interface),
	}, nil
}

type libusbDevice struct {
	dev     *gousb.Device
	cfg     *gousb.Config
	claimed map[int]*gousb.Interface
}

func (d *libusbDevice) Interfaces() ([]InterfaceDesc, error) {
	var out []InterfaceDesc
	for _, intf := range d.cfg.Desc.Interfaces {
		if len(intf.AltSettings) == 0 {
			continue
		}
		// Alternate settings other than 0 are never selected by this
		// driver.
		alt := intf.AltSettings[0]
		id := InterfaceDesc{Number: intf.Number}
		for _, ep := range alt.Endpoints {
			dir := DirOut
			if ep.Direction == gousb.EndpointDirectionIn {
				dir = DirIn
			}
			id.Endpoints = append(id.Endpoints, EndpointDesc{
				Address:   uint8(ep.Address),
				Direction: dir,
				Number:    ep.Number,
			})
		}
		out = append(out, id)
	}
	return out, nil
}

func (d *libusbDevice) ClaimInterface(number int) error {
	if _, ok := d.claimed[number]; ok {
		return nil
	}
	intf, err := d.cfg.Interface(number, 0)
	if err != nil {
		return fmt.Errorf("usbhost: claim interface %d: %w", number, err)
	}
	d.claimed[number] = intf
	return nil
}

func (d *libusbDevice) Control(bmRequestType, bRequest uint8, wValue, wIndex uint16, data []byte, timeout time.Duration) (int, error) {
	d.dev.ControlTimeout = timeout
	return d.dev.Control(bmRequestType, bRequest, wValue, wIndex, data)
}

func (d *libusbDevice) Bulk(address uint8, buf []byte, timeout time.Duration) (int, error) {
	number := int(address & 0x0f)
	in := address&0x80 != 0

	intf, err := d.interfaceFor(address)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if in {
		ep, err := intf.InEndpoint(number)
		if err != nil {
			return 0, fmt.Errorf("usbhost: in endpoint %d: %w", number, err)
		}
		return ep.ReadContext(ctx, buf)
	}
	ep, err := intf.OutEndpoint(number)
	if err != nil {
		return 0, fmt.Errorf("usbhost: out endpoint %d: %w", number, err)
	}
	return ep.WriteContext(ctx, buf)
}

// interfaceFor locates the claimed interface exposing the endpoint
// with the given raw address.
func (d *libusbDevice) interfaceFor(address uint8) (*gousb.Interface, error) {
	for _, intf := range d.claimed {
		for _, ep := range intf.Setting.Endpoints {
			if uint8(ep.Address) == address {
				return intf, nil
			}
		}
	}
	return nil, fmt.Errorf("usbhost: endpoint %#02x is not on a claimed interface", address)
}

func (d *libusbDevice) Close() error {
	for _, intf := range d.claimed {
		intf.Close()
	}
	if err := d.cfg.Close(); err != nil {
		_ = d.dev.Close()
		return err
	}
	return d.dev.Close()
}
