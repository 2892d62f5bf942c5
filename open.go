package flirone

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/openthermal/flirone/usbhost"
)

// Open locates the camera on the given host stack, claims every
// interface of its active configuration, resolves the endpoint
// topology and returns a bound Session. On any failure the device
// handle is closed and no Session is returned.
func Open(stack usbhost.Stack, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	handle, err := stack.OpenVIDPID(VendorID, ProductID)
	if err != nil {
		if errors.Is(err, usbhost.ErrNoDevice) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("flirone: open device: %w", err)
	}

	session, err := bind(handle, logger)
	if err != nil {
		_ = handle.Close()
		return nil, err
	}
	logger.Info("device bound", "vid", fmt.Sprintf("%04x", VendorID), "pid", fmt.Sprintf("%04x", ProductID))
	return session, nil
}

func bind(handle usbhost.DeviceHandle, logger *slog.Logger) (*Session, error) {
	interfaces, err := handle.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("flirone: enumerate interfaces: %w", err)
	}

	binder := NewBinder(handle, logger)
	for _, intf := range interfaces {
		if err := handle.ClaimInterface(intf.Number); err != nil {
			return nil, &InterfaceClaimError{Number: intf.Number, Err: err}
		}
		for _, ep := range intf.Endpoints {
			if err := binder.Add(ep); err != nil {
				return nil, err
			}
		}
	}
	return binder.Bind()
}
