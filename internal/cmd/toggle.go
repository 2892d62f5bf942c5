package cmd

import (
	"log/slog"

	"github.com/openthermal/flirone"
	"github.com/openthermal/flirone/usbhost"
)

// Toggle arms or disarms one channel and exits. Meant for poking at
// the device while watching another tool or a bus trace.
type Toggle struct {
	Channel string `arg:"" help:"Channel to toggle" enum:"config,fileio,frame"`
	State   string `arg:"" help:"Desired state" enum:"on,off"`
}

// Run is called by Kong when the toggle command is executed.
func (t *Toggle) Run(logger *slog.Logger) error {
	ch, err := flirone.ParseChannel(t.Channel)
	if err != nil {
		return err
	}

	stack := usbhost.NewLibusbStack()
	defer stack.Close()

	session, err := flirone.Open(stack, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Toggle(ch, t.State == "on"); err != nil {
		return err
	}
	logger.Info("channel toggled", "channel", ch.String(), "state", t.State)
	return nil
}
