// Package cmd holds the kong subcommands of the flirone tool.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/openthermal/flirone"
	"github.com/openthermal/flirone/usbhost"
)

// Probe opens the camera, claims its interfaces and resolves the
// channel topology without arming anything.
type Probe struct{}

// Run is called by Kong when the probe command is executed.
func (p *Probe) Run(logger *slog.Logger) error {
	stack := usbhost.NewLibusbStack()
	defer stack.Close()

	session, err := flirone.Open(stack, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	for _, ch := range []flirone.Channel{flirone.Config, flirone.FileIO, flirone.Frame} {
		in, out := session.Endpoints(ch)
		logger.Info("channel resolved",
			"channel", ch.String(),
			"index", ch.Index(),
			"in", fmt.Sprintf("%#02x", in.Address),
			"out", fmt.Sprintf("%#02x", out.Address))
	}
	return nil
}
