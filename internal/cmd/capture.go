package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/openthermal/flirone"
	"github.com/openthermal/flirone/internal/log"
	"github.com/openthermal/flirone/usbhost"
)

// Capture connects to the camera, arms frame streaming and reads raw
// frame payloads. Payload parsing is out of scope; frames are dumped
// as received.
type Capture struct {
	Frames int    `help:"Number of frame payloads to read" default:"1" env:"FLIRONE_CAPTURE_FRAMES"`
	Output string `help:"Append raw frame payloads to this file" env:"FLIRONE_CAPTURE_OUTPUT"`
}

// Run is called by Kong when the capture command is executed.
func (c *Capture) Run(logger *slog.Logger, raw log.RawLogger) error {
	if c.Frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", c.Frames)
	}

	stack := usbhost.NewLibusbStack()
	defer stack.Close()

	session, err := flirone.Open(stack, logger)
	if err != nil {
		return err
	}
	defer session.Close()
	session.Trace = raw.Log

	if err := session.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := session.Disconnect(); err != nil {
			logger.Warn("disarming channels failed", "error", err)
		}
	}()

	if err := session.Toggle(flirone.Frame, true); err != nil {
		return err
	}

	// The device answers on the config channel once fileio is armed;
	// drain that handshake before expecting frames.
	handshake := make([]byte, flirone.ConfigBufferSize)
	n, err := session.Read(flirone.Config, handshake)
	if err != nil {
		return err
	}
	logger.Debug("config handshake received", "bytes", n)

	var out *os.File
	if c.Output != "" {
		out, err = os.OpenFile(c.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer out.Close()
	}

	buf := make([]byte, flirone.FrameBufferSize)
	for i := 0; i < c.Frames; i++ {
		n, err := session.Read(flirone.Frame, buf)
		if err != nil {
			return err
		}
		logger.Info("frame payload received", "frame", i+1, "bytes", n)
		if out != nil {
			if _, err := out.Write(buf[:n]); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}
		}
	}
	return nil
}
