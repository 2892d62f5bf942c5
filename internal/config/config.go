// Package config defines the kong CLI surface of the flirone tool.
package config

import (
	"github.com/openthermal/flirone/internal/cmd"
)

// LogConfig groups the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"FLIRONE_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"FLIRONE_LOG_FILE"`
	RawFile string `help:"Hex-dump raw USB bulk transfers to this file" env:"FLIRONE_LOG_RAW_FILE"`
}

// CLI is the root command structure parsed by kong.
type CLI struct {
	ConfigPath string    `name:"config" help:"Path to a config file (JSON, YAML or TOML)" env:"FLIRONE_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Probe     cmd.Probe         `cmd:"" help:"Enumerate the camera and report the resolved channel topology"`
	Capture   cmd.Capture       `cmd:"" help:"Connect to the camera and capture raw frame payloads"`
	Toggle    cmd.Toggle        `cmd:"" help:"Manually arm or disarm a single channel"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}
