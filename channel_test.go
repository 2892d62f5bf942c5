package flirone_test

import (
	"testing"

	"github.com/openthermal/flirone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNamesRoundTrip(t *testing.T) {
	for _, ch := range []flirone.Channel{flirone.Config, flirone.FileIO, flirone.Frame} {
		parsed, err := flirone.ParseChannel(ch.String())
		require.NoError(t, err)
		assert.Equal(t, ch, parsed)
	}

	_, err := flirone.ParseChannel("video")
	assert.Error(t, err)
}

func TestChannelProtocolIndex(t *testing.T) {
	assert.Equal(t, uint16(0), flirone.Config.Index())
	assert.Equal(t, uint16(1), flirone.FileIO.Index())
	assert.Equal(t, uint16(2), flirone.Frame.Index())
}
