package flirone_test

import (
	"errors"
	"testing"

	"github.com/openthermal/flirone"
	"github.com/openthermal/flirone/usbhost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBindsCompleteDevice(t *testing.T) {
	handle := newFakeDevice()
	session, err := flirone.Open(&fakeStack{handle: handle}, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{0}, handle.claimed)
	assert.False(t, session.Connected())

	in, _ := session.Endpoints(flirone.Frame)
	assert.Equal(t, uint8(0x85), in.Address)
}

func TestOpenClaimsEveryInterface(t *testing.T) {
	// Endpoints spread over two interfaces, as the real device does.
	handle := &fakeHandle{
		interfaces: []usbhost.InterfaceDesc{
			{Number: 0, Endpoints: allEndpoints()[:2]},
			{Number: 1, Endpoints: allEndpoints()[2:]},
		},
	}

	session, err := flirone.Open(&fakeStack{handle: handle}, nil)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, []int{0, 1}, handle.claimed)
}

func TestOpenDeviceNotFound(t *testing.T) {
	_, err := flirone.Open(&fakeStack{openErr: usbhost.ErrNoDevice}, nil)
	assert.ErrorIs(t, err, flirone.ErrDeviceNotFound)
}

func TestOpenInterfaceClaimFailure(t *testing.T) {
	handle := newFakeDevice()
	handle.claimErr = errors.New("busy")

	session, err := flirone.Open(&fakeStack{handle: handle}, nil)

	assert.Nil(t, session)
	var claimErr *flirone.InterfaceClaimError
	require.ErrorAs(t, err, &claimErr)
	assert.Equal(t, 0, claimErr.Number)
	assert.True(t, handle.closed, "handle must be closed on bind failure")
}

func TestOpenIncompleteTopologyClosesHandle(t *testing.T) {
	handle := &fakeHandle{
		interfaces: []usbhost.InterfaceDesc{
			{Number: 0, Endpoints: allEndpoints()[:5]},
		},
	}

	session, err := flirone.Open(&fakeStack{handle: handle}, nil)

	assert.Nil(t, session)
	var missing *flirone.MissingEndpointError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, flirone.Frame, missing.Channel)
	assert.Equal(t, usbhost.DirOut, missing.Direction)
	assert.True(t, handle.closed)
}

func TestOpenUnexpectedEndpointClosesHandle(t *testing.T) {
	eps := append(allEndpoints(), endpoint(usbhost.DirIn, 7))
	handle := &fakeHandle{
		interfaces: []usbhost.InterfaceDesc{{Number: 0, Endpoints: eps}},
	}

	session, err := flirone.Open(&fakeStack{handle: handle}, nil)

	assert.Nil(t, session)
	var unexpected *flirone.UnexpectedEndpointError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, usbhost.DirIn, unexpected.Direction)
	assert.Equal(t, 7, unexpected.Number)
	assert.True(t, handle.closed)
}
