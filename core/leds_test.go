package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndicators(t *testing.T) {
	gpio := newFakeGPIO()
	ind := NewIndicators(gpio, [3]GPIOPin{13, 14, 15}, [2]GPIOPin{16, 17})
	require.NoError(t, ind.Configure())

	require.NoError(t, ind.ShowMode(LightSerial))
	require.Equal(t, map[GPIOPin]bool{13: false, 14: true, 15: false, 16: false, 17: false}, gpio.outputs)

	require.NoError(t, ind.ShowMode(LightNone))
	require.False(t, gpio.outputs[14])

	require.NoError(t, ind.ShowSlot(3))
	require.True(t, gpio.outputs[16])
	require.True(t, gpio.outputs[17])

	require.NoError(t, ind.ShowSlot(6))
	require.False(t, gpio.outputs[16])
	require.True(t, gpio.outputs[17])

	require.NoError(t, ind.ClearSlot())
	require.False(t, gpio.outputs[16])
	require.False(t, gpio.outputs[17])
}
