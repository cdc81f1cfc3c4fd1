package core

// ADCChannel identifies a logical analog input channel.
type ADCChannel uint8

// ADCValue is a conversion result scaled to 10 bits (0-1023).
type ADCValue uint16

// ADCMax is the largest value ReadRaw may return.
const ADCMax ADCValue = 1023

// ADCDriver is the abstract ADC interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for one-shot conversions
	ConfigureChannel(ch ADCChannel) error

	// ReadRaw performs a blocking conversion on the given channel.
	// Targets with wider converters scale the result down to 10 bits.
	ReadRaw(ch ADCChannel) (ADCValue, error)
}
