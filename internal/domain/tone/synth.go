package tone

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	// SampleRate is the fixed output rate for synthesized tones.
	SampleRate = 44100

	bitsPerSample = 16
	numChannels   = 1
	headerSize    = 44

	fadeFraction = 0.02
)

// Synthesize renders a sine wave at the given frequency and duration into a
// complete WAV file: 44-byte RIFF header plus 16-bit mono little-endian PCM
// at 44100 Hz. A linear fade over the first and last 2% of samples removes
// the click a hard waveform edge would produce. The output is a pure
// function of (frequency, duration).
func Synthesize(frequency, duration float64) []byte {
	totalSamples := int(math.Round(duration * SampleRate))
	dataLen := totalSamples * (bitsPerSample / 8) * numChannels

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+dataLen))
	writeHeader(buf, dataLen)

	for i := 0; i < totalSamples; i++ {
		raw := math.Sin(2 * math.Pi * frequency * float64(i) / SampleRate)
		scaled := raw * 32767 * fadeEnvelope(i, totalSamples)

		v := math.Round(scaled)
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}

		binary.Write(buf, binary.LittleEndian, int16(v))
	}

	return buf.Bytes()
}

// fadeEnvelope returns the gain for sample i, ramping linearly from silence
// at both edges of the waveform. The fade window is 2% of the total, at
// least one sample and at most half the waveform.
func fadeEnvelope(i, totalSamples int) float64 {
	if totalSamples <= 0 {
		return 1.0
	}

	fade := int(math.Ceil(float64(totalSamples) * fadeFraction))
	if fade > totalSamples/2 {
		fade = totalSamples / 2
	}
	if fade < 1 {
		fade = 1
	}

	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= totalSamples-fade:
		return float64(totalSamples-1-i) / float64(fade)
	default:
		return 1.0
	}
}

// writeHeader emits the canonical 44-byte RIFF/WAVE header for a PCM chunk
// of dataLen bytes. All multi-byte fields are little-endian.
func writeHeader(buf *bytes.Buffer, dataLen int) {
	byteRate := SampleRate * numChannels * (bitsPerSample / 8)
	blockAlign := numChannels * (bitsPerSample / 8)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // PCM chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataLen))
}
