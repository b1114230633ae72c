package wav

import (
	"encoding/binary"
	"io"

	// Packages
	errors "github.com/djthorpe/go-errors"
	audio "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Writer wraps signed 16-bit little-endian mono PCM bytes into a WAV
// container. The header is finalised on Close, which does not close the
// underlying writer
type Writer struct {
	encoder *wav.Encoder
	format  *audio.Format
	samples int
	partial []byte
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	BitDepth    = 16
	NumChannels = 1
	pcmFormat   = 1
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new mono WAV writer with 16-bit signed integer samples
func NewWriter(w io.WriteSeeker, sampleRate int) (*Writer, error) {
	if w == nil {
		return nil, errors.ErrBadParameter.With("writer")
	} else if sampleRate <= 0 {
		return nil, errors.ErrBadParameter.Withf("sample rate %d", sampleRate)
	}
	return &Writer{
		encoder: wav.NewEncoder(w, sampleRate, BitDepth, NumChannels, pcmFormat),
		format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: NumChannels,
		},
	}, nil
}

// Close writes any pending header and sets the chunk sizes. A trailing odd
// byte is discarded
func (w *Writer) Close() error {
	if w.samples == 0 {
		// Ensure the header is written even when there are no samples
		if err := w.encoder.Write(w.buffer(nil)); err != nil {
			return err
		}
	}
	return w.encoder.Close()
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write encodes PCM bytes, which may be split at any point
func (w *Writer) Write(data []byte) (int, error) {
	n := len(data)
	if len(w.partial) > 0 {
		data = append(w.partial, data...)
		w.partial = nil
	}

	// Keep any odd byte for the next write
	if len(data)%2 == 1 {
		w.partial = []byte{data[len(data)-1]}
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return n, nil
	}

	// Convert to samples
	samples := make([]int, len(data)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(data[i*2:])))
	}
	if err := w.encoder.Write(w.buffer(samples)); err != nil {
		return 0, err
	}
	w.samples += len(samples)

	// Return success
	return n, nil
}

// Samples returns the number of samples written
func (w *Writer) Samples() int {
	return w.samples
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (w *Writer) buffer(samples []int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format:         w.format,
		Data:           samples,
		SourceBitDepth: BitDepth,
	}
}
