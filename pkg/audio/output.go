package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
)

// DefaultBlockSize is the number of frames rendered per voice call
const DefaultBlockSize = 512

// AudioReader implements io.Reader over a player, producing mono float32
// little-endian PCM one block at a time
type AudioReader struct {
	player *Player
	buffer []float32
	pos    int
}

// NewAudioReader creates an io.Reader that renders audio from p
func NewAudioReader(p *Player, blockSize int) *AudioReader {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &AudioReader{
		player: p,
		buffer: make([]float32, blockSize),
		pos:    blockSize,
	}
}

// Read implements io.Reader - generates audio samples
func (ar *AudioReader) Read(p []byte) (n int, err error) {
	for n+4 <= len(p) {
		if ar.pos >= len(ar.buffer) {
			ar.player.GenerateBlock(ar.buffer)
			ar.pos = 0
		}
		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(ar.buffer[ar.pos]))
		ar.pos++
		n += 4
	}
	return n, nil
}

// Render renders seconds of audio from p in blocks of blockSize frames
func Render(p *Player, seconds float64, blockSize int) *goaudio.Float32Buffer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	total := int(seconds * float64(p.SampleRate))
	if total < 0 {
		total = 0
	}
	buf := &goaudio.Float32Buffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: p.SampleRate},
		Data:           make([]float32, total),
		SourceBitDepth: 32,
	}
	for off := 0; off < total; off += blockSize {
		end := off + blockSize
		if end > total {
			end = total
		}
		p.GenerateBlock(buf.Data[off:end])
	}
	return buf
}

// WAVWriter writes audio to WAV format
type WAVWriter struct {
	writer      io.Writer
	sampleRate  int
	channels    int
	dataWritten int
}

// NewWAVWriter creates a WAV writer
func NewWAVWriter(w io.Writer, sampleRate, channels int) *WAVWriter {
	return &WAVWriter{
		writer:     w,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// WriteHeader writes the WAV header for dataSize bytes of 16-bit PCM
func (w *WAVWriter) WriteHeader(dataSize int) error {
	var h bytes.Buffer

	// RIFF header
	h.WriteString("RIFF")
	binary.Write(&h, binary.LittleEndian, uint32(dataSize+36))
	h.WriteString("WAVE")

	// fmt chunk
	h.WriteString("fmt ")
	binary.Write(&h, binary.LittleEndian, uint32(16))           // Chunk size
	binary.Write(&h, binary.LittleEndian, uint16(1))            // PCM format
	binary.Write(&h, binary.LittleEndian, uint16(w.channels))   // Channels
	binary.Write(&h, binary.LittleEndian, uint32(w.sampleRate)) // Sample rate
	byteRate := w.sampleRate * w.channels * 2
	binary.Write(&h, binary.LittleEndian, uint32(byteRate)) // Byte rate
	blockAlign := w.channels * 2
	binary.Write(&h, binary.LittleEndian, uint16(blockAlign)) // Block align
	binary.Write(&h, binary.LittleEndian, uint16(16))         // Bits per sample

	// data chunk header
	h.WriteString("data")
	binary.Write(&h, binary.LittleEndian, uint32(dataSize))

	_, err := w.writer.Write(h.Bytes())
	return err
}

// WriteSamples writes 16-bit PCM samples
func (w *WAVWriter) WriteSamples(samples []int) error {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s)))
	}
	n, err := w.writer.Write(out)
	w.dataWritten += n
	return err
}

// ToPCM16 scales a normalised float buffer into 16-bit integer samples,
// clipping to [-1, 1] first.
func ToPCM16(buf *goaudio.Float32Buffer) *goaudio.IntBuffer {
	scaled := &goaudio.Float32Buffer{
		Format:         buf.PCMFormat(),
		Data:           make([]float32, len(buf.Data)),
		SourceBitDepth: 16,
	}
	for i, s := range buf.Data {
		if s > 1.0 {
			s = 1.0
		}
		if s < -1.0 {
			s = -1.0
		}
		scaled.Data[i] = s * 32767
	}
	return scaled.AsIntBuffer()
}

// ExportWAV writes a rendered buffer as a 16-bit WAV file
func ExportWAV(w io.Writer, buf *goaudio.Float32Buffer) error {
	if buf == nil || buf.PCMFormat() == nil {
		return errors.New("wav: buffer has no format")
	}
	pcm := ToPCM16(buf)
	f := pcm.PCMFormat()
	ww := NewWAVWriter(w, f.SampleRate, f.NumChannels)
	if err := ww.WriteHeader(pcm.NumFrames() * f.NumChannels * pcm.SourceBitDepth / 8); err != nil {
		return err
	}
	return ww.WriteSamples(pcm.Data)
}
