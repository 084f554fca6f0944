package wire

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// MaxFrameSize bounds a single frame. Payloads are command or plan
// documents; anything larger than this is corruption, not data.
const MaxFrameSize = 64 << 20

// FrameWriter writes length-prefixed frames to a byte stream. Each
// frame is a uvarint payload length followed by the payload. The
// logical schema is the same JSON as the text form; only the framing
// differs.
type FrameWriter struct {
	w *bufio.Writer
}

// NewFrameWriter wraps w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: bufio.NewWriter(w)}
}

// WriteFrame writes one frame. The payload is not retained.
func (fw *FrameWriter) WriteFrame(payload []byte) error {
	if len(payload) > MaxFrameSize {
		return &EncodingError{Message: fmt.Sprintf("frame of %d bytes exceeds limit", len(payload))}
	}
	var head [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(head[:], uint64(len(payload)))
	if _, err := fw.w.Write(head[:n]); err != nil {
		return encodingErrorf(err, "write frame header")
	}
	if _, err := fw.w.Write(payload); err != nil {
		return encodingErrorf(err, "write frame payload")
	}
	return nil
}

// Flush pushes buffered frames to the underlying writer.
func (fw *FrameWriter) Flush() error {
	if err := fw.w.Flush(); err != nil {
		return encodingErrorf(err, "flush frames")
	}
	return nil
}

// FrameReader reads frames written by FrameWriter.
type FrameReader struct {
	r *bufio.Reader
}

// NewFrameReader wraps r.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r)}
}

// ReadFrame returns the next payload. At a clean end of stream it
// returns io.EOF; a stream that ends inside a frame fails with
// EncodingError, so truncation is never mistaken for completion.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	size, err := binary.ReadUvarint(fr.r)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, encodingErrorf(err, "read frame header")
	}
	if size > MaxFrameSize {
		return nil, &EncodingError{Message: fmt.Sprintf("frame of %d bytes exceeds limit", size)}
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		return nil, encodingErrorf(err, "read frame payload")
	}
	return payload, nil
}
