// Package mudio implements the low-level wire codec shared by every MUD
// section: big-endian integers, length-prefixed strings, and VAX F/D
// floating point, plus the abstract seekable stream the rest of the module
// reads and writes through.
package mudio

import (
	"io"

	"github.com/orcaman/writerseeker"
	"golang.org/x/xerrors"
)

// ErrTruncated is wrapped into errors returned when a stream ends before a
// section's declared size has been consumed.
var ErrTruncated = xerrors.New("mudio: truncated stream")

// Stream is the abstract byte stream the MUD codec operates on: something
// seekable and tellable that can be both read from and written to. A *os.File
// satisfies it directly; NewMemStream gives an in-memory one for tests and
// for callers that want to build a MUD image without touching disk.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

// Tell reports the stream's current offset, equivalent to C's ftell.
func Tell(s Stream) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// Rewind seeks the stream back to its start, equivalent to C's rewind.
func Rewind(s Stream) error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// memStream adapts writerseeker.WriterSeeker (write+seek, no Read) into a
// full Stream by tracking a read cursor separately, backed by the same
// growable buffer. writerseeker has no Read method, so reads are served
// directly from its internal bytes via BytesReader().
type memStream struct {
	ws  *writerseeker.WriterSeeker
	pos int64
}

// NewMemStream returns an in-memory Stream suitable for building a MUD image
// without a file on disk, or for round-trip tests. Grounded on
// github.com/orcaman/writerseeker, since bytes.Buffer alone has no Seek and
// Read, PeekCore and Fseek all rewind or seek within the stream.
func NewMemStream() Stream {
	return &memStream{ws: &writerseeker.WriterSeeker{}}
}

func (m *memStream) Write(p []byte) (int, error) {
	n, err := m.ws.Write(p)
	m.pos += int64(n)
	return n, err
}

func (m *memStream) Read(p []byte) (int, error) {
	buf := m.ws.BytesReader()
	if _, err := buf.Seek(m.pos, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := buf.Read(p)
	m.pos += int64(n)
	// Keep the writerseeker's own cursor in step, so Tell and later
	// writes see the position this read left behind.
	if _, serr := m.ws.Seek(m.pos, io.SeekStart); serr != nil {
		return n, serr
	}
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

func (m *memStream) Seek(offset int64, whence int) (int64, error) {
	pos, err := m.ws.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	m.pos = pos
	return pos, nil
}

var _ Stream = (*memStream)(nil)

// WrapTruncated wraps err in ErrTruncated if it is io.EOF or
// io.ErrUnexpectedEOF, leaving any other error (including nil)
// untouched. Exported so callers outside this package reading a
// length-prefixed payload with io.ReadFull (GenHistDat, GenArray) can
// report the same sentinel this package's own primitives do.
func WrapTruncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return xerrors.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
