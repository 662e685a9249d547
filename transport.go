package outboard

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Serializer converts between Go values and wire bytes. The default
// implementation uses MessagePack, which is what the runtime side of the
// pipe speaks.
type Serializer interface {
	// Marshal encodes a Go value to bytes.
	Marshal(v interface{}) ([]byte, error)

	// Unmarshal decodes bytes into a Go value.
	Unmarshal(data []byte, v interface{}) error
}

// Transport moves whole messages between the kernel service and the
// embedding runtime. Implementations own the framing; callers never see
// partial messages.
type Transport interface {
	// Send transmits one message to the remote endpoint.
	Send(data []byte) error

	// Receive reads one complete message from the remote endpoint.
	Receive() ([]byte, error)

	// Close releases transport resources and closes the underlying pipes.
	Close() error

	// Flush pushes any buffered data to the remote endpoint.
	Flush() error
}

// MsgpackSerializer is the default Serializer.
type MsgpackSerializer struct{}

func (MsgpackSerializer) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (MsgpackSerializer) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

// frameBufSize is the pooled buffer size; it must match the frame buffer
// size used by the runtime-side queue implementation.
const frameBufSize = 8192

// FrameTransport sends length-prefixed binary frames over a pipe pair: a
// 4-byte big-endian payload length followed by the payload itself.
type FrameTransport struct {
	reader io.ReadCloser
	writer io.WriteCloser
	pool   *BufferPool
}

// NewFrameTransport wraps a read/write pipe pair in the framing protocol.
func NewFrameTransport(reader io.ReadCloser, writer io.WriteCloser) *FrameTransport {
	return &FrameTransport{
		reader: reader,
		writer: writer,
		pool:   NewBufferPool(frameBufSize, 10),
	}
}

// Send writes the length prefix and payload, flushing after each so the
// peer never stalls on a half-delivered frame.
func (ft *FrameTransport) Send(data []byte) error {
	header := ft.pool.Get()[:4]
	binary.BigEndian.PutUint32(header, uint32(len(data)))

	_, err := ft.writer.Write(header)
	ft.pool.Put(header)
	if err != nil {
		return err
	}
	if err := ft.Flush(); err != nil {
		return err
	}

	// The header alone conveys an empty frame. A zero-length pipe write
	// blocks until the peer reads, and a zero-length ReadFull on the
	// other side never issues that read.
	if len(data) == 0 {
		return nil
	}

	if _, err := ft.writer.Write(data); err != nil {
		return err
	}
	return ft.Flush()
}

// Receive reads one frame. Frames no larger than the pool's buffer size are
// read through a pooled buffer; larger frames get a dedicated allocation.
func (ft *FrameTransport) Receive() ([]byte, error) {
	header := ft.pool.Get()[:4]
	if _, err := io.ReadFull(ft.reader, header); err != nil {
		ft.pool.Put(header)
		return nil, err
	}
	length := binary.BigEndian.Uint32(header)
	ft.pool.Put(header)

	if length <= frameBufSize {
		buf := ft.pool.Get()[:length]
		if _, err := io.ReadFull(ft.reader, buf); err != nil {
			ft.pool.Put(buf)
			return nil, err
		}
		// Copy out so the pooled buffer can be reused immediately.
		frame := make([]byte, length)
		copy(frame, buf)
		ft.pool.Put(buf)
		return frame, nil
	}

	frame := make([]byte, length)
	_, err := io.ReadFull(ft.reader, frame)
	return frame, err
}

// Close closes both ends of the pipe pair.
func (ft *FrameTransport) Close() error {
	return errors.Join(ft.reader.Close(), ft.writer.Close())
}

// Flush flushes the writer if it supports flushing.
func (ft *FrameTransport) Flush() error {
	if flusher, ok := ft.writer.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}
