package frame

import (
	"errors"
	"fmt"
	"io"
)

const headerLen = 6

// FramingError reports a malformed frame and its byte offset in the stream.
type FramingError struct {
	Offset int64
	Reason string
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("framing error at byte %d: %s", e.Offset, e.Reason)
}

// Reader splits a raw stream of back-to-back sync frames.
type Reader struct {
	r      io.Reader
	offset int64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// BytesRead reports how many bytes have been consumed so far.
func (r *Reader) BytesRead() int64 {
	return r.offset
}

// Next returns the next complete frame. A clean end of stream, meaning zero
// bytes available at a frame boundary, returns io.EOF. A frame cut short in
// any other way is a *FramingError, never treated as end of stream.
func (r *Reader) Next() (*Frame, error) {
	start := r.offset
	head := make([]byte, headerLen)
	n, err := io.ReadFull(r.r, head)
	r.offset += int64(n)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, &FramingError{Offset: start, Reason: "short header"}
	case err != nil:
		return nil, err
	}

	if head[0] != 0x0B || head[1] != 0x77 {
		return nil, &FramingError{Offset: start, Reason: "bad sync (expected 0x0B 0x77)"}
	}

	kind := KindEAC3
	var length int
	if bsid := head[5] >> 3; bsid < 10 {
		kind = KindAC3
		length = 2 * frameSizeWords[head[4]]
		if length == 0 {
			return nil, &FramingError{Offset: start, Reason: fmt.Sprintf("invalid frmsizecod %#02x", head[4])}
		}
	} else {
		length = 2*(256*int(head[2]&0x07)+int(head[3])) + 2
		if length < 10 {
			return nil, &FramingError{Offset: start, Reason: "invalid frmsiz"}
		}
	}

	data := make([]byte, length)
	copy(data, head)
	n, err = io.ReadFull(r.r, data[headerLen:])
	r.offset += int64(n)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &FramingError{Offset: start, Reason: "truncated frame"}
	}
	if err != nil {
		return nil, err
	}
	return &Frame{Kind: kind, Data: data}, nil
}
