package bigcoll

import (
	"io"
)

// streamBufSize is the flat-buffer batch size used when moving bytes
// between chunked containers and streams.
const streamBufSize = 32 * 1024

// ByteReader adapts any Indexed[byte] container to io.Reader and
// io.WriterTo, reading the container's contents from the front as a byte
// stream. The source must not be modified while the reader is in use.
type ByteReader struct {
	src Indexed[byte]
	pos int64
}

// NewByteReader creates a reader positioned at the start of src.
func NewByteReader(src Indexed[byte]) *ByteReader {
	return &ByteReader{src: src}
}

// Read fills p with the next bytes of the container, returning io.EOF once
// the container is exhausted.
func (r *ByteReader) Read(p []byte) (int, error) {
	remaining := r.src.Count() - r.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	n := min(int64(len(p)), remaining)
	if err := r.copyOut(p[:n]); err != nil {
		return 0, err
	}
	r.pos += n
	return int(n), nil
}

// copyOut moves len(p) bytes starting at the cursor into p, using the
// chunk-aligned bulk copy when the source is a concrete container and
// falling back to per-element access for other Indexed sources.
func (r *ByteReader) copyOut(p []byte) error {
	switch src := r.src.(type) {
	case *Array[byte]:
		return src.CopyToSlice(p, r.pos, int64(len(p)))
	case *List[byte]:
		return src.CopyToSlice(p, r.pos, int64(len(p)))
	default:
		for i := range p {
			v, err := r.src.Get(r.pos + int64(i))
			if err != nil {
				return err
			}
			p[i] = v
		}
		return nil
	}
}

// WriteTo streams the remaining container contents into w in flat-buffer
// batches.
func (r *ByteReader) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, streamBufSize)
	var written int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

// ByteWriter adapts a List[byte] to io.Writer and io.ReaderFrom, appending
// every written byte to the list.
type ByteWriter struct {
	list *List[byte]
}

// NewByteWriter creates a writer that appends to list.
func NewByteWriter(list *List[byte]) *ByteWriter {
	return &ByteWriter{list: list}
}

// Write appends p to the list. The only failure mode is the list reaching
// its global maximum count.
func (w *ByteWriter) Write(p []byte) (int, error) {
	if err := w.list.AddSlice(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadFrom appends the entire contents of r to the list in flat-buffer
// batches.
func (w *ByteWriter) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, streamBufSize)
	var read int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if aerr := w.list.AddSlice(buf[:n]); aerr != nil {
				return read, aerr
			}
			read += int64(n)
		}
		if err == io.EOF {
			return read, nil
		}
		if err != nil {
			return read, err
		}
	}
}
