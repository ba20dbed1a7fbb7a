package terminal

import (
	"context"
	"io"
	"sync"
	"time"
)

// escapeTimeout is how long a lone ESC waits for the rest of a sequence
// before it is reported as the Escape key.
const escapeTimeout = 50 * time.Millisecond

type keyResult struct {
	key Key
	err error
}

type chunk struct {
	data []byte
	err  error
}

// Reader decodes key presses from an input stream. A read goroutine owns the
// blocking Read so callers can bound their wait with a context; a decode
// goroutine keeps partial sequences across reads.
type Reader struct {
	src        io.Reader
	keys       chan keyResult
	start      sync.Once
	err        error // set before keys is closed
	escTimeout time.Duration
}

// NewReader wraps src. The pump starts on the first ReadKey call.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, keys: make(chan keyResult, 32), escTimeout: escapeTimeout}
}

// ReadKey blocks until a key is available, the source fails, or ctx is done.
// After the source fails every call returns the same error.
func (r *Reader) ReadKey(ctx context.Context) (Key, error) {
	r.start.Do(func() { go r.pump() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.keys:
		if !ok {
			return "", r.err
		}
		if res.err != nil {
			return "", res.err
		}
		return res.key, nil
	}
}

func (r *Reader) pump() {
	defer close(r.keys)

	chunks := make(chan chunk)
	go r.read(chunks)

	var dec Decoder
	var timeout <-chan time.Time
	for {
		select {
		case c := <-chunks:
			r.emit(dec.Feed(c.data))
			if c.err != nil {
				r.emit(dec.Flush())
				r.err = c.err
				r.keys <- keyResult{err: c.err}
				return
			}
		case <-timeout:
			r.emit(dec.Flush())
		}
		timeout = nil
		if dec.Pending() {
			timeout = time.After(r.escTimeout)
		}
	}
}

func (r *Reader) emit(keys []Key) {
	for _, k := range keys {
		r.keys <- keyResult{key: k}
	}
}

func (r *Reader) read(out chan<- chunk) {
	buf := make([]byte, 256)
	for {
		n, err := r.src.Read(buf)
		if n == 0 && err == nil {
			continue
		}
		out <- chunk{data: append([]byte(nil), buf[:n]...), err: err}
		if err != nil {
			return
		}
	}
}
