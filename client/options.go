package client

import "encoding/binary"

// Options configures Connect. Zero value is never used directly; see
// defaultOptions.
type Options struct {
	logger          Logger
	order           binary.ByteOrder
	bigRequests     bool
	readBufferHint  int
	atomCacheSize   int
}

func defaultOptions() *Options {
	return &Options{
		logger:         noopLogger{},
		order:          binary.LittleEndian,
		bigRequests:    false,
		readBufferHint: 4096,
		atomCacheSize:  256,
	}
}

// Option configures a Client at Connect time.
type Option func(*Options)

// WithLogger installs a Logger. A nil logger is treated as WithLogger not
// having been called (the no-op default is kept).
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithByteOrder forces the wire byte order the client announces in its
// handshake and uses thereafter. Real X11 clients always use host order;
// this option exists mainly so tests can exercise both orders against a
// fake server.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.order = order }
}

// WithBigRequests enables negotiating the BIG-REQUESTS extension during
// Connect. The request encoders always write the 16-bit length field and
// never the extended form, so requests stay limited to 65535 words.
func WithBigRequests(enabled bool) Option {
	return func(o *Options) { o.bigRequests = enabled }
}

// WithReadBufferHint sizes the reader goroutine's initial scratch buffer.
// It is only a hint: the buffer grows to fit oversized replies.
func WithReadBufferHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.readBufferHint = n
		}
	}
}

// WithAtomCacheSize bounds the InternAtom name cache. A size of 0 disables
// the cache entirely.
func WithAtomCacheSize(n int) Option {
	return func(o *Options) { o.atomCacheSize = n }
}
