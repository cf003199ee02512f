package client

import "github.com/op/go-logging"

// Logger is the minimal logging surface the client needs. Passing nil to
// WithLogger (or omitting the option) disables logging entirely rather
// than panicking on a nil receiver.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// noopLogger satisfies Logger without emitting anything; it is the
// default when no WithLogger option is given.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

// GoLoggingAdapter wraps a *logging.Logger from github.com/op/go-logging
// to satisfy Logger.
type GoLoggingAdapter struct {
	L *logging.Logger
}

// NewGoLoggingAdapter returns a Logger backed by a go-logging logger
// registered under module.
func NewGoLoggingAdapter(module string) *GoLoggingAdapter {
	return &GoLoggingAdapter{L: logging.MustGetLogger(module)}
}

func (a *GoLoggingAdapter) Debugf(format string, args ...interface{}) { a.L.Debugf(format, args...) }
func (a *GoLoggingAdapter) Infof(format string, args ...interface{})  { a.L.Infof(format, args...) }
func (a *GoLoggingAdapter) Errorf(format string, args ...interface{}) { a.L.Errorf(format, args...) }
