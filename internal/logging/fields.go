package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// Field is one structured key/value pair.
type Field struct {
	key  string
	kind byte
	s    string
	i    int64
	f    float64
	b    bool
	err  error
}

const (
	kindString byte = iota
	kindInt
	kindFloat
	kindBool
	kindDuration
	kindErr
)

func String(key, value string) Field       { return Field{key: key, kind: kindString, s: value} }
func Int(key string, value int) Field       { return Field{key: key, kind: kindInt, i: int64(value)} }
func Float(key string, value float64) Field { return Field{key: key, kind: kindFloat, f: value} }
func Bool(key string, value bool) Field     { return Field{key: key, kind: kindBool, b: value} }
func Err(err error) Field                   { return Field{key: "error", kind: kindErr, err: err} }

// Duration is logged in milliseconds.
func Duration(key string, d time.Duration) Field {
	return Field{key: key, kind: kindDuration, f: float64(d) / float64(time.Millisecond)}
}

// AddTo writes the field to an event.
func (f Field) AddTo(ev *zerolog.Event) {
	switch f.kind {
	case kindString:
		ev.Str(f.key, f.s)
	case kindInt:
		ev.Int64(f.key, f.i)
	case kindFloat, kindDuration:
		ev.Float64(f.key, f.f)
	case kindBool:
		ev.Bool(f.key, f.b)
	case kindErr:
		ev.AnErr(f.key, f.err)
	}
}

func (f Field) addToContext(c zerolog.Context) zerolog.Context {
	switch f.kind {
	case kindString:
		return c.Str(f.key, f.s)
	case kindInt:
		return c.Int64(f.key, f.i)
	case kindFloat, kindDuration:
		return c.Float64(f.key, f.f)
	case kindBool:
		return c.Bool(f.key, f.b)
	case kindErr:
		return c.AnErr(f.key, f.err)
	}
	return c
}
