package config

import (
	"fmt"
	"math"
)

// Count is capped so one dump line stays addressable with fixed-width
// fields; matches the historical 255 limit of the format.
const MaxCount = 255

// Options carries every user-controlled knob. It is built once by the CLI
// and passed by value into constructors; nothing here is ambient state.
type Options struct {
	// Count is the number of characters per dump line, 1..MaxCount.
	Count int
	// Ignore enables the raw-byte fallback for undecodable sequences.
	Ignore bool
	// Start skips this many characters of input before the first line.
	Start int64
	// Limit stops processing after this many characters.
	Limit int64
	// Reverse turns dump text back into character output.
	Reverse bool
	// Encoding names the active charset; empty means "from the locale".
	Encoding string
}

// Default returns the built-in option values: 8 characters per line,
// strict decoding, no skip, no limit.
func Default() Options {
	return Options{
		Count: 8,
		Limit: math.MaxInt64,
	}
}

// Unbounded reports whether no explicit limit was configured.
func (o Options) Unbounded() bool {
	return o.Limit == math.MaxInt64
}

// Validate rejects out-of-range numeric options. Any error here is a
// configuration error: fatal, reported before processing starts.
func (o Options) Validate() error {
	if o.Count < 1 {
		return fmt.Errorf("invalid argument '%d' for count", o.Count)
	}
	if o.Count > MaxCount {
		return fmt.Errorf("value for count too large (maximum %d)", MaxCount)
	}
	if o.Start < 0 {
		return fmt.Errorf("invalid argument '%d' for start", o.Start)
	}
	if o.Limit < 0 {
		return fmt.Errorf("invalid argument '%d' for limit", o.Limit)
	}
	return nil
}
