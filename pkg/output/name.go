package output

import (
	"fmt"
	"time"

	// Packages
	"github.com/google/uuid"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// NameFunc returns a file name, without extension, for a prefix
type NameFunc func(prefix string) string

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TimestampName returns names PREFIX_yyyy-M-d-H-m-s in local time, without
// zero padding. If clock is nil, the current time is used
func TimestampName(clock func() time.Time) NameFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(prefix string) string {
		t := clock()
		return fmt.Sprintf("%s_%d-%d-%d-%d-%d-%d", prefix, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
}

// UUIDName returns names PREFIX_uuid
func UUIDName() NameFunc {
	return func(prefix string) string {
		return prefix + "_" + uuid.NewString()
	}
}
