// Package rfcuuid implements Universally Unique Identifiers as defined by
// RFC 4122 and RFC 9562: the 128-bit value type and generators for versions
// 1, 3, 4, 5, 6 and 7.
//
// A UUID is the big-endian concatenation of six fields (time_low, time_mid,
// time_hi_and_version, clock_seq_hi_and_reserved, clock_seq_low, node).
// UUIDs order by that field tuple and can be used as map keys.
//
// Basic Usage:
//
//	// Random (version 4)
//	id, err := rfcuuid.NewV4()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Name-based, deterministic (version 3 and 5)
//	id = rfcuuid.NewV5(rfcuuid.NamespaceDNS, "www.example.com")
//
//	// Time-ordered (version 7)
//	id, err = rfcuuid.NewV7()
//
//	// Parse any of the accepted text forms
//	id, err = rfcuuid.Parse("{7d444840-9dc0-11d1-b245-5ffdce74fad2}")
//
//	// Render in another layout
//	s, err := id.Encode(rfcuuid.LayoutN)
//
// Custom Generator:
//
//	gen := rfcuuid.NewGenerator(
//	    rfcuuid.WithClock(func() time.Time { return fixed }),
//	    rfcuuid.WithClockSequence(rfcuuid.NewClockSequence(nil)),
//	    rfcuuid.WithRandAMode(rfcuuid.RandACounter),
//	)
//	id, err := gen.NewV6()
//
// Thread Safety:
//
// All operations are thread-safe. Versions 1 and 6 share a process-wide
// clock sequence unless a generator is given its own with WithClockSequence.
//
// Errors:
//
// Invalid input is reported with the sentinel errors ErrNullInput,
// ErrInvalidLength, ErrInvalidFormat and ErrTimeOutOfRange; use errors.Is to
// distinguish them. Time reports ErrInvalidVersion for versions without a
// timestamp. TryParse reports failure with a boolean instead.
package rfcuuid
