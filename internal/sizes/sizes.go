// Package sizes parses human-readable byte-size literals such as "10KB" or
// "5MiB" into byte counts.
//
// Decimal suffixes (k, kB, MB, ...) are base-1000, binary suffixes (Ki, KiB,
// MiB, ...) are base-1024. Suffixes are matched case-insensitively, so "kb",
// "KB" and "kB" are equivalent. A literal without a suffix is a raw byte count.
package sizes

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Units maps every supported (lower-cased) unit suffix to its multiplier.
// Units beyond exa cannot be represented as a signed 64-bit byte count and
// are not supported.
//
//nolint:gochecknoglobals,mnd
var Units = map[string]uint64{
	"":  1,
	"b": 1,

	"k":  humanize.KByte,
	"kb": humanize.KByte,
	"m":  humanize.MByte,
	"mb": humanize.MByte,
	"g":  humanize.GByte,
	"gb": humanize.GByte,
	"t":  humanize.TByte,
	"tb": humanize.TByte,
	"p":  humanize.PByte,
	"pb": humanize.PByte,
	"e":  humanize.EByte,
	"eb": humanize.EByte,

	"ki":  humanize.KiByte,
	"kib": humanize.KiByte,
	"mi":  humanize.MiByte,
	"mib": humanize.MiByte,
	"gi":  humanize.GiByte,
	"gib": humanize.GiByte,
	"ti":  humanize.TiByte,
	"tib": humanize.TiByte,
	"pi":  humanize.PiByte,
	"pib": humanize.PiByte,
	"ei":  humanize.EiByte,
	"eib": humanize.EiByte,
}

const magnitudeChars = "0123456789.,"

// Parse returns the number of bytes described by a size literal. The decimal
// magnitude may be fractional ("1.5KiB"), in which case the result is
// truncated to whole bytes. Whitespace around the literal and between the
// magnitude and the suffix is ignored.
func Parse(text string) (int64, error) {
	literal := strings.TrimSpace(text)

	suffix := strings.ToLower(strings.TrimSpace(strings.TrimLeft(literal, magnitudeChars)))
	if _, ok := Units[suffix]; !ok {
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrMalformed, suffix, text)
	}

	size, err := humanize.ParseBigBytes(literal)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformed, text, err)
	}

	if !size.IsInt64() {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, text)
	}

	return size.Int64(), nil
}
