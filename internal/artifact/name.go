package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is fixed width and zero padded, so for timestamps in the
// same zone string order equals time order. Names always use UTC.
const TimestampLayout = "2006-01-02T15-04-05"

const (
	fileExt     = ".txt"
	maxSequence = 999
)

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FileName builds "<kind>_<timestamp>.txt". A non-zero seq disambiguates
// artifacts created within the same second as "<kind>_<timestamp>_NNN.txt",
// which sorts after the plain name and before the next second.
func FileName(kind Kind, stamp string, seq int) string {
	if seq == 0 {
		return kind.Prefix() + stamp + fileExt
	}
	return fmt.Sprintf("%s%s_%03d%s", kind.Prefix(), stamp, seq, fileExt)
}

// ParseName extracts the kind and creation time from an artifact file name.
func ParseName(name string) (Kind, time.Time, error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	kind, rest, ok := strings.Cut(base, "_")
	if !ok || len(rest) < len(TimestampLayout) {
		return "", time.Time{}, fmt.Errorf("not an artifact name: %s", name)
	}

	created, err := time.Parse(TimestampLayout, rest[:len(TimestampLayout)])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parse timestamp in %s: %w", name, err)
	}

	return Kind(kind), created, nil
}
