package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
)

const (
	K = uint64(1000)
	M = 1000 * K
	G = 1000 * M
	T = 1000 * G

	Ki = uint64(1024)
	Mi = 1024 * Ki
	Gi = 1024 * Mi
	Ti = 1024 * Gi

	invalidSizeError = "invalid size: %s"
)

var unitMap = map[string]uint64{
	"ki":  Ki,
	"kib": Ki,
	"mi":  Mi,
	"mib": Mi,
	"gi":  Gi,
	"gib": Gi,
	"ti":  Ti,
	"tib": Ti,
	"b":   1,
	"k":   K,
	"kb":  K,
	"m":   M,
	"mb":  M,
	"g":   G,
	"gb":  G,
	"t":   T,
	"tb":  T,
}

// MemorySize is a byte count that can be written in a config file with a
// unit suffix, like "512KiB" or "10MB". Sampling rates are byte counts, so
// they use this type.
type MemorySize uint64

var sizeRe = regexp.MustCompile(`^\s*(?P<number>[0-9\._]+)(?P<unit>[a-zA-Z]*)\s*$`)

// We accept floating point specifications but convert them ultimately to a uint64.
func (m *MemorySize) UnmarshalText(text []byte) error {
	txt := string(text)

	matches := sizeRe.FindStringSubmatch(strings.ToLower(txt))
	if matches == nil {
		return fmt.Errorf(invalidSizeError, txt)
	}

	number, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return fmt.Errorf(invalidSizeError, txt)
	}
	unit := matches[2]

	// No unit means bytes
	if unit == "" {
		*m = MemorySize(number)
		return nil
	}
	scalar, ok := unitMap[unit]
	if !ok {
		return fmt.Errorf(invalidSizeError, txt)
	}
	*m = MemorySize(number * float64(scalar))
	return nil
}

func (m MemorySize) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(m), 10)), nil
}

// Make sure we implement flags.Unmarshaler so it works as a command line flag too.
var _ flags.Unmarshaler = (*MemorySize)(nil)

func (m *MemorySize) UnmarshalFlag(value string) error {
	return m.UnmarshalText([]byte(value))
}
