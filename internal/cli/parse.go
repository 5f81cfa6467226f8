package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	nan "github.com/shabbyrobe/go-nan"
)

// parseValue accepts either a raw bit pattern with a 0x prefix, or anything
// strconv.ParseFloat understands ("NaN", "-Inf", "1.5e3").
func parseValue(s string) (float64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid bit pattern %q", s)
		}
		return nan.FromBits(u), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	return f, nil
}

// parsePayload accepts any base strconv recognises by prefix. Values above
// nan.MaxPayload are accepted here; Make reports and drops them.
func parsePayload(s string) (uint64, error) {
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid payload %q", s)
	}
	return u, nil
}
