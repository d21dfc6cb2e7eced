package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// ParseLookupArgs reads "MCC [MNC]" or the combined "MCC-MNC" / "MCCMNC" forms.
func ParseLookupArgs(c *cli.Context) (int, string, error) {
	if c.NArg() == 0 {
		return 0, "", fmt.Errorf("missing MCC argument")
	}

	first := c.Args().Get(0)
	mnc := c.Args().Get(1)
	mccText := first

	if mnc == "" {
		if i := strings.IndexAny(first, "-/"); i >= 0 {
			mccText, mnc = first[:i], first[i+1:]
		} else if len(first) > 3 {
			// PLMN form: three MCC digits followed by the MNC
			mccText, mnc = first[:3], first[3:]
		}
	}

	mcc, err := strconv.Atoi(mccText)
	if err != nil {
		return 0, "", fmt.Errorf("invalid MCC: %s", mccText)
	}
	return mcc, strings.ToLower(mnc), nil
}
