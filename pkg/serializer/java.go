package serializer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

// WriteJava emits Java member declarations: an int[][] of
// {mcc, mnc, countryIndex, networkIndex} rows plus the two lookup arrays
// the indices point into. Indices follow first appearance; an n/a MNC is -1.
func WriteJava(w io.Writer, records []models.CarrierRecord) error {
	var countries, networks []string
	countryIdx := map[string]int{}
	networkIdx := map[string]int{}
	indexOf := func(list *[]string, seen map[string]int, value string) int {
		if i, ok := seen[value]; ok {
			return i
		}
		seen[value] = len(*list)
		*list = append(*list, value)
		return seen[value]
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "    private int[][] mcc_mnc = {")
	for _, r := range records {
		mnc, ok := r.MNC.Int()
		if !ok {
			mnc = -1
		}
		c := indexOf(&countries, countryIdx, r.Country)
		n := indexOf(&networks, networkIdx, r.Network)
		fmt.Fprintf(bw, "        {%d, %d, %d, %d},\n", r.MCC, mnc, c, n)
	}
	fmt.Fprintln(bw, "    };")

	writeJavaStrings(bw, "countries", countries)
	writeJavaStrings(bw, "networks", networks)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write Java source: %w", err)
	}
	return nil
}

var javaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func writeJavaStrings(w io.Writer, name string, values []string) {
	fmt.Fprintf(w, "\n    private String[] %s = {\n", name)
	for _, v := range values {
		fmt.Fprintf(w, "        \"%s\",\n", javaEscaper.Replace(v))
	}
	fmt.Fprintln(w, "    };")
}
