package inspect

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// RulesCSV renders only the rule histogram to CSV with a header row.
func RulesCSV(res InspectResult, withHeader bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if withHeader {
		_ = w.Write([]string{"rule", "count"})
	}

	for _, r := range res.Rules {
		_ = w.Write([]string{r.Rule, strconv.Itoa(r.Count)})
	}

	w.Flush()

	return buf.Bytes(), w.Error()
}
