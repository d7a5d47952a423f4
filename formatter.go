package wordfreq

import (
	"strconv"
	"strings"
)

// FormatRanking formats a ranking as one "<word> <count>" line per entry.
func FormatRanking(ranking []WordCount) string {
	if len(ranking) == 0 {
		return ""
	}

	var b strings.Builder
	for _, wc := range ranking {
		b.WriteString(wc.Word)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(wc.Count))
		b.WriteByte('\n')
	}
	return b.String()
}
