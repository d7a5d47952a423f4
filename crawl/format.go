package crawl

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wordfreq"
)

// FormatComparison formats both rankings under a header naming their
// strategy, followed by the word-set differences.
func FormatComparison(c *Comparison) string {
	var b strings.Builder
	for _, r := range []*Report{c.Element, c.Text} {
		fmt.Fprintf(&b, "== %s ==\n", r.Strategy)
		b.WriteString(wordfreq.FormatRanking(r.Ranking))
	}

	if c.Agree() {
		b.WriteString("== word sets agree ==\n")
		return b.String()
	}

	fmt.Fprintf(&b, "== only %s ==\n", wordfreq.StrategyElement)
	writeWords(&b, c.OnlyElement)
	fmt.Fprintf(&b, "== only %s ==\n", wordfreq.StrategyText)
	writeWords(&b, c.OnlyText)
	return b.String()
}

func writeWords(b *strings.Builder, words []string) {
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
}
