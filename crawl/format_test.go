package crawl_test

import (
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFormatComparison(t *testing.T) {
	t.Parallel()

	t.Run("prints rankings and differences", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Comparison{
			Element: &crawl.Report{
				Strategy: wordfreq.StrategyElement,
				Ranking:  []wordfreq.WordCount{{Word: "Allen1", Count: 1}},
			},
			Text: &crawl.Report{
				Strategy: wordfreq.StrategyText,
				Ranking:  []wordfreq.WordCount{{Word: "1", Count: 1}, {Word: "Allen", Count: 1}},
			},
			OnlyElement: []string{"Allen1"},
			OnlyText:    []string{"1"},
		}

		want := `== element ==
Allen1 1
== text ==
1 1
Allen 1
== only element ==
Allen1
== only text ==
1
`
		assert.Equal(t, want, crawl.FormatComparison(c))
	})

	t.Run("notes agreement", func(t *testing.T) {
		t.Parallel()

		ranking := []wordfreq.WordCount{{Word: "Windows", Count: 3}}
		c := &crawl.Comparison{
			Element: &crawl.Report{Strategy: wordfreq.StrategyElement, Ranking: ranking},
			Text:    &crawl.Report{Strategy: wordfreq.StrategyText, Ranking: ranking},
		}

		want := `== element ==
Windows 3
== text ==
Windows 3
== word sets agree ==
`
		assert.Equal(t, want, crawl.FormatComparison(c))
	})
}
