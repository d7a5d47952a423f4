package crawl_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/crawl"
	"github.com/fwojciec/wordfreq/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("reports words split differently by the strategies", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(microsoftPage)
		require.NoError(t, err)

		c, err := crawl.Compare(doc, testConfig(), nil)
		require.NoError(t, err)

		assert.Equal(t, wordfreq.StrategyElement, c.Element.Strategy)
		assert.Equal(t, wordfreq.StrategyText, c.Text.Strategy)
		assert.False(t, c.Agree())
		// The citation marker follows the sentence without a space, so the
		// element walk sees "Allen.[1]" as one token.
		assert.Equal(t, []string{"Allen1"}, c.OnlyElement)
		assert.Equal(t, []string{"1"}, c.OnlyText)
	})

	t.Run("agrees on well-formed section", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><body>
<h2>History</h2>
<div><p>Microsoft was <a href="/x">founded</a> in 1975</p></div>
<ul> <li>Windows</li> <li>Office</li> </ul>
<h2>Legacy</h2>
<p>dropped</p>
</body></html>`)
		require.NoError(t, err)

		c, err := crawl.Compare(doc, testConfig(), nil)
		require.NoError(t, err)

		assert.True(t, c.Agree())
		assert.Empty(t, c.OnlyElement)
		assert.Empty(t, c.OnlyText)
		// The list is counted once as a whole and once per item.
		assert.Equal(t, 2, c.Element.Frequencies["Windows"])
		assert.Equal(t, 1, c.Text.Frequencies["Windows"])
	})

	t.Run("ignores configured strategy", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(microsoftPage)
		require.NoError(t, err)

		cfg := testConfig()
		cfg.Strategy = wordfreq.StrategyElement
		c, err := crawl.Compare(doc, cfg, nil)
		require.NoError(t, err)

		assert.Equal(t, wordfreq.StrategyText, c.Text.Strategy)
	})

	t.Run("builds both extractors through the factory", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(microsoftPage)
		require.NoError(t, err)

		var mu sync.Mutex
		var built []wordfreq.Strategy
		c, err := crawl.Compare(doc, testConfig(), func(s wordfreq.Strategy) (wordfreq.Extractor, error) {
			mu.Lock()
			built = append(built, s)
			mu.Unlock()
			return wordfreq.NewExtractor(s)
		})

		require.NoError(t, err)
		assert.ElementsMatch(t, []wordfreq.Strategy{wordfreq.StrategyElement, wordfreq.StrategyText}, built)
		assert.NotEmpty(t, c.Element.Ranking)
	})

	t.Run("returns factory error", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(microsoftPage)
		require.NoError(t, err)

		c, err := crawl.Compare(doc, testConfig(), func(s wordfreq.Strategy) (wordfreq.Extractor, error) {
			if s == wordfreq.StrategyText {
				return nil, wordfreq.Errorf(wordfreq.EINTERNAL, "no text extractor")
			}
			return wordfreq.NewExtractor(s)
		})

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, wordfreq.EINTERNAL, wordfreq.ErrorCode(err))
	})
}

func TestAnalyzer_Compare(t *testing.T) {
	t.Parallel()

	t.Run("loads page and compares strategies", func(t *testing.T) {
		t.Parallel()

		a := &crawl.Analyzer{
			Fetcher: staticFetcher(microsoftPage),
			Parser:  goquery.NewParser(),
		}

		c, err := a.Compare(context.Background(), testConfig())

		require.NoError(t, err)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Microsoft", c.Element.URL)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Microsoft", c.Text.URL)
		assert.Equal(t, 2, c.Text.Frequencies["Gates"])
	})

	t.Run("uses the analyzer extractor factory", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		built := make(map[wordfreq.Strategy]int)
		a := &crawl.Analyzer{
			Fetcher: staticFetcher(microsoftPage),
			Parser:  goquery.NewParser(),
			NewExtractor: func(s wordfreq.Strategy) (wordfreq.Extractor, error) {
				mu.Lock()
				built[s]++
				mu.Unlock()
				return wordfreq.NewExtractor(s)
			},
		}

		_, err := a.Compare(context.Background(), testConfig())

		require.NoError(t, err)
		assert.Equal(t, map[wordfreq.Strategy]int{wordfreq.StrategyElement: 1, wordfreq.StrategyText: 1}, built)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		a := &crawl.Analyzer{
			Fetcher: staticFetcher(microsoftPage),
			Parser:  goquery.NewParser(),
		}

		cfg := testConfig()
		cfg.Section = ""
		_, err := a.Compare(context.Background(), cfg)

		require.Error(t, err)
		assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
	})
}
