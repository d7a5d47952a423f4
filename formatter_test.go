package wordfreq_test

import (
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/stretchr/testify/assert"
)

func TestFormatRanking(t *testing.T) {
	t.Parallel()

	t.Run("writes one word and count per line", func(t *testing.T) {
		t.Parallel()

		ranking := []wordfreq.WordCount{
			{Word: "Microsoft", Count: 12},
			{Word: "Windows", Count: 4},
		}

		assert.Equal(t, "Microsoft 12\nWindows 4\n", wordfreq.FormatRanking(ranking))
	})

	t.Run("returns empty string for empty ranking", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordfreq.FormatRanking(nil))
	})
}
