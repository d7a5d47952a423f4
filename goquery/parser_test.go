package goquery_test

import (
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title> Microsoft - Wikipedia </title></head>
<body><p>Content</p></body>
</html>`

		doc, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "Microsoft - Wikipedia", doc.Title)
	})

	t.Run("builds tree in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><h2>History</h2><p>Founded <a href="/1975">1975</a></p></body></html>`

		doc, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		require.Equal(t, wordfreq.DocumentNode, doc.Root.Kind)
		require.Len(t, doc.Root.Children, 1)

		htmlEl := doc.Root.Children[0]
		assert.Equal(t, "html", htmlEl.Tag)
		require.Len(t, htmlEl.Children, 2)

		body := htmlEl.Children[1]
		assert.Equal(t, "body", body.Tag)
		require.Len(t, body.Children, 2)
		assert.Equal(t, "h2", body.Children[0].Tag)
		assert.Equal(t, "History", body.Children[0].InnerText())
		assert.Equal(t, "Founded 1975", body.Children[1].InnerText())
		assert.Equal(t, "a", body.Children[1].Children[1].Tag)
	})

	t.Run("drops comments and doctype", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><head></head><body><!-- hidden --><p>shown</p></body></html>`

		doc, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "shown", doc.Root.InnerText())
	})

	t.Run("lowercases element names", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<H2>History</H2><P>text</P>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"History"}, doc.Headings())
	})

	t.Run("repairs malformed markup", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<h2>History</h2><p>unclosed <b>bold`)

		require.NoError(t, err)
		assert.Equal(t, []string{"History", "unclosed ", "bold"}, wordfreq.TextNodeExtractor{}.Extract(doc.Root, "History"))
	})

	t.Run("feeds both extraction strategies", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body>` +
			`<h2>Intro</h2><p>ignored words</p>` +
			`<div class="mw-heading"><h2>History</h2><span>[edit]</span></div>` +
			`<p>Microsoft was founded by <a href="/Bill_Gates">Bill Gates</a> in 1975.<sup>[1]</sup></p>` +
			`<div class="mw-heading"><h2>Legacy</h2></div><p>after</p>` +
			`</body></html>`

		doc, err := goquery.NewParser().Parse(html)
		require.NoError(t, err)

		element := wordfreq.ElementExtractor{}.Extract(doc.Root, "History")
		assert.Equal(t, []string{"History", "Microsoft was founded by Bill Gates in 1975.[1]"}, element)

		text := wordfreq.TextNodeExtractor{}.Extract(doc.Root, "History")
		assert.Equal(t, []string{"History", "[edit]", "Microsoft was founded by ", "Bill Gates", " in 1975.", "[1]", "Legacy"}, text)
	})
}
