package walkthrough

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const samplePage = `<!doctype html>
<html>
  <head>
    <title>Fallback Title</title>
    <meta name="description" content="Plain description">
    <meta property="og:title" content="A Tour Of Features">
    <meta property="og:image" content="https://example.com/tour.png">
  </head>
  <body><h1>Hello</h1></body>
</html>`

// PageMeta is the metadata pulled out of an HTML document.
type PageMeta struct {
	Title       string
	Description string
	ImageURL    string
}

// ParseMeta prefers OpenGraph tags and falls back to <title> and the
// description meta tag.
func ParseMeta(body []byte) (PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return PageMeta{}, fmt.Errorf("parse html: %w", err)
	}

	extract := func(sel string) string {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if val, ok := node.Attr("content"); ok {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}

	return PageMeta{
		Title: firstNonEmpty(
			extract(`meta[property="og:title"]`),
			doc.Find("title").First().Text(),
		),
		Description: firstNonEmpty(
			extract(`meta[property="og:description"]`),
			extract(`meta[name="description"]`),
		),
		ImageURL: extract(`meta[property="og:image"]`),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func markup(_ context.Context, env *Env) error {
	meta, err := ParseMeta([]byte(samplePage))
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "page title : %s\n", meta.Title)
	fmt.Fprintf(env.Out, "page description : %s\n", meta.Description)
	fmt.Fprintf(env.Out, "page image : %s\n", meta.ImageURL)
	return nil
}
