package corpus

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-shiori/go-readability"
	"golang.org/x/text/unicode/norm"

	"github.com/japaniel/onomato/pkg/reading"
)

// maxArticleSize caps saved HTML pages.
const maxArticleSize = 10 * 1024 * 1024

// ArticleID is the sentence id of the i-th sentence of the n-th article (both 1-based).
func ArticleID(n, i int) string {
	return fmt.Sprintf("article:%d:%d", n, i)
}

// LoadArticle extracts the readable text of a saved HTML page and splits it
// into sentences of lang. Ruby annotations are removed first so furigana does
// not end up inside the sentence text. The returned sentences carry no id;
// LoadIndex assigns one with ArticleID.
func LoadArticle(path, lang string) ([]Sentence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open article %s: %w", path, err)
	}
	if info.Size() > maxArticleSize {
		return nil, fmt.Errorf("article %s: size %d exceeds limit of %d bytes", path, info.Size(), maxArticleSize)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open article %s: %w", path, err)
	}
	body = reading.SanitizeRuby(body)

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	article, err := readability.FromReader(bytes.NewReader(body), &url.URL{Scheme: "file", Path: abs})
	if err != nil {
		return nil, fmt.Errorf("extract article %s: %w", path, err)
	}

	var out []Sentence
	for _, text := range reading.SplitSentences(article.TextContent) {
		out = append(out, Sentence{Lang: lang, Text: norm.NFC.String(text)})
	}
	return out, nil
}
