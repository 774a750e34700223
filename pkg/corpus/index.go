package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/japaniel/onomato/pkg/dictionary"
)

// Sources names the files an Index is built from. Paths may end in .gz or .bz2.
type Sources struct {
	// Sentences maps a language tag ("jpn", "eng", "kor") to its sentence file.
	Sentences map[string]string
	Links     string
	// Articles are saved HTML pages whose sentences join ArticleLang.
	Articles    []string
	ArticleLang string
	Logger      *slog.Logger
}

// Index is the in-memory corpus of one run: a collection per language plus
// the translation-link graph.
type Index struct {
	collections map[string]*Collection
	Links       *LinkGraph
}

// NewIndex assembles an index from already loaded parts. A nil graph is
// replaced with an empty one.
func NewIndex(links *LinkGraph, collections ...*Collection) *Index {
	if links == nil {
		links = NewLinkGraph()
	}
	idx := &Index{collections: make(map[string]*Collection), Links: links}
	for _, c := range collections {
		idx.collections[c.Lang] = c
	}
	return idx
}

// Collection returns the collection for lang, or nil.
func (idx *Index) Collection(lang string) *Collection {
	return idx.collections[lang]
}

// Sentence looks up a sentence by language and id.
func (idx *Index) Sentence(lang, id string) (Sentence, bool) {
	c := idx.collections[lang]
	if c == nil {
		return Sentence{}, false
	}
	return c.Get(id)
}

// Search returns the first sentence of lang containing term.
func (idx *Index) Search(lang, term string) (Sentence, bool) {
	c := idx.collections[lang]
	if c == nil {
		return Sentence{}, false
	}
	return c.Search(term)
}

// LoadIndex reads every sentence file and the link file concurrently. Any
// unreadable file aborts the load with an error naming its path. Articles are
// appended to their collection afterwards, in the order given.
func LoadIndex(ctx context.Context, src Sources) (*Index, error) {
	log := src.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		mu    sync.Mutex
		idx   = NewIndex(nil)
		links *LinkGraph
	)
	g, ctx := errgroup.WithContext(ctx)

	for lang, path := range src.Sentences {
		if path == "" {
			continue
		}
		lang, path := lang, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := dictionary.OpenSource(path)
			if err != nil {
				return fmt.Errorf("open sentences: %w", err)
			}
			defer rc.Close()

			c, skipped, err := LoadSentences(rc, lang)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Debug("sentences loaded", "lang", lang, "path", path, "count", c.Len(), "skipped", skipped)
			mu.Lock()
			idx.collections[lang] = c
			mu.Unlock()
			return nil
		})
	}
	if src.Links != "" {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := dictionary.OpenSource(src.Links)
			if err != nil {
				return fmt.Errorf("open links: %w", err)
			}
			defer rc.Close()

			lg, err := LoadLinks(rc)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Links, err)
			}
			log.Debug("links loaded", "path", src.Links, "edges", lg.Edges())
			links = lg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if links != nil {
		idx.Links = links
	}

	if len(src.Articles) > 0 {
		lang := src.ArticleLang
		if lang == "" {
			lang = "jpn"
		}
		c := idx.collections[lang]
		if c == nil {
			c = NewCollection(lang)
			idx.collections[lang] = c
		}
		for n, path := range src.Articles {
			sentences, err := LoadArticle(path, lang)
			if err != nil {
				return nil, err
			}
			for i, s := range sentences {
				s.ID = ArticleID(n+1, i+1)
				c.Add(s)
			}
			log.Debug("article loaded", "path", path, "sentences", len(sentences))
		}
	}
	return idx, nil
}
