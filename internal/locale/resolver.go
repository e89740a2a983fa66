package locale

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"vprompt-web/internal/domain"
)

// CatalogReader はカタログファイルを開く読み取り口です。remoteio.InputReader がこれを満たします。
type CatalogReader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Resolver はメッセージキーを言語別の文字列に解決します。
type Resolver struct {
	catalog  Catalog
	fallback domain.Language
}

// NewResolver は組み込みカタログだけを持つ Resolver を返します。
// fallback は要求された言語にキーが無い場合に参照する言語です。
func NewResolver(fallback domain.Language) *Resolver {
	return &Resolver{
		catalog:  builtinCatalog.clone(),
		fallback: fallback,
	}
}

// LoadResolver は path の JSON カタログを読み込み、組み込みカタログに上書きした Resolver を返します。
// path が空の場合は組み込みカタログのみを使います。
// JSON 形式: {"en": {"error.generation": "..."}, "ko": {...}}
func LoadResolver(ctx context.Context, reader CatalogReader, path string, fallback domain.Language) (*Resolver, error) {
	r := NewResolver(fallback)
	if path == "" {
		return r, nil
	}
	if reader == nil {
		return nil, fmt.Errorf("カタログ %s を読むための InputReader がありません", path)
	}

	rc, err := reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ロケールカタログのオープンに失敗しました (path: %s): %w", path, err)
	}
	defer rc.Close()

	overrides, err := decodeCatalog(rc)
	if err != nil {
		return nil, fmt.Errorf("ロケールカタログの解析に失敗しました (path: %s): %w", path, err)
	}
	r.catalog.merge(overrides)

	slog.InfoContext(ctx, "ロケールカタログを読み込みました", "path", path, "languages", len(overrides))
	return r, nil
}

func decodeCatalog(rd io.Reader) (Catalog, error) {
	var raw map[string]map[string]string
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		return nil, err
	}
	out := make(Catalog, len(raw))
	for code, msgs := range raw {
		lang, err := domain.ParseLanguage(code)
		if err != nil {
			return nil, err
		}
		out[lang] = msgs
	}
	return out, nil
}

// Resolve は key を lang のメッセージに解決し、{name} 形式のプレースホルダーを subs で置換します。
// キーがどの言語にも無い場合は key をそのまま返します。
func (r *Resolver) Resolve(lang domain.Language, key string, subs map[string]string) string {
	msg, ok := r.lookup(lang, key)
	if !ok {
		msg, ok = r.lookup(r.fallback, key)
	}
	if !ok {
		return key
	}
	if len(subs) == 0 {
		return msg
	}

	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(subs)*2)
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", subs[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func (r *Resolver) lookup(lang domain.Language, key string) (string, bool) {
	msgs, ok := r.catalog[lang]
	if !ok {
		return "", false
	}
	msg, ok := msgs[key]
	return msg, ok
}
