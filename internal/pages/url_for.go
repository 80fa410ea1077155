package pages

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackielii/ctxkey"
)

var pcCtx = ctxkey.New[*parseContext]("pages.parseContext", nil)

func withPcCtx(pc *parseContext) MiddlewareFunc {
	return func(next http.Handler, node *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pcCtx.WithValue(r.Context(), pc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// URLFor returns the route of the mounted page whose type matches page, with
// {param} segments replaced by args in order. A map[string]any argument fills
// parameters by name instead. page may also be a func(*PageNode) bool to pick a
// specific node.
func URLFor(ctx context.Context, page any, args ...any) (string, error) {
	pc := pcCtx.Value(ctx)
	if pc == nil {
		return "", errors.New("parse context not found in context")
	}
	pattern, err := pc.urlFor(page)
	if err != nil {
		return "", err
	}
	path, err := formatPath(pattern, args...)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}
	return strings.Replace(path, "{$}", "", 1), nil
}

func formatPath(pattern string, args ...any) (string, error) {
	segments, err := parseSegments(pattern)
	if err != nil {
		return pattern, err
	}
	var named map[string]any
	if len(args) == 1 {
		named, _ = args[0].(map[string]any)
	}
	var sb strings.Builder
	next := 0
	for _, seg := range segments {
		if !seg.param {
			sb.WriteString(seg.name)
			continue
		}
		if named != nil {
			v, ok := named[seg.name]
			if !ok {
				return pattern, fmt.Errorf("pattern %s: argument %s not found", pattern, seg.name)
			}
			fmt.Fprint(&sb, v)
			continue
		}
		if next >= len(args) {
			return pattern, fmt.Errorf("pattern %s: not enough arguments provided, args: %v", pattern, args)
		}
		fmt.Fprint(&sb, args[next])
		next++
	}
	return sb.String(), nil
}

type segment struct {
	name  string
	param bool
}

func parseSegments(pattern string) (segments []segment, err error) {
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:]
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := rest[:end]
		rest = rest[end+1:]
		if name == "$" {
			segments = append(segments, segment{name: "{$}"})
			continue
		}
		segments = append(segments, segment{name: strings.TrimSuffix(name, "..."), param: true})
	}
	return segments, nil
}
