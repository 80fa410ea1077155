package site

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed static/*
var staticFS embed.FS

// AssetPrefix is where embedded assets are served.
const AssetPrefix = "/static/"

func assetsFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Stylesheet returns the embedded stylesheet.
func Stylesheet() (string, error) {
	b, err := fs.ReadFile(assetsFS(), "site.css")
	return string(b), err
}

// assetsWithCache serves the embedded assets with Cache-Control and ETag
// handling. Paths are relative to AssetPrefix.
func assetsWithCache() (http.Handler, error) {
	files := assetsFS()
	etags := map[string]string{}
	err := fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(files, path)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(b)
		etags["/"+path] = `W/"` + hex.EncodeToString(sum[:]) + `"`
		return nil
	})
	if err != nil {
		return nil, err
	}
	fileServer := http.FileServerFS(files)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
		if et := etags[r.URL.Path]; et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && strings.Contains(inm, et) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fileServer.ServeHTTP(w, r)
	}), nil
}
