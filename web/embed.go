// Package web holds the browser client served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// FileSystem returns the embedded client, or dir when it is set.
func FileSystem(dir string) http.FileSystem {
	if dir != "" {
		return http.Dir(dir)
	}
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is compiled in, Sub only fails on an invalid path
		panic(err)
	}
	return http.FS(sub)
}
