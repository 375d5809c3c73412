package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assetsFS embed.FS

// NewHandler serves the stylesheet and scripts shared by every page.
func NewHandler() http.Handler {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}
