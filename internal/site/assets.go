package site

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFiles embed.FS

// Assets returns the page shell assets rooted at the static directory.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("failed to create static filesystem: " + err.Error())
	}
	return sub
}
