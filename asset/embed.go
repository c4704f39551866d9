package asset

import (
	"embed"
	"io/fs"
)

//go:embed data/*
var embedded embed.FS

// Embedded returns the built-in asset set rooted at the data directory
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
