// Package templates holds the templ sources of the web UI. The *_templ.go
// files next to them are generated.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate
