/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing workspace definitions.

It allows developers to define workspaces using a type-safe, fluent builder pattern
instead of relying on external Markdown or JSON files. This is particularly useful for dynamic
setups, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/easel/pkg/dsl"
	)

	func main() {
		set := dsl.New()

		set.Workspace("desk").
			Name("My Desk").
			Grid().
			Size(1280, 800).
			Open("notes").Active().
			Open("draft")

		// The resulting loader can be used as a ports.WorkspaceLoader
		loader, err := set.Build()
		if err != nil {
			panic(err)
		}
		// ... pass loader to easel.New("", easel.WithLoader(loader))
	}
*/
package dsl
