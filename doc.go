// Package cli provides a lightweight library for building hierarchical
// command-line interfaces. Commands are registered at path locations such as
// ["db", "migrate"], each with typed flags and a description, and a raw argument
// vector is routed through the resulting tree to produce either the selected
// runner's value, a rendered help document, or a structured error.
//
// The package prioritizes simplicity and predictable routing, making it an ideal
// foundation for CLI applications that don't require the overhead of larger
// frameworks. The core performs no I/O: [App.Execute] is a pure value-to-value
// transformation, and [App.Run] is the single place output happens.
package cli
