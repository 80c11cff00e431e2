//go:build tools

package tools

// This file documents the CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: the *_mock_test.go files next to each consumer interface
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration authoring (cmd/migrate runs them)
