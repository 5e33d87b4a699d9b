//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// moq generates the *_mock_test.go files from the go:generate
// directives next to each narrow interface.
import (
	_ "github.com/matryer/moq"
)
