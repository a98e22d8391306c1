// Package projectpath locates the repository root at runtime so that
// files such as .env can be resolved independently of the working directory.
package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root is the absolute path to the repository root.
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
