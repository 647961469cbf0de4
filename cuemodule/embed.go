// Package cuemodule provides the embedded CUE schema for errdoc rule files.
// The config loader unifies CUE rule files against it; the directory is also
// the reference users copy from when authoring their own files.
package cuemodule

import _ "embed"

//go:embed schema/rules.cue
var SchemaCUE string
