// Package scripts embeds the bundled Risor example scripts.
package scripts

import "embed"

// FS holds every bundled .risor script, addressable by file name.
//
//go:embed *.risor
var FS embed.FS
