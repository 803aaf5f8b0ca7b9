// Package assets embeds the default verse content so the binaries run
// without any content files configured.
package assets

import (
	_ "embed"
)

// Psalm119 is the King James text of Psalm 119, one section per Hebrew letter.
//
//go:embed psalm119.txt
var Psalm119 string
