// Package assets holds static files compiled into the binary.
package assets

import _ "embed"

// DefaultLogo is the placeholder image served for freezers that have no
// stored image.
//
//go:embed default_logo.jpg
var DefaultLogo []byte
