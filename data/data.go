// Package data embeds the default DISC reference data: the question bank, the axis
// descriptions and the general/professional interpretation tables.
package data

import "embed"

// FS holds the embedded reference documents.
//
//go:embed *.json *.yaml
var FS embed.FS
