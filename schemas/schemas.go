// Package schemas embeds the JSON Schemas that reference data documents must satisfy.
package schemas

import "embed"

// Schema file names
const (
	Questions      = "questions.schema.json"
	Descriptions   = "descriptions.schema.json"
	PrimaryTable   = "primary_table.schema.json"
	SecondaryTable = "secondary_table.schema.json"
)

// FS holds the embedded schema files.
//
//go:embed *.schema.json
var FS embed.FS

// Read returns the content of an embedded schema.
func Read(name string) (string, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
