package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed building_schema.json
var buildingSchemaSource string

var buildingSchema = jsonschema.MustCompileString("building_schema.json", buildingSchemaSource)

// validateDocument checks the raw document against the building schema
// before any decoding, so a stale or hand-edited file is rejected with a
// pointer to the offending field instead of decoding into garbage.
func validateDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := buildingSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
