package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// fileSchema is the JSON Schema a taxonomy file must satisfy before loading.
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "category"],
    "properties": {
      "id": {"type": "string"},
      "name": {"type": "string", "minLength": 1},
      "normalized_name": {"type": "string"},
      "category": {"type": "string", "minLength": 1},
      "aliases": {"type": "array", "items": {"type": "string"}},
      "related": {"type": "array", "items": {"type": "string"}},
      "embedding": {"type": "array", "items": {"type": "number"}}
    },
    "additionalProperties": false
  }
}`

// LoadFile loads a taxonomy snapshot from a JSON file, validating the document
// against the taxonomy schema first so malformed files fail with field-level
// errors instead of half-loaded snapshots.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if err := validateDocument(string(data)); err != nil {
		return nil, fmt.Errorf("taxonomy file %s is invalid: %w", path, err)
	}

	var records []types.SkillRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	return NewSnapshot(records), nil
}

// validateDocument checks the raw JSON document against the taxonomy schema.
func validateDocument(document string) error {
	schemaLoader := gojsonschema.NewStringLoader(fileSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		messages = append(messages, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}
