package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "price"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"price": {"type": "number", "minimum": 0}
	}
}`

func writeTestSchema(t *testing.T) string {
	t.Helper()
	schemaPath := filepath.Join(t.TempDir(), "test.schema.json")
	if err := os.WriteFile(schemaPath, []byte(testSchema), 0644); err != nil {
		t.Fatalf("Failed to write schema: %v", err)
	}
	return schemaPath
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTestSchema(t)

	t.Run("valid document passes", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{"name": "Zulrah", "price": 12.5}`), schemaPath)
		if err != nil {
			t.Errorf("Expected valid document to pass, got %v", err)
		}
	})

	t.Run("missing required field fails", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{"name": "Zulrah"}`), schemaPath)
		if err == nil {
			t.Fatal("Expected validation failure for missing price")
		}
		if !strings.Contains(err.Error(), "schema validation failed") {
			t.Errorf("Unexpected error message: %v", err)
		}
	})

	t.Run("negative price fails", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{"name": "Zulrah", "price": -1}`), schemaPath)
		if err == nil {
			t.Fatal("Expected validation failure for negative price")
		}
	})

	t.Run("malformed JSON fails", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{not json}`), schemaPath)
		if err == nil {
			t.Fatal("Expected parse failure")
		}
	})

	t.Run("missing schema file fails", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "/nonexistent/schema.json")
		if err == nil {
			t.Fatal("Expected schema load failure")
		}
	})
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTestSchema(t)

	dataPath := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(dataPath, []byte(`{"name": "Vorkath", "price": 16.5}`), 0644); err != nil {
		t.Fatalf("Failed to write data: %v", err)
	}

	if err := v.ValidateFile(dataPath, schemaPath); err != nil {
		t.Errorf("Expected file to validate, got %v", err)
	}

	if err := v.ValidateFile("/nonexistent/data.json", schemaPath); err == nil {
		t.Error("Expected failure for missing data file")
	}
}
