package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skillSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "frequency"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"category": {"type": "string"},
		"is_technical": {"type": "boolean"},
		"frequency": {"type": "integer", "minimum": 1}
	}
}`

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	schemaPath := writeTempJSON(t, "skill.schema.json", skillSchema)
	jsonPath := writeTempJSON(t, "skill.json",
		`{"name": "Python", "category": "Programming Language", "is_technical": true, "frequency": 3}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	schemaPath := writeTempJSON(t, "skill.schema.json", skillSchema)
	jsonPath := writeTempJSON(t, "skill.json", `{"name": "Python"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSON_WrongType(t *testing.T) {
	schemaPath := writeTempJSON(t, "skill.schema.json", skillSchema)
	jsonPath := writeTempJSON(t, "skill.json", `{"name": "Python", "frequency": "three"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "frequency", validationErr.Errors[0].Field)
}

func TestValidateJSON_SchemaFileMissing(t *testing.T) {
	jsonPath := writeTempJSON(t, "skill.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nope.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_DocumentFileMissing(t *testing.T) {
	schemaPath := writeTempJSON(t, "skill.schema.json", skillSchema)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(skillSchema, `{"name": "Docker", "frequency": 1}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateJSONString(skillSchema, `{"frequency": 0}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	msg := validationErr.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1.")
}

func TestResolveSchemaPath_FindsExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "schemas"), 0o755))
	path := filepath.Join(dir, "schemas", "skill.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(skillSchema), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	resolved := ResolveSchemaPath(filepath.Join("schemas", "skill.schema.json"))
	assert.NotEmpty(t, resolved)
}

func TestResolveSchemaPath_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "definitely_not_here.schema.json")))
}
