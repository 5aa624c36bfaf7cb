package validation

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against JSON schemas
type SchemaValidator interface {
	// RegisterSchema compiles an in-memory schema under name so later
	// validations can reference it without touching the filesystem.
	RegisterSchema(name string, schema []byte) error
	ValidateFile(dataPath, schema string) error
	ValidateBytes(data []byte, schema string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) RegisterSchema(name string, schema []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	_, err = v.compileLocked(name, doc)
	return err
}

// ValidateFile validates a JSON file against a registered schema name or schema file path
func (v *validator) ValidateFile(dataPath, schema string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	if err := v.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf("%s: %w", dataPath, err)
	}
	return nil
}

// ValidateBytes validates JSON data bytes against a registered schema name or schema file path
func (v *validator) ValidateBytes(data []byte, schema string) error {
	compiled, err := v.loadSchema(schema)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schema, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func (v *validator) loadSchema(schema string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if compiled, ok := v.schemas[schema]; ok {
		return compiled, nil
	}

	resolvedPath, err := resolveSchemaPath(schema)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return v.compileLocked(schema, doc)
}

func (v *validator) compileLocked(name string, doc any) (*jsonschema.Schema, error) {
	if err := v.compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = compiled
	return compiled, nil
}

// formatValidationError flattens nested schema errors into one message per location
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errs []string
		collectErrors(validationErr, &errs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, errs *[]string) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errs)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

// resolveSchemaPath finds a relative schema path from the working directory
// or any parent up to the module root, so tests in nested packages work.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
