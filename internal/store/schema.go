package store

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const taskFileSchemaURL = "tasks.schema.json"

// taskFileSchema describes the persisted task list.
const taskFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["task", "due_date"],
    "properties": {
      "task": {"type": "string"},
      "due_date": {"type": "string"},
      "status": {"type": ["string", "null"]}
    }
  }
}`

var taskFileValidator = jsonschema.MustCompileString(taskFileSchemaURL, taskFileSchema)

// validateTaskFile checks raw file contents against the task file schema.
func validateTaskFile(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse task file: %w", err)
	}

	if err := taskFileValidator.Validate(doc); err != nil {
		return fmt.Errorf("validate task file: %w", err)
	}

	return nil
}
