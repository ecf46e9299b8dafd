package tools

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cloudsift/cloudsift/pkg/fault"
)

// Input schemas, one per tool. Unknown properties are rejected so a
// hallucinated argument fails validation instead of being silently
// ignored.
var schemaSources = map[Kind]string{
	KindLogSearch: `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"time_window_hours": {"type": "integer", "minimum": 1, "maximum": 720},
		"limit": {"type": "integer", "minimum": 1, "maximum": 1000},
		"severity": {"type": "string"},
		"service": {"type": "string"},
		"search": {"type": "string", "maxLength": 512}
	}
}`,
	KindLogAggregate: `{
	"type": "object",
	"additionalProperties": false,
	"required": ["group_by"],
	"properties": {
		"time_window_hours": {"type": "integer", "minimum": 1, "maximum": 720},
		"limit": {"type": "integer", "minimum": 1, "maximum": 1000},
		"severity": {"type": "string"},
		"service": {"type": "string"},
		"search": {"type": "string", "maxLength": 512},
		"group_by": {"type": "string", "enum": ["severity", "service_name", "source_table", "resource_type"]}
	}
}`,
	KindTraceLookup: `{
	"type": "object",
	"additionalProperties": false,
	"required": ["trace_id"],
	"properties": {
		"trace_id": {"type": "string", "minLength": 1, "maxLength": 128},
		"time_window_hours": {"type": "integer", "minimum": 1, "maximum": 720},
		"limit": {"type": "integer", "minimum": 1, "maximum": 1000}
	}
}`,
	KindSimilarErrors: `{
	"type": "object",
	"additionalProperties": false,
	"required": ["query"],
	"properties": {
		"query": {"type": "string", "minLength": 1, "maxLength": 512},
		"service": {"type": "string"},
		"limit": {"type": "integer", "minimum": 1, "maximum": 50}
	}
}`,
	KindDryRun: `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"time_window_hours": {"type": "integer", "minimum": 1, "maximum": 720},
		"limit": {"type": "integer", "minimum": 1, "maximum": 1000},
		"severity": {"type": "string"},
		"service": {"type": "string"},
		"search": {"type": "string", "maxLength": 512},
		"group_by": {"type": "string", "enum": ["severity", "service_name", "source_table", "resource_type"]}
	}
}`,
}

// compileSchemas eagerly compiles every tool schema at startup. A
// malformed builtin schema is a programming error.
func compileSchemas() (map[Kind]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	for kind, src := range schemaSources {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(src)))
		if err != nil {
			return nil, fmt.Errorf("tool %s schema is malformed: %w", kind, err)
		}
		if err := compiler.AddResource(string(kind)+".json", doc); err != nil {
			return nil, fmt.Errorf("tool %s schema rejected: %w", kind, err)
		}
	}
	out := make(map[Kind]*jsonschema.Schema, len(schemaSources))
	for kind := range schemaSources {
		sch, err := compiler.Compile(string(kind) + ".json")
		if err != nil {
			return nil, fmt.Errorf("tool %s schema failed to compile: %w", kind, err)
		}
		out[kind] = sch
	}
	return out, nil
}

// SchemaJSON returns the raw schema source for a tool, for the LLM tool
// declaration.
func SchemaJSON(k Kind) string {
	return schemaSources[k]
}

// validateInput decodes and validates a raw tool input against its
// schema. Returns the decoded document for handler use.
func validateInput(sch *jsonschema.Schema, raw []byte) (any, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fault.Wrap(fault.KindUsage, "tool input is not valid JSON", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fault.Wrap(fault.KindUsage, "tool input failed schema validation", err)
	}
	return doc, nil
}
