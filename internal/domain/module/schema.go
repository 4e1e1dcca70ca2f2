package module

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const moduleSchemaURL = "module.schema.json"

//go:embed module.schema.json
var moduleSchemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(moduleSchemaURL, bytes.NewReader(moduleSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(moduleSchemaURL)
	})
	return compiledSchema, schemaErr
}

func validateModuleObject(value any) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}
	return sch.Validate(value)
}
