package fetch

import (
	"context"
	"os"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/module"
)

type fakeCompiler struct {
	renderedPath string
	requestPath  string
	rendered     string
	err          error
}

func (f *fakeCompiler) Compile(_ context.Context, templatePath, outputPath string) error {
	f.renderedPath = templatePath
	f.requestPath = outputPath
	payload, err := os.ReadFile(templatePath)
	if err != nil {
		return err
	}
	f.rendered = string(payload)
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outputPath, []byte(`{"cmd":"compiled"}`), 0o600)
}

type fakeQuerier struct {
	requestPath string
	networkURL  string
	output      string
	err         error
}

func (f *fakeQuerier) Query(_ context.Context, requestPath, networkURL string) ([]byte, error) {
	f.requestPath = requestPath
	f.networkURL = networkURL
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.output), nil
}

type fakePublisher struct {
	namespace string
	modules   []module.Module
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, namespace string, modules []module.Module) ([]string, error) {
	f.namespace = namespace
	f.modules = modules
	if f.err != nil {
		return nil, f.err
	}
	uris := make([]string, 0, len(modules))
	for _, mod := range modules {
		uris = append(uris, "s3://bucket/"+namespace+"/"+mod.FileName())
	}
	return uris, nil
}
