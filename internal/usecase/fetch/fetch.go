// Where: internal/usecase/fetch/fetch.go
// What: Fetch pipeline workflow (render -> compile -> query -> parse -> write).
// Why: Keep stage sequencing and error classification independent of the CLI.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/failure"
	"github.com/aserranoni/kda-module-fetcher/internal/domain/module"
	"github.com/aserranoni/kda-module-fetcher/internal/domain/template"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/fileops"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/logging"
)

// Stage names used in failure.Error.
const (
	StageValidate  = "validate"
	StageRender    = "render"
	StageWorkspace = "workspace"
	StageCompile   = "compile"
	StageQuery     = "query"
	StageParse     = "parse"
	StageWrite     = "write"
	StagePublish   = "publish"
)

var (
	errCompilerNil         = errors.New("compiler is nil")
	errQuerierNil          = errors.New("querier is nil")
	errNamespaceRequired   = errors.New("namespace is required")
	errChainRequired       = errors.New("chain id is required")
	errChainWhitespace     = errors.New("chain id must not contain whitespace")
	errNetworkURLInvalid   = errors.New("network url must be an http(s) url with a host")
	errTemplatePathMissing = errors.New("template path is required")
	errTemplateNotFound    = errors.New("template not found")
	errTemplateIsDir       = errors.New("template path is a directory")
)

// Compiler turns a rendered template into a request document.
type Compiler interface {
	Compile(ctx context.Context, templatePath, outputPath string) error
}

// Querier executes a request document against a network and returns the raw response.
type Querier interface {
	Query(ctx context.Context, requestPath, networkURL string) ([]byte, error)
}

// Publisher mirrors written modules somewhere beyond the local tree.
type Publisher interface {
	Publish(ctx context.Context, namespace string, modules []module.Module) ([]string, error)
}

// Request is the immutable configuration of one run.
type Request struct {
	NetworkURL   string
	Chain        string
	Namespace    string
	TemplatePath string
	OutputRoot   string
	WorkDir      string
	DryRun       bool
}

// Result summarizes a run.
type Result struct {
	Modules   []module.Module
	OutputDir string
	Written   []string
	Published []string
}

// Workflow runs the pipeline stages in strict order.
type Workflow struct {
	Compiler  Compiler
	Querier   Querier
	Publisher Publisher
	Logger    *log.Logger
}

// Run executes one fetch. Temporary files are removed on every return path and
// no output file is touched unless the whole response parsed cleanly.
func (w Workflow) Run(ctx context.Context, req Request) (Result, error) {
	logger := w.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if w.Compiler == nil {
		return Result{}, failure.Configuration(StageValidate, errCompilerNil)
	}
	if w.Querier == nil {
		return Result{}, failure.Configuration(StageValidate, errQuerierNil)
	}

	req, err := normalizeRequest(req)
	if err != nil {
		return Result{}, failure.Configuration(StageValidate, err)
	}
	result := Result{OutputDir: filepath.Join(req.OutputRoot, req.Namespace)}

	rendered, err := template.RenderFile(req.TemplatePath, map[string]string{
		template.TokenChain:     req.Chain,
		template.TokenNamespace: req.Namespace,
	})
	if err != nil {
		return result, failure.Configuration(StageRender, err)
	}
	for _, token := range template.Placeholders(rendered) {
		logger.Warn("template placeholder left unsubstituted", "token", token)
	}
	if err := template.CheckYAML(rendered); err != nil {
		logger.Warn("rendered template may be rejected by kda gen", "error", err)
	}

	ws, err := NewWorkspace(req.WorkDir)
	if err != nil {
		return result, failure.Filesystem(StageWorkspace, fmt.Errorf("create workspace: %w", err))
	}
	defer func() {
		if cleanupErr := ws.Cleanup(); cleanupErr != nil {
			logger.Warn("failed to remove temporary files", "dir", ws.Dir, "error", cleanupErr)
		}
	}()
	logger.Debug("workspace ready", "dir", ws.Dir)

	if err := fileops.WriteFile(ws.RenderedPath, rendered, fileops.TempMode); err != nil {
		return result, failure.Filesystem(StageRender, fmt.Errorf("write rendered template: %w", err))
	}

	if err := w.Compiler.Compile(ctx, ws.RenderedPath, ws.RequestPath); err != nil {
		return result, failure.ExternalTool(StageCompile, err)
	}

	output, err := w.Querier.Query(ctx, ws.RequestPath, req.NetworkURL)
	if err != nil {
		return result, failure.ExternalTool(StageQuery, err)
	}

	modules, err := module.ParseResponse(output, req.NetworkURL)
	if err != nil {
		return result, failure.ResponseFormat(StageParse, err)
	}
	result.Modules = modules
	reportModules(logger, req.Namespace, modules)

	if req.DryRun || len(modules) == 0 {
		return result, nil
	}

	written, err := WriteModules(req.OutputRoot, req.Namespace, modules)
	result.Written = written
	if err != nil {
		return result, failure.Filesystem(StageWrite, err)
	}

	if w.Publisher != nil {
		published, err := w.Publisher.Publish(ctx, req.Namespace, modules)
		result.Published = published
		if err != nil {
			return result, failure.Publish(StagePublish, err)
		}
	}
	return result, nil
}

func reportModules(logger *log.Logger, namespace string, modules []module.Module) {
	logger.Debug("parsed response", "modules", len(modules))
	for _, mod := range modules {
		if mod.Namespace != "" && mod.Namespace != namespace {
			logger.Warn("module namespace differs from requested namespace",
				"module", mod.QualifiedName, "namespace", namespace)
		}
	}
	for _, name := range module.Duplicates(modules) {
		logger.Debug("duplicate module name, last entry wins", "module", name)
	}
}

func normalizeRequest(req Request) (Request, error) {
	req.Namespace = strings.TrimSpace(req.Namespace)
	if req.Namespace == "" {
		return req, errNamespaceRequired
	}
	if err := module.ValidateName(req.Namespace); err != nil {
		return req, fmt.Errorf("namespace: %w", err)
	}

	req.Chain = strings.TrimSpace(req.Chain)
	if req.Chain == "" {
		return req, errChainRequired
	}
	if strings.ContainsAny(req.Chain, " \t\r\n") {
		return req, errChainWhitespace
	}

	req.NetworkURL = strings.TrimSpace(req.NetworkURL)
	parsed, err := url.Parse(req.NetworkURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return req, fmt.Errorf("%w: %q", errNetworkURLInvalid, req.NetworkURL)
	}

	req.TemplatePath = strings.TrimSpace(req.TemplatePath)
	if req.TemplatePath == "" {
		return req, errTemplatePathMissing
	}
	if abs, err := filepath.Abs(req.TemplatePath); err == nil {
		req.TemplatePath = abs
	}
	if fileops.DirExists(req.TemplatePath) {
		return req, fmt.Errorf("%w: %s", errTemplateIsDir, req.TemplatePath)
	}
	if !fileops.FileExists(req.TemplatePath) {
		return req, fmt.Errorf("%w: %s", errTemplateNotFound, req.TemplatePath)
	}

	if strings.TrimSpace(req.OutputRoot) == "" {
		req.OutputRoot = "."
	}
	return req, nil
}
