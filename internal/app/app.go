// Package app implements the application layer for carve.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/carve/internal/adapters/cargo"      //nolint:depguard // Wired in app layer
	carvefs "go.trai.ch/carve/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/carve/internal/engine/closure"
	"go.trai.ch/carve/internal/engine/composer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	metadata     ports.MetadataProvider
	copier       ports.TreeCopier
	writer       ports.DescriptorWriter
	hasher       ports.TreeHasher
	tracer       ports.Tracer
	logger       ports.Logger
	setupTracing func(ports.Logger) func(context.Context) error
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	metadata ports.MetadataProvider,
	copier ports.TreeCopier,
	writer ports.DescriptorWriter,
	hasher ports.TreeHasher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		metadata:     metadata,
		copier:       copier,
		writer:       writer,
		hasher:       hasher,
		tracer:       tracer,
		logger:       log,
		setupTracing: telemetry.Setup,
	}
}

// WithoutTracing disables the global span processor.
// This is primarily used for testing with a mocked tracer.
func (a *App) WithoutTracing() *App {
	a.setupTracing = nil
	return a
}

// ConfigOptions locates the settings file.
type ConfigOptions struct {
	// ConfigPath is the settings file. It defaults to carve.yaml.
	ConfigPath string
	// ConfigRequired makes a missing settings file an error.
	ConfigRequired bool
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	ConfigOptions

	// Packages are the requested package names.
	Packages []string
	// Root overrides the configured source root.
	Root string
	// Metadata is a pre-generated cargo metadata document used instead of
	// running cargo.
	Metadata string
}

// ExtractOptions configuration for the Extract method.
type ExtractOptions struct {
	PlanOptions

	// Out overrides the configured output directory.
	Out string
	// Force removes the output directory before extracting.
	Force bool
	// Previous is an earlier extraction to compare the result against.
	Previous string
}

// Plan computes the closure of the requested packages without touching the
// filesystem.
func (a *App) Plan(ctx context.Context, opts PlanOptions) (*domain.Closure, error) {
	if len(opts.Packages) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}

	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return nil, err
	}

	return a.resolve(ctx, cmp.Or(opts.Root, cfg.Root), opts)
}

// Extract materializes the closure of the requested packages as a standalone
// workspace and optionally compares it with a previous extraction.
func (a *App) Extract(ctx context.Context, opts ExtractOptions) error {
	// 1. Validate request
	if len(opts.Packages) == 0 {
		return domain.ErrNoPackagesSpecified
	}

	// 2. Load settings
	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}
	root := cmp.Or(opts.Root, cfg.Root)
	out := cmp.Or(opts.Out, cfg.Out)

	// 3. Initialize Telemetry
	if a.setupTracing != nil {
		shutdown := a.setupTracing(a.logger)
		defer func() {
			_ = shutdown(ctx)
		}()
	}

	// 4. Resolve closure before touching the destination
	if contains(out, root) {
		return zerr.With(zerr.With(domain.ErrDestinationOverlapsRoot, "out", out), "root", root)
	}
	members, err := a.resolve(ctx, root, opts.PlanOptions)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("resolved %d packages: %s", members.Len(), strings.Join(members.Names(), ", ")))

	// 5. Prepare destination
	if err := prepareDestination(out, opts.Force); err != nil {
		return err
	}

	// 6. Compose workspace
	comp := composer.NewComposer(
		a.copier,
		carvefs.NewInjector(cfg.Features),
		cargo.NewManifestRewriter(cfg.Namespace),
		a.writer,
		a.tracer,
		a.logger,
	)
	desc, err := comp.Compose(ctx, members, out)
	if err != nil {
		return errors.Join(domain.ErrExtractionFailed, err)
	}
	a.logger.Info(fmt.Sprintf("wrote workspace with %d members to %s", len(desc.Members), out))

	// 7. Compare with previous extraction
	if opts.Previous == "" {
		return nil
	}
	report, err := a.Compare(opts.Previous, out, desc)
	if err != nil {
		return err
	}
	a.logReport(report)
	return nil
}

// Compare classifies every member of desc under out against the directory of
// the same name under previous, then lists previous members that are gone.
// Member trees are fingerprinted concurrently; the report keeps desc order.
func (a *App) Compare(previous, out string, desc *domain.WorkspaceDescriptor) (*domain.ChangeReport, error) {
	kinds := make([]domain.ChangeKind, len(desc.Members))
	current := make(map[string]bool, len(desc.Members))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, dir := range desc.Members {
		current[dir] = true
		g.Go(func() error {
			kind, err := a.classify(filepath.Join(previous, dir), filepath.Join(out, dir))
			if err != nil {
				return err
			}
			kinds[i] = kind
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.ChangeReport{}
	for i, dir := range desc.Members {
		report.Add(dir, kinds[i])
	}

	entries, err := os.ReadDir(previous)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", previous)
	}
	for _, entry := range entries {
		if !entry.IsDir() || current[entry.Name()] {
			continue
		}
		manifest := filepath.Join(previous, entry.Name(), domain.ManifestFileName)
		if _, err := os.Stat(manifest); err == nil {
			report.Add(entry.Name(), domain.ChangeRemoved)
		}
	}

	return report, nil
}

func (a *App) classify(before, after string) (domain.ChangeKind, error) {
	if _, err := os.Stat(before); errors.Is(err, fs.ErrNotExist) {
		return domain.ChangeAdded, nil
	}

	oldHash, err := a.hasher.HashTree(before)
	if err != nil {
		return "", err
	}
	newHash, err := a.hasher.HashTree(after)
	if err != nil {
		return "", err
	}

	if oldHash == newHash {
		return domain.ChangeUnchanged, nil
	}
	return domain.ChangeModified, nil
}

func (a *App) loadConfig(opts ConfigOptions) (domain.Config, error) {
	path := cmp.Or(opts.ConfigPath, domain.ConfigFileName)
	cfg, err := a.configLoader.Load(path, opts.ConfigRequired)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) resolve(ctx context.Context, root string, opts PlanOptions) (*domain.Closure, error) {
	ctx, span := a.tracer.Start(ctx, "Resolving Closure")
	defer span.End()

	provider := a.metadata
	if opts.Metadata != "" {
		a.logger.Debug("reading package metadata from " + opts.Metadata)
		provider = cargo.NewDocumentProvider(opts.Metadata)
	}

	index, err := provider.Query(ctx, root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	a.logger.Debug(fmt.Sprintf("package graph has %d packages", index.Len()))

	members, err := closure.NewResolver(index).Compute(opts.Packages)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("carve.members", members.Len())
	return members, nil
}

func (a *App) logReport(report *domain.ChangeReport) {
	for _, change := range report.Changes {
		msg := string(change.Kind) + " " + change.Dir
		if change.Kind == domain.ChangeUnchanged {
			a.logger.Debug(msg)
			continue
		}
		a.logger.Info(msg)
	}
	a.logger.Info(fmt.Sprintf("%d added, %d changed, %d removed, %d unchanged",
		report.Count(domain.ChangeAdded),
		report.Count(domain.ChangeModified),
		report.Count(domain.ChangeRemoved),
		report.Count(domain.ChangeUnchanged),
	))
}

// prepareDestination enforces a clean output directory. With force, any
// existing output is removed; otherwise a non-empty output is refused.
func prepareDestination(out string, force bool) error {
	if force {
		if err := os.RemoveAll(out); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDestinationCleanFailed.Error()), "path", out)
		}
		return nil
	}

	entries, err := os.ReadDir(out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", out)
	}
	if len(entries) > 0 {
		return zerr.With(domain.ErrDestinationNotEmpty, "path", out)
	}
	return nil
}

// contains reports whether path is dir or lies beneath it.
func contains(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
