// Package composer materializes a package closure as a standalone workspace.
package composer

import (
	"context"
	"path/filepath"
	"strconv"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
)

// Composer drives the copy, patch and rename steps for every member of a
// closure, then emits the workspace descriptor.
type Composer struct {
	copier   ports.TreeCopier
	injector ports.FeatureInjector
	rewriter ports.ManifestRewriter
	writer   ports.DescriptorWriter
	tracer   ports.Tracer
	logger   ports.Logger
}

// NewComposer creates a new Composer with the given dependencies.
func NewComposer(
	copier ports.TreeCopier,
	injector ports.FeatureInjector,
	rewriter ports.ManifestRewriter,
	writer ports.DescriptorWriter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Composer {
	return &Composer{
		copier:   copier,
		injector: injector,
		rewriter: rewriter,
		writer:   writer,
		tracer:   tracer,
		logger:   logger,
	}
}

// Compose materializes every member of closure under dst/<dir name>, in
// closure order, and writes the descriptor listing them once at the end.
// The first failure aborts; members already written stay on disk.
func (c *Composer) Compose(
	ctx context.Context,
	closure *domain.Closure,
	dst string,
) (*domain.WorkspaceDescriptor, error) {
	ctx, span := c.tracer.Start(ctx, "Composing Workspace")
	defer span.End()
	span.SetAttribute("carve.members", closure.Len())

	desc := &domain.WorkspaceDescriptor{}
	for pkg := range closure.All() {
		if err := c.materialize(ctx, pkg, dst); err != nil {
			span.RecordError(err)
			return nil, err
		}
		desc.Add(pkg.DirName())
	}

	if err := c.writeDescriptor(ctx, dst, desc); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return desc, nil
}

func (c *Composer) materialize(ctx context.Context, pkg domain.LocalPackage, dst string) error {
	_, span := c.tracer.Start(ctx, pkg.Name)
	defer span.End()

	target := filepath.Join(dst, pkg.DirName())
	span.SetAttribute("carve.source", pkg.RootDir)
	span.SetAttribute("carve.target", target)

	c.logger.Debug("copying " + pkg.RootDir + " to " + target)
	if err := c.copier.CopyTree(pkg.RootDir, target); err != nil {
		span.RecordError(err)
		return err
	}

	injected := c.injector.Applies(pkg)
	if injected {
		c.logger.Debug("injecting feature directive into " + pkg.Name)
		if err := c.injector.Inject(pkg, target); err != nil {
			span.RecordError(err)
			return err
		}
	}
	span.SetAttribute("carve.injected", injected)

	if err := c.rewriter.Rewrite(pkg, target); err != nil {
		span.RecordError(err)
		return err
	}

	c.logger.Info("extracted " + pkg.Name)
	return nil
}

func (c *Composer) writeDescriptor(ctx context.Context, dst string, desc *domain.WorkspaceDescriptor) error {
	_, span := c.tracer.Start(ctx, "Writing Workspace Descriptor")
	defer span.End()

	c.logger.Debug("writing workspace descriptor with " + strconv.Itoa(len(desc.Members)) + " members")
	if err := c.writer.WriteDescriptor(dst, desc); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
