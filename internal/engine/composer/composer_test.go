package composer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/carve/internal/core/ports/mocks"
	"go.trai.ch/carve/internal/engine/composer"
	"go.uber.org/mock/gomock"
)

type composerTestMocks struct {
	copier   *mocks.MockTreeCopier
	injector *mocks.MockFeatureInjector
	rewriter *mocks.MockManifestRewriter
	writer   *mocks.MockDescriptorWriter
}

// setupComposerTest creates a composer with optimistic tracer and logger mocks.
func setupComposerTest(t *testing.T) (*composer.Composer, composerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := composerTestMocks{
		copier:   mocks.NewMockTreeCopier(ctrl),
		injector: mocks.NewMockFeatureInjector(ctrl),
		rewriter: mocks.NewMockManifestRewriter(ctrl),
		writer:   mocks.NewMockDescriptorWriter(ctrl),
	}

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	c := composer.NewComposer(m.copier, m.injector, m.rewriter, m.writer, tracer, log)
	return c, m
}

func local(name string) domain.LocalPackage {
	root := "/src/compiler/" + name
	return domain.LocalPackage{
		Name:         name,
		RootDir:      root,
		SourcePath:   root + "/src/lib.rs",
		ManifestPath: root + "/Cargo.toml",
	}
}

func closureOf(pkgs ...domain.LocalPackage) *domain.Closure {
	c := domain.NewClosure()
	for _, p := range pkgs {
		c.Add(p)
	}
	return c
}

func TestCompose_MaterializesInClosureOrder(t *testing.T) {
	c, m := setupComposerTest(t)

	a, b, session := local("a"), local("b"), local("rustc_session")
	dst := "/out"

	gomock.InOrder(
		m.copier.EXPECT().CopyTree(a.RootDir, "/out/a").Return(nil),
		m.injector.EXPECT().Applies(a).Return(false),
		m.rewriter.EXPECT().Rewrite(a, "/out/a").Return(nil),

		m.copier.EXPECT().CopyTree(b.RootDir, "/out/b").Return(nil),
		m.injector.EXPECT().Applies(b).Return(false),
		m.rewriter.EXPECT().Rewrite(b, "/out/b").Return(nil),

		m.copier.EXPECT().CopyTree(session.RootDir, "/out/rustc_session").Return(nil),
		m.injector.EXPECT().Applies(session).Return(true),
		m.injector.EXPECT().Inject(session, "/out/rustc_session").Return(nil),
		m.rewriter.EXPECT().Rewrite(session, "/out/rustc_session").Return(nil),

		m.writer.EXPECT().WriteDescriptor(dst, &domain.WorkspaceDescriptor{
			Members: []string{"a", "b", "rustc_session"},
		}).Return(nil),
	)

	// Inserted out of order; the closure sorts them.
	desc, err := c.Compose(context.Background(), closureOf(session, b, a), dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "rustc_session"}, desc.Members)
}

func TestCompose_EmptyClosureWritesEmptyDescriptor(t *testing.T) {
	c, m := setupComposerTest(t)

	m.writer.EXPECT().WriteDescriptor("/out", &domain.WorkspaceDescriptor{}).Return(nil)

	desc, err := c.Compose(context.Background(), domain.NewClosure(), "/out")
	require.NoError(t, err)
	assert.Empty(t, desc.Members)
}

func TestCompose_CopyFailureAborts(t *testing.T) {
	c, m := setupComposerTest(t)
	copyErr := errors.New("disk full")

	a, b := local("a"), local("b")
	gomock.InOrder(
		m.copier.EXPECT().CopyTree(a.RootDir, "/out/a").Return(nil),
		m.injector.EXPECT().Applies(a).Return(false),
		m.rewriter.EXPECT().Rewrite(a, "/out/a").Return(nil),
		m.copier.EXPECT().CopyTree(b.RootDir, "/out/b").Return(copyErr),
	)

	desc, err := c.Compose(context.Background(), closureOf(a, b), "/out")
	require.ErrorIs(t, err, copyErr)
	assert.Nil(t, desc)
}

func TestCompose_InjectFailureSkipsRewrite(t *testing.T) {
	c, m := setupComposerTest(t)
	injectErr := errors.New("read failed")

	session := local("rustc_session")
	gomock.InOrder(
		m.copier.EXPECT().CopyTree(session.RootDir, "/out/rustc_session").Return(nil),
		m.injector.EXPECT().Applies(session).Return(true),
		m.injector.EXPECT().Inject(session, "/out/rustc_session").Return(injectErr),
	)

	_, err := c.Compose(context.Background(), closureOf(session), "/out")
	require.ErrorIs(t, err, injectErr)
}

func TestCompose_RewriteFailureSkipsDescriptor(t *testing.T) {
	c, m := setupComposerTest(t)

	a := local("a")
	gomock.InOrder(
		m.copier.EXPECT().CopyTree(a.RootDir, "/out/a").Return(nil),
		m.injector.EXPECT().Applies(a).Return(false),
		m.rewriter.EXPECT().Rewrite(a, "/out/a").Return(domain.ErrManifestMissingField),
	)

	_, err := c.Compose(context.Background(), closureOf(a), "/out")
	require.ErrorIs(t, err, domain.ErrManifestMissingField)
}

func TestCompose_DescriptorFailure(t *testing.T) {
	c, m := setupComposerTest(t)
	writeErr := errors.New("read-only file system")

	a := local("a")
	m.copier.EXPECT().CopyTree(a.RootDir, "/out/a").Return(nil)
	m.injector.EXPECT().Applies(a).Return(false)
	m.rewriter.EXPECT().Rewrite(a, "/out/a").Return(nil)
	m.writer.EXPECT().WriteDescriptor("/out", gomock.Any()).Return(writeErr)

	desc, err := c.Compose(context.Background(), closureOf(a), "/out")
	require.ErrorIs(t, err, writeErr)
	assert.Nil(t, desc)
}
