package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carve/internal/adapters/fs"
	"go.trai.ch/carve/internal/core/domain"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   src/main.rs
	//   README.md
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		".git/config": "git config",
		"src/main.rs": "fn main() {}",
		"README.md":   "# Readme",
	})

	walker := fs.NewWalker()

	var files []string
	for path, err := range walker.WalkFiles(tmpDir) {
		require.NoError(t, err)
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files = append(files, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{".git/config", "README.md", "src/main.rs"}, files, "hidden entries are not skipped")
}

func TestWalker_Walk_IncludesRootAndDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"a/b/c.txt": "c"})

	var rels []string
	for entry, err := range fs.NewWalker().Walk(tmpDir) {
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(entry.Rel))
	}

	assert.Equal(t, []string{".", "a", "a/b", "a/b/c.txt"}, rels)
}

func TestWalker_Walk_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	var gotErr error
	for _, err := range fs.NewWalker().Walk(missing) {
		gotErr = err
	}

	require.Error(t, gotErr)
	assert.Contains(t, gotErr.Error(), domain.ErrWalkFailed.Error())
}

func TestCopier_CopyTree(t *testing.T) {
	src := filepath.Join(t.TempDir(), "rustc_span")
	writeTree(t, src, map[string]string{
		"Cargo.toml":       "[package]\nname = \"rustc_span\"\n",
		"src/lib.rs":       "pub mod symbol;\n",
		"src/symbol.rs":    "pub struct Symbol;\n",
		"src/data/blob":    "\x00\x01\x02binary",
		"benches/bench.rs": "",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o750))

	dst := filepath.Join(t.TempDir(), "out", "rustc_span")
	copier := fs.NewCopier(fs.NewWalker())

	require.NoError(t, copier.CopyTree(src, dst))

	for _, rel := range []string{"Cargo.toml", "src/lib.rs", "src/symbol.rs", "src/data/blob", "benches/bench.rs"} {
		want, err := os.ReadFile(filepath.Join(src, rel))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dst, rel))
		require.NoError(t, err, rel)
		assert.Equal(t, want, got, rel)
	}

	info, err := os.Stat(filepath.Join(dst, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCopier_CopyTree_OverwritesExistingFiles(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"lib.rs": "new"})

	dst := t.TempDir()
	writeTree(t, dst, map[string]string{"lib.rs": "old content that is longer"})

	require.NoError(t, fs.NewCopier(fs.NewWalker()).CopyTree(src, dst))

	got, err := os.ReadFile(filepath.Join(dst, "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopier_CopyTree_MissingSource(t *testing.T) {
	err := fs.NewCopier(fs.NewWalker()).CopyTree(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWalkFailed.Error())
}

func TestCopier_CopyTree_FileSymlinkCopiesTarget(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"real.rs": "pub struct Real;\n"})
	if err := os.Symlink("real.rs", filepath.Join(src, "link.rs")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	dst := t.TempDir()
	require.NoError(t, fs.NewCopier(fs.NewWalker()).CopyTree(src, dst))

	info, err := os.Lstat(filepath.Join(dst, "link.rs"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "link is materialized as a regular file")

	got, err := os.ReadFile(filepath.Join(dst, "link.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub struct Real;\n", string(got))
}

func TestCopier_CopyTree_DirectorySymlinkFails(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"real/lib.rs": "pub mod a;\n"})
	if err := os.Symlink("real", filepath.Join(src, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	err := fs.NewCopier(fs.NewWalker()).CopyTree(src, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFileReadFailed.Error())
	assert.Contains(t, err.Error(), domain.ErrDirectorySymlink.Error())
	assert.NotContains(t, err.Error(), domain.ErrFileWriteFailed.Error())
}

func TestInjector_Inject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "rust-src", "compiler", "rustc_session")
	dst := t.TempDir()
	writeTree(t, dst, map[string]string{"src/lib.rs": "pub mod config;\n"})

	pkg := domain.LocalPackage{
		Name:         "rustc_session",
		RootDir:      root,
		SourcePath:   filepath.Join(root, "src", "lib.rs"),
		ManifestPath: filepath.Join(root, "Cargo.toml"),
	}
	injector := fs.NewInjector(domain.DefaultConfig().Features)

	require.True(t, injector.Applies(pkg))
	require.NoError(t, injector.Inject(pkg, dst))

	got, err := os.ReadFile(filepath.Join(dst, "src", "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "#![feature(rustc_private)]\npub mod config;\n", string(got))
}

func TestInjector_Applies(t *testing.T) {
	injector := fs.NewInjector(domain.FeatureSet{
		Directive: "#![feature(rustc_private)]",
		Packages:  []string{"rustc_data_structures"},
	})

	assert.True(t, injector.Applies(domain.LocalPackage{Name: "rustc_data_structures"}))
	assert.False(t, injector.Applies(domain.LocalPackage{Name: "rustc_span"}))
}

func TestInjector_Inject_MissingSource(t *testing.T) {
	root := t.TempDir()
	pkg := domain.LocalPackage{
		Name:       "rustc_session",
		RootDir:    root,
		SourcePath: filepath.Join(root, "src", "lib.rs"),
	}

	err := fs.NewInjector(domain.DefaultConfig().Features).Inject(pkg, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFileReadFailed.Error())
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")
}

func TestHasher_HashTree(t *testing.T) {
	files := map[string]string{
		"Cargo.toml": "[package]\nname = \"a\"\n",
		"src/lib.rs": "pub fn a() {}\n",
	}
	first := t.TempDir()
	second := t.TempDir()
	writeTree(t, first, files)
	writeTree(t, second, files)

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.HashTree(first)
	require.NoError(t, err)
	hash2, err := hasher.HashTree(second)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "equal trees must hash equally")

	// Content change
	writeTree(t, second, map[string]string{"src/lib.rs": "pub fn b() {}\n"})
	hash3, err := hasher.HashTree(second)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)

	// Rename with identical content
	third := t.TempDir()
	writeTree(t, third, map[string]string{
		"Cargo.toml": files["Cargo.toml"],
		"src/mod.rs": files["src/lib.rs"],
	})
	hash4, err := hasher.HashTree(third)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash4)
}

func TestHasher_HashTree_MissingRoot(t *testing.T) {
	_, err := fs.NewHasher(fs.NewWalker()).HashTree(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
