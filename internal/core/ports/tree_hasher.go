package ports

// TreeHasher fingerprints directory trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=tree_hasher.go -destination=mocks/mock_tree_hasher.go -package=mocks
type TreeHasher interface {
	// HashTree returns a digest over the relative paths and contents of every file under root.
	HashTree(root string) (string, error)
}
