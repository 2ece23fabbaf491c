package cargo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorWriter = (*DescriptorWriter)(nil)

// DescriptorWriter writes the workspace manifest at the root of the output.
type DescriptorWriter struct{}

// NewDescriptorWriter creates a new DescriptorWriter.
func NewDescriptorWriter() *DescriptorWriter {
	return &DescriptorWriter{}
}

// WriteDescriptor writes desc to dst/Cargo.toml, replacing any existing file.
func (w *DescriptorWriter) WriteDescriptor(dst string, desc *domain.WorkspaceDescriptor) error {
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "path", dst)
	}

	path := filepath.Join(dst, domain.ManifestFileName)
	if err := os.WriteFile(path, RenderDescriptor(desc), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}

// RenderDescriptor renders desc with one member per line, in order.
func RenderDescriptor(desc *domain.WorkspaceDescriptor) []byte {
	var b strings.Builder
	b.WriteString("[workspace]\nmembers = [\n")
	for _, member := range desc.Members {
		b.WriteString("  ")
		writeBasicString(&b, member)
		b.WriteString(",\n")
	}
	b.WriteString("]\n")
	return []byte(b.String())
}

// writeBasicString writes s as a TOML basic string. Control characters use
// the escapes TOML defines, falling back to \uXXXX.
func writeBasicString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
