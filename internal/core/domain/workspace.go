package domain

// WorkspaceDescriptor lists the member directories of the generated workspace.
type WorkspaceDescriptor struct {
	Members []string
}

// Add appends a member directory name.
func (d *WorkspaceDescriptor) Add(dir string) {
	d.Members = append(d.Members, dir)
}
