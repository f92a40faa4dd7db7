package ports

// FileOperator defines the file operations the shell performs itself
// instead of delegating to an external program.
type FileOperator interface {
	// Read writes the contents of each path, in order, to the shell output.
	Read(paths ...string) error
	// Copy copies src to dst, preserving the permission bits of src.
	Copy(src, dst string) error
}
