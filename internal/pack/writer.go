// Package pack turns a set of generated documents into the zip
// container the LMS consumes.
package pack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SchemaFiles are the SCORM 1.2 XSD files copied alongside the
// manifest. A missing one downgrades the package, it does not fail it.
var SchemaFiles = []string{
	"adlcp_rootv1p2.xsd",
	"ims_xml.xsd",
	"imscp_rootv1p1p2.xsd",
	"imsmd_rootv1p2p1.xsd",
}

// Zip assembles files into a zip archive in memory. Entries are written
// in sorted path order so the same input always produces the same
// archive layout.
func Zip(files map[string][]byte) ([]byte, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range paths {
		w, err := zw.Create(p)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to add %s to archive: %w", p, err)
		}
		if _, err := w.Write(files[p]); err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to write %s to archive: %w", p, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// CollectSchemas reads the SCORM XSD files from dir. Missing or
// unreadable files are reported as warnings; the returned map contains
// whatever could be read.
func CollectSchemas(dir string) (map[string][]byte, []string) {
	found := make(map[string][]byte)
	var warnings []string

	for _, name := range SchemaFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("schema file %s not found; the SCORM package may not work correctly", name))
			continue
		}
		found[name] = data
	}

	return found, warnings
}

// WriteFileAtomic writes data to path via a scoped temporary directory
// next to the destination, so a failed write never leaves a partial
// package behind. The temporary directory is removed on every exit
// path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpDir, err := os.MkdirTemp(dir, ".pack-")
	if err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpFile := filepath.Join(tmpDir, filepath.Base(path))
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write package: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to move package into place: %w", err)
	}
	return nil
}
