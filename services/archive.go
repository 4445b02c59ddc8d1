package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// archiveRank orders archive members: cover first, manifest second,
// tracks last.
func archiveRank(name string) int {
	switch {
	case strings.HasPrefix(name, "cover."):
		return 0
	case name == "playlist.txt":
		return 1
	default:
		return 2
	}
}

// BuildArchive compresses every file in dir into an in-memory zip with a
// deterministic member order regardless of directory enumeration order.
func BuildArchive(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read work directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := archiveRank(names[i]), archiveRank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		if err := addArchiveMember(zw, dir, name); err != nil {
			zw.Close()
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func addArchiveMember(zw *zip.Writer, dir, name string) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to compress %s: %w", name, err)
	}
	return nil
}
