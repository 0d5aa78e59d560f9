package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Document is the file currently shown in the main window.
type Document struct {
	Path     string
	Data     []byte
	OpenedAt time.Time
}

func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

func readDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDocumentFrom(path, f)
}

func readDocumentFrom(path string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Document{Path: path, Data: data, OpenedAt: time.Now()}, nil
}
