// Package config provides infrastructure for loading entity documents.
// This package handles YAML parsing, file I/O and format version checks.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/pyyyc/deckprops/internal/application/dto"
)

// DefaultDocumentVersion is assumed when a document omits `version`.
const DefaultDocumentVersion = "1.0.0"

// SupportedVersions is the range of document format versions this loader reads.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

var (
	// ErrUnsupportedVersion is returned for documents outside SupportedVersions.
	ErrUnsupportedVersion = errors.New("unsupported document version")

	// ErrMissingKind is returned for documents without a kind.
	ErrMissingKind = errors.New("document kind is required")
)

// documentYAML is the on-disk shape of one document.
type documentYAML struct {
	Version string         `yaml:"version"`
	Kind    string         `yaml:"kind"`
	Fields  map[string]any `yaml:"fields"`
}

func (d documentYAML) isEmpty() bool {
	return d.Version == "" && d.Kind == "" && d.Fields == nil
}

// DocumentLoader reads multi-document YAML files of entity descriptions.
type DocumentLoader struct {
	versions *semver.Constraints
}

// NewDocumentLoader creates a new document loader.
func NewDocumentLoader() *DocumentLoader {
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		panic(fmt.Sprintf("invalid version constraint %q: %v", SupportedVersions, err))
	}
	return &DocumentLoader{versions: c}
}

// LoadDocuments loads every document from a YAML file.
func (l *DocumentLoader) LoadDocuments(ctx context.Context, path string) ([]dto.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open document directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open document file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadDocumentsFromReader(file, path)
}

// LoadDocumentsFromReader decodes documents separated by `---` from r.
// source is recorded on each document for reporting.
func (l *DocumentLoader) LoadDocumentsFromReader(r io.Reader, source string) ([]dto.Document, error) {
	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())

	var docs []dto.Document
	for {
		var raw documentYAML
		err := decoder.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", len(docs), err)
		}
		if raw.isEmpty() {
			continue
		}

		doc, err := l.toDocument(raw, source, len(docs))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (l *DocumentLoader) toDocument(raw documentYAML, source string, index int) (dto.Document, error) {
	if raw.Kind == "" {
		return dto.Document{}, fmt.Errorf("document %d: %w", index, ErrMissingKind)
	}

	version := raw.Version
	if version == "" {
		version = DefaultDocumentVersion
	}
	if err := l.CheckVersion(version); err != nil {
		return dto.Document{}, fmt.Errorf("document %d: %w", index, err)
	}

	fields := raw.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	return dto.Document{
		Source:  source,
		Index:   index,
		Version: version,
		Kind:    raw.Kind,
		Fields:  fields,
	}, nil
}

// CheckVersion reports whether version is a readable document format.
func (l *DocumentLoader) CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	if !l.versions.Check(v) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, version, SupportedVersions)
	}
	return nil
}
