// Package bundler packs a saved model into the tar.gz layout a model server
// loads from its model store.
package bundler

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

// DefaultOutDir is used when Bundle is given an empty outDir.
const DefaultOutDir = "jams_artefacts"

const archiveExt = ".tar.gz"

// Archive describes a bundle written by Bundle.
type Archive struct {
	Framework enums.Framework
	// ModelName is the framework prefixed name to pass to AddModel,
	// e.g. "tensorflow-my_model".
	ModelName string
	Path      string
	Size      int64
}

// FileName returns <framework>-<model>.tar.gz.
func (a *Archive) FileName() string {
	return a.ModelName + archiveExt
}

// Bundle archives artifactPath, a saved model file or a SavedModel
// directory, into <outDir>/<framework>-<model>.tar.gz. The archive root is
// named <framework>-<model> plus the framework's artifact extension.
// An existing bundle with the same name is replaced.
func Bundle(ctx context.Context, framework enums.Framework, modelName, artifactPath, outDir string) (*Archive, error) {
	if framework == enums.FrameworkUnknown {
		return nil, errors.New("framework is not set")
	}
	if modelName == "" {
		return nil, errors.New("model name is empty")
	}
	info, err := os.Stat(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat model artifact: %w", err)
	}
	if outDir == "" {
		outDir = DefaultOutDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	archive := &Archive{
		Framework: framework,
		ModelName: framework.ModelName(modelName),
	}
	archive.Path = filepath.Join(outDir, archive.FileName())
	root := archive.ModelName
	if !info.IsDir() {
		root += framework.ArtifactExt()
	}

	tmp, err := os.CreateTemp(outDir, archive.FileName()+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create bundle: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err := writeArchive(ctx, tmp, artifactPath, root); err != nil {
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}
	if err := os.Rename(tmp.Name(), archive.Path); err != nil {
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}
	written, err := os.Stat(archive.Path)
	if err != nil {
		return nil, err
	}
	archive.Size = written.Size()
	log.Info().Str("bundle", archive.Path).Int64("size", archive.Size).Msg("model bundled")
	return archive, nil
}

func writeArchive(ctx context.Context, w io.Writer, src, root string) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		name := root
		if rel != "." {
			name = path.Join(root, filepath.ToSlash(rel))
		}
		return addEntry(tw, p, name, d)
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", src, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return nil
}

func addEntry(tw *tar.Writer, p, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	var link string
	if info.Mode()&fs.ModeSymlink != 0 {
		if link, err = os.Readlink(p); err != nil {
			return err
		}
	}
	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	header.Name = name
	if info.IsDir() {
		header.Name += "/"
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(tw, f)
	return err
}
