package sinkgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// writeArtifacts stages every artifact in a temporary file inside dir and
// renames them into place only after all of them were written. A failed
// write leaves the previous files untouched.
func writeArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	staged := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, a := range artifacts {
		tmp, err := stage(dir, a)
		if err != nil {
			cleanup()
			return nil, err
		}
		staged = append(staged, tmp)
	}

	paths := make([]string, len(artifacts))
	var errs []error
	for i, a := range artifacts {
		paths[i] = filepath.Join(dir, a.Filename)
		if err := os.Rename(staged[i], paths[i]); err != nil {
			os.Remove(staged[i])
			errs = append(errs, fmt.Errorf("installing %s: %w", a.Filename, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return paths, nil
}

func stage(dir string, a Artifact) (string, error) {
	f, err := os.CreateTemp(dir, "."+a.Filename+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("staging %s: %w", a.Filename, err)
	}
	name := f.Name()
	if _, err := f.Write(a.Content); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("writing %s: %w", a.Filename, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("writing %s: %w", a.Filename, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("setting mode of %s: %w", a.Filename, err)
	}
	return name, nil
}
