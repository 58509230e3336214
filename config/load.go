package config

import (
	"context"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/regolith/core"
)

func decode(op string, r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return core.ConfigError(op, "malformed document", err)
	}
	return nil
}

func open(op, path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.LookupError(op, "cannot open document", err).With("Path", path)
	}
	return f, nil
}

// DecodeEngine reads an engine document over the defaults and validates it
func DecodeEngine(r io.Reader) (*Engine, error) {
	e := DefaultEngine()
	if err := decode("DecodeEngine", r, &e); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// LoadEngine reads the engine document at path
func LoadEngine(path string) (*Engine, error) {
	f, err := open("LoadEngine", path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	e, err := DecodeEngine(f)
	if err != nil {
		if ce, ok := core.AsError(err); ok {
			ce.With("Path", path)
		}
		return nil, err
	}
	return e, nil
}

// DecodeScene reads and validates one scene document
func DecodeScene(r io.Reader) (*Scene, error) {
	var s Scene
	if err := decode("DecodeScene", r, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScene reads the scene document at path
func LoadScene(path string) (*Scene, error) {
	f, err := open("LoadScene", path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := DecodeScene(f)
	if err != nil {
		if ce, ok := core.AsError(err); ok {
			ce.With("Path", path)
		}
		return nil, err
	}
	return s, nil
}

// LoadScenes reads documents concurrently; results keep the order of paths
// The first failure cancels the remaining loads
func LoadScenes(ctx context.Context, paths []string) ([]*Scene, error) {
	scenes := make([]*Scene, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := LoadScene(path)
			if err != nil {
				return err
			}
			scenes[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenes, nil
}
