package main

import (
	"errors"
	"fmt"
	"io"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/fileutil"
)

// runResolve prints the canonical identifier of each name, one per line.
// Every name is tried; misses are reported together.
func runResolve(args []string, env *Environment) error {
	f := &resolveFlags{}
	positional, err := parseFlags(resolveFlagSet(f), args)
	if err != nil {
		return err
	}
	if len(positional) < 2 {
		return fmt.Errorf("%w: resolve needs a collection and at least one name", ErrUsage)
	}

	s, err := openSession(f.common, positional[0], env)
	if err != nil {
		return err
	}
	c, err := s.collection(positional[0])
	if err != nil {
		return err
	}

	lookup := c.Resolve
	if f.strict {
		lookup = c.Require
	}

	var misses []error
	for _, name := range positional[1:] {
		id, err := lookup(name)
		if err != nil {
			misses = append(misses, notFound(c, name, err))
			continue
		}
		fmt.Fprintln(env.Stdout, id)
	}
	return errors.Join(misses...)
}

// runCat writes the bytes of one asset to stdout or to --output.
func runCat(args []string, env *Environment) error {
	f := &catFlags{}
	positional, err := parseFlags(catFlagSet(f), args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: cat needs a collection and one name", ErrUsage)
	}

	s, err := openSession(f.common, positional[0], env)
	if err != nil {
		return err
	}
	c, err := s.collection(positional[0])
	if err != nil {
		return err
	}

	return catAsset(c, positional[1], f.output, env.Stdout)
}

func catAsset(c *assetkit.Collection, name, output string, stdout io.Writer) error {
	if output != "" {
		data, err := c.ReadFile(name)
		if err != nil {
			return notFoundOr(c, name, err)
		}
		if err := fileutil.WriteOutput(output, data); err != nil {
			return writeFailed(err)
		}
		return nil
	}

	rc, err := c.Open(name)
	if err != nil {
		return notFoundOr(c, name, err)
	}
	defer rc.Close()

	if _, err := io.Copy(stdout, rc); err != nil {
		return writeFailed(err)
	}
	return nil
}

// notFoundOr adds suggestions to resolution misses and returns other errors unchanged.
func notFoundOr(c *assetkit.Collection, name string, err error) error {
	if errors.Is(err, assetkit.ErrAssetNotFound) {
		return notFound(c, name, err)
	}
	return err
}
