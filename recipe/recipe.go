// Package recipe declares the build-step graph that installs basemap and its
// native GEOS dependency into the target environment.
package recipe

import (
	"fmt"
	"path"
	"strings"

	"github.com/cartolab/mapstrap/action"
	"github.com/cartolab/mapstrap/env"
	"github.com/cartolab/mapstrap/graph"
)

// LibraryName is the installed Python package.
const LibraryName = "basemap"

// geosVersion is the GEOS release bundled inside the basemap source tree.
const geosVersion = "3.3.3"

// DefaultTarget is the step run when no target is given. It depends on the
// whole install chain.
const DefaultTarget = "verify"

// Params are the substitution parameters of the pipeline.
type Params struct {
	// EnvRoot is the installation prefix all install-phase steps target.
	EnvRoot string
	// Version of the basemap release.
	Version string
	// BaseURL is where release tarballs live; the tarball for Version is
	// expected at {BaseURL}/v{Version}.tar.gz.
	BaseURL string
	// SourceURL optionally overrides the derived tarball URL. A URL ending
	// in '.git' switches the fetch step to a git clone.
	SourceURL string
	// CacheDir holds downloaded archives and extracted sources.
	CacheDir string
	// PythonTag is the 'X.Y' version tag of the environment's interpreter.
	PythonTag string
}

// TarballURL returns the download URL of the release tarball.
func TarballURL(baseURL, version string) string {
	return fmt.Sprintf("%s/v%s.tar.gz", baseURL, version)
}

// ArchivePath returns where the downloaded release tarball is cached.
func (p Params) ArchivePath() string {
	return path.Join(p.CacheDir, fmt.Sprintf("%s-v%s.tar.gz", LibraryName, p.Version))
}

// SourceDir returns where the library source tree is cached.
func (p Params) SourceDir() string {
	return path.Join(p.CacheDir, fmt.Sprintf("%s-%s", LibraryName, p.Version))
}

// NativeLib returns the installed GEOS shared library, the artifact of the
// native build step.
func (p Params) NativeLib() string {
	return path.Join(p.EnvRoot, "lib", "libgeos.so")
}

// EggInfo returns the installed package metadata directory, the artifact of
// the install step.
func (p Params) EggInfo() string {
	name := fmt.Sprintf("%s-%s-py%s.egg-info", LibraryName, p.Version, p.PythonTag)
	return path.Join(env.SitePackages(p.EnvRoot, p.PythonTag), name)
}

// Steps declares the pipeline for the given parameters:
//
//	fetch -> extract -> build-geos -> install -> verify
//
// With a git source URL the clone produces the source tree directly and the
// extract step is not declared.
func Steps(p Params) *graph.Registry {
	registry := graph.NewRegistry()

	buildDeps := []string{"extract"}
	if strings.HasSuffix(p.SourceURL, ".git") {
		registry.Declare(&graph.Step{
			Name:     "fetch",
			Artifact: p.SourceDir(),
			Action: &action.GitClone{
				URL:  p.SourceURL,
				Ref:  "v" + p.Version,
				Dest: p.SourceDir(),
			},
		})
		buildDeps = []string{"fetch"}
	} else {
		url := p.SourceURL
		if url == "" {
			url = TarballURL(p.BaseURL, p.Version)
		}
		registry.Declare(&graph.Step{
			Name:     "fetch",
			Artifact: p.ArchivePath(),
			Action: &action.Download{
				URL:  url,
				Path: p.ArchivePath(),
			},
		})
		registry.Declare(&graph.Step{
			Name:     "extract",
			Deps:     []string{"fetch"},
			Artifact: p.SourceDir(),
			Action: &action.Extract{
				Archive: p.ArchivePath(),
				Dest:    p.SourceDir(),
			},
		})
	}

	registry.Declare(&graph.Step{
		Name:     "build-geos",
		Deps:     buildDeps,
		Artifact: p.NativeLib(),
		Pre:      func() error { return env.Validate(p.EnvRoot) },
		Action: &action.Commands{
			Desc: fmt.Sprintf("compile and install GEOS %s into '%s'", geosVersion, p.EnvRoot),
			Dir:  path.Join(p.SourceDir(), "geos-"+geosVersion),
			Sequence: []action.Command{
				{Name: "./configure", Args: []string{"--prefix=" + p.EnvRoot}},
				{Name: "make"},
				{Name: "make", Args: []string{"install"}},
			},
		},
	})

	registry.Declare(&graph.Step{
		Name:     "install",
		Deps:     []string{"build-geos"},
		Artifact: p.EggInfo(),
		Pre:      func() error { return env.Validate(p.EnvRoot) },
		Action: &action.Commands{
			Desc: fmt.Sprintf("install %s %s into '%s'", LibraryName, p.Version, p.EnvRoot),
			Dir:  p.SourceDir(),
			Env:  []string{"GEOS_DIR=" + p.EnvRoot},
			Sequence: []action.Command{
				{Name: "pip", Args: []string{"install", "."}},
			},
		},
	})

	registry.Declare(&graph.Step{
		Name: "verify",
		Deps: []string{"install"},
		Action: &action.Query{
			Desc:    fmt.Sprintf("report the installed %s package", LibraryName),
			Command: action.Command{Name: "pip", Args: []string{"show", LibraryName}},
		},
	})

	return registry
}
