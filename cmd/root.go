package cmd

import (
	"os"

	"github.com/cartolab/mapstrap/config"
	"github.com/cartolab/mapstrap/env"
	"github.com/cartolab/mapstrap/graph"
	"github.com/cartolab/mapstrap/log"
	"github.com/cartolab/mapstrap/recipe"
	"github.com/cartolab/mapstrap/util"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mapstrap",
	Short: "Installs the basemap plotting toolkit into an isolated Python environment",
	Long: `mapstrap downloads a basemap release, compiles its native GEOS dependency,
and installs both into an isolated Python environment. The work is organized
as a graph of build steps; a step whose output artifact already exists on
disk is skipped.`,
}

var (
	envRootFlag   string
	versionFlag   string
	baseURLFlag   string
	sourceURLFlag string
	cacheDirFlag  string
	recipeFlag    string
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&envRootFlag, "env-root", "", "Installation prefix of the target Python environment")
	rootCmd.PersistentFlags().StringVar(&versionFlag, "release", "", "basemap release version to install")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Base URL release tarballs are downloaded from")
	rootCmd.PersistentFlags().StringVar(&sourceURLFlag, "source-url", "", "Explicit source URL (a '.git' URL is cloned instead of downloaded)")
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "Directory downloaded archives and sources are cached in")
	rootCmd.PersistentFlags().StringVar(&recipeFlag, "recipe", "", "Recipe file with additional user steps")
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}

// pipelineParams merges the configuration with command-line overrides and
// probes the active interpreter.
func pipelineParams() recipe.Params {
	cfg := config.GetConfig()
	params := recipe.Params{
		EnvRoot:   cfg.EnvRoot,
		Version:   cfg.Version,
		BaseURL:   cfg.BaseURL,
		SourceURL: cfg.SourceURL,
		CacheDir:  cfg.CacheDir,
	}
	if envRootFlag != "" {
		params.EnvRoot = envRootFlag
	}
	if versionFlag != "" {
		params.Version = versionFlag
	}
	if baseURLFlag != "" {
		params.BaseURL = baseURLFlag
	}
	if sourceURLFlag != "" {
		params.SourceURL = sourceURLFlag
	}
	if cacheDirFlag != "" {
		params.CacheDir = cacheDirFlag
	}

	if params.EnvRoot == "" {
		log.Fatal("No environment root configured. Activate an environment or pass --env-root.\n")
	}

	pythonTag, err := env.PythonTag()
	if err != nil {
		log.Fatal("Failed to determine the interpreter version: %s.\n", err)
	}
	params.PythonTag = pythonTag
	log.Debug("Target environment: '%s', python %s.\n", params.EnvRoot, params.PythonTag)
	return params
}

// loadRegistry declares the built-in pipeline and any user recipe steps.
func loadRegistry(params recipe.Params) *graph.Registry {
	registry := recipe.Steps(params)

	recipeFile := recipeFlag
	if recipeFile == "" && util.FileExists(recipe.UserFileName) {
		recipeFile = recipe.UserFileName
	}
	if recipeFile != "" {
		log.Debug("Loading user recipe '%s'.\n", recipeFile)
		if err := recipe.LoadUserSteps(recipeFile, params, registry); err != nil {
			log.Fatal("%s.\n", err)
		}
	}
	return registry
}
