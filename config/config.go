package config

import (
	"os"
	"path"

	"github.com/cartolab/mapstrap/log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the tool-wide settings. All of them can come from the
// config.yaml file, from MAPSTRAP_* environment variables, or from
// command-line flags (in increasing order of precedence).
type Config struct {
	// EnvRoot is the installation prefix of the target Python environment.
	EnvRoot string `mapstructure:"envRoot"`
	// Version of the basemap release to install.
	Version string `mapstructure:"version"`
	// BaseURL is the location release tarballs are downloaded from.
	// The tarball for version X is expected at {baseUrl}/vX.tar.gz.
	BaseURL string `mapstructure:"baseUrl"`
	// SourceURL optionally overrides the derived tarball URL. A URL ending
	// in '.git' makes the fetch step clone the repository instead.
	SourceURL string `mapstructure:"sourceUrl"`
	// CacheDir is where downloaded archives and extracted sources are kept.
	CacheDir string `mapstructure:"cacheDir"`
}

const configFileName = "config.yaml"

// DefaultVersion is the basemap release installed when no version is configured.
const DefaultVersion = "1.2.2"

// DefaultBaseURL is the release archive location of the upstream basemap project.
const DefaultBaseURL = "https://github.com/matplotlib/basemap/archive"

var config *Config

func getConfigDir() (string, error) {
	if configDir, ok := os.LookupEnv("MAPSTRAP_CONFIG_DIR"); ok {
		return configDir, nil
	}

	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return path.Join(xdgConfigHome, "mapstrap"), nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return path.Join(home, ".config", "mapstrap"), nil
}

func defaultCacheDir() string {
	if xdgCacheHome, ok := os.LookupEnv("XDG_CACHE_HOME"); ok {
		return path.Join(xdgCacheHome, "mapstrap")
	}
	home, err := homedir.Dir()
	if err != nil {
		return ".mapstrap-cache"
	}
	return path.Join(home, ".cache", "mapstrap")
}

func defaultEnvRoot() string {
	if venv, ok := os.LookupEnv("VIRTUAL_ENV"); ok {
		return venv
	}
	if conda, ok := os.LookupEnv("CONDA_PREFIX"); ok {
		return conda
	}
	return ""
}

func loadConfiguration() Config {
	v := viper.New()
	v.SetDefault("envRoot", defaultEnvRoot())
	v.SetDefault("version", DefaultVersion)
	v.SetDefault("baseUrl", DefaultBaseURL)
	v.SetDefault("sourceUrl", "")
	v.SetDefault("cacheDir", defaultCacheDir())

	v.SetEnvPrefix("MAPSTRAP")
	v.AutomaticEnv()

	configDir, err := getConfigDir()
	if err != nil {
		log.Debug("Unable to find the config directory. Using default configuration.\n")
	} else {
		configFilePath := path.Join(configDir, configFileName)
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			log.Debug("No configuration file loaded from '%s': %s. Using default configuration.\n", configFilePath, err)
		} else {
			log.Debug("Loaded configuration from '%s'.\n", configFilePath)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatal("Failed to parse configuration: %s.\n", err)
	}
	log.Debug("Running with configuration: %+v\n", config)
	return config
}

// GetConfig returns the tool configuration, loading it on first use.
func GetConfig() Config {
	if config == nil {
		loadedConfig := loadConfiguration()
		config = &loadedConfig
	}
	return *config
}
