package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	fileName = ".docsmith"
	fileType = "yaml"
)

// Config holds the resolved settings for one repository.
type Config struct {
	Root string

	// Tool binary names or paths.
	FormatterBin  string
	StructuralBin string
	ProseBin      string

	// MinVersions maps a tool binary to the minimum accepted version.
	MinVersions map[string]string

	// DocGlobs are the globs handed to the formatter and structural linter.
	DocGlobs []string

	// LintConfig is the structural linter's config path ("" = auto-discover).
	LintConfig string

	// StyleConfig is the prose linter's config path ("" = auto-discover).
	StyleConfig string

	// StyleInclude is the explicit prose-lint file list. Guides not yet
	// onboarded to the style ruleset are excluded by omission here.
	StyleInclude []string

	// ManifestPath is the docs manifest location, relative to Root.
	ManifestPath string

	// IndexTargets are the documents whose index tables are regenerated
	// from the manifest.
	IndexTargets []string
}

// FilePath returns the config file path for a repo root.
func FilePath(root string) string {
	return filepath.Join(root, fileName+"."+fileType)
}

// Load reads .docsmith.yaml from the repo root. A missing file is not an
// error; defaults apply.
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(FilePath(root))
	v.SetConfigType(fileType)
	v.SetEnvPrefix("DOCSMITH")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", FilePath(root), err)
	}

	return &Config{
		Root:          root,
		FormatterBin:  v.GetString("tools.formatter"),
		StructuralBin: v.GetString("tools.structural"),
		ProseBin:      v.GetString("tools.prose"),
		MinVersions:   v.GetStringMapString("tools.min_versions"),
		DocGlobs:      v.GetStringSlice("format.globs"),
		LintConfig:    v.GetString("lint.config"),
		StyleConfig:   v.GetString("style.config"),
		StyleInclude:  v.GetStringSlice("style.include"),
		ManifestPath:  v.GetString("manifest.path"),
		IndexTargets:  v.GetStringSlice("index.targets"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tools.formatter", "prettier")
	v.SetDefault("tools.structural", "markdownlint-cli2")
	v.SetDefault("tools.prose", "vale")
	v.SetDefault("format.globs", []string{"**/*.md"})
	v.SetDefault("lint.config", "")
	v.SetDefault("style.config", "")
	v.SetDefault("style.include", []string{"README.md", "GUIDE.md"})
	v.SetDefault("manifest.path", "docs.yaml")
	v.SetDefault("index.targets", []string{"README.md", "GUIDE.md"})
}

// Get returns a raw config value by key for the `config get` command.
func Get(root, key string) (string, error) {
	v := viper.New()
	v.SetConfigFile(FilePath(root))
	v.SetConfigType(fileType)
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("reading %s: %w", FilePath(root), err)
	}
	return v.GetString(key), nil
}

// Set writes a key-value pair into .docsmith.yaml, creating it if needed.
func Set(root, key, value string) error {
	v := viper.New()
	configFile := FilePath(root)
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", configFile, err)
	}

	v.Set(key, value)

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
