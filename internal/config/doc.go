// Package config loads docsmith settings from the repository's
// .docsmith.yaml via Viper, with DOCSMITH_* environment overrides. Every
// setting is per-repository (tool binaries, globs, the prose-lint include
// list), so the config lives at the repo root rather than under $HOME.
package config
