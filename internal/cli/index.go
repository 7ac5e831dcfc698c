package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/manifest"
)

var indexCheck bool

func init() {
	indexCmd.Flags().BoolVar(&indexCheck, "check", false, "Verify the tables are current without writing")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Regenerate the guide index tables from the docs manifest",
	Long: `Rewrite the generated index tables in the configured index documents from
docs.yaml. Only the section between the docsmith:index marker comments is
touched; everything else in those documents is hand-authored prose and left
alone. Documents without markers are skipped with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		m, err := manifest.Load(filepath.Join(rootDir, cfg.ManifestPath))
		if err != nil {
			return err
		}

		stale := 0
		for _, target := range cfg.IndexTargets {
			path := filepath.Join(rootDir, target)

			if indexCheck {
				current, err := manifest.CheckIndex(path, m)
				if err != nil {
					if errors.Is(err, manifest.ErrNoMarkers) {
						fmt.Printf("[SKIP] %s: no index markers\n", target)
						continue
					}
					return err
				}
				if current {
					fmt.Printf("[ OK ] %s\n", target)
				} else {
					fmt.Printf("[FAIL] %s: index tables out of date\n", target)
					stale++
				}
				continue
			}

			changed, err := manifest.UpdateIndex(path, m)
			if err != nil {
				if errors.Is(err, manifest.ErrNoMarkers) {
					fmt.Printf("[SKIP] %s: no index markers (add %s and %s to adopt generation)\n",
						target, manifest.MarkerStart, manifest.MarkerEnd)
					continue
				}
				return err
			}
			if changed {
				fmt.Printf("Updated %s\n", target)
			} else {
				fmt.Printf("%s already current\n", target)
			}
		}

		if stale > 0 {
			return fmt.Errorf("%d index document(s) out of date (run `docsmith index`)", stale)
		}
		return nil
	},
}
