package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/guide"
	"github.com/docsmith-dev/docsmith/internal/pipeline"
	"github.com/docsmith-dev/docsmith/internal/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the checks whenever a guide changes",
	Long: `Watch the category directories and re-run 'docsmith check' on every
markdown change, debounced. Ctrl-C stops watching. Check failures are
reported and watching continues; the command itself exits zero on Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ts := buildTools(cfg)
		tree := buildTree(cfg)

		w, err := watch.New(watch.DefaultDebounce)
		if err != nil {
			return err
		}
		defer w.Close()

		watched := 0
		for _, c := range guide.Categories() {
			dir := filepath.Join(rootDir, c.Dir())
			if _, err := os.Stat(dir); err != nil {
				continue
			}
			if err := w.Add(dir); err != nil {
				return err
			}
			watched++
		}
		if watched == 0 {
			return fmt.Errorf("no category directories to watch under %s", rootDir)
		}
		w.Start()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runOnce := func() {
			stages := pipeline.CheckStages(ts.formatter, ts.structural, ts.prose, tree)
			if s := indexStage(cfg); s != nil {
				stages = append(stages, *s)
			}
			if err := runPipeline(ctx, stages); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}

		fmt.Println("Watching for guide changes (Ctrl-C to stop)")
		runOnce()

		for {
			select {
			case <-ctx.Done():
				return nil
			case batch := <-w.Events:
				fmt.Printf("\n%d file(s) changed, re-checking\n", len(batch))
				runOnce()
			case err := <-w.Errors:
				fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
			}
		}
	},
}
