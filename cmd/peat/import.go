package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
	"github.com/aretw0/peat/pkg/frontmatter"
)

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import markdown files as notes",
	Long: `Import reads markdown files, honoring frontmatter headers when present.
Files already imported once keep their identity and are skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		var incoming []peat.Note
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				fatal("Failed to open file", err)
			}
			n, err := frontmatter.Parse(f)
			f.Close()
			if err != nil {
				fatal(fmt.Sprintf("Failed to parse %s", path), err)
			}
			if n.Title == "" {
				base := filepath.Base(path)
				n.Title = strings.TrimSuffix(base, filepath.Ext(base))
			}
			incoming = append(incoming, n)
		}

		added := store.Import(ctx, incoming)
		fmt.Printf("Imported %d of %d notes\n", added, len(incoming))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
