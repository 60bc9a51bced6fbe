package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
)

var addContent string

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a note",
	Long: `Create a note with the given title. Content can be passed with
--content, or piped in by passing "-" (e.g. pbpaste | peat add Clip -c -).`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		content := addContent
		if content == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		id := store.Create(ctx)
		patch := peat.Patch{}
		if title := strings.TrimSpace(strings.Join(args, " ")); title != "" {
			patch.Title = peat.String(title)
		}
		if content != "" {
			patch.Content = peat.String(content)
		}
		if patch.Title != nil || patch.Content != nil {
			store.Update(ctx, id, patch)
		}

		n, _ := store.Get(id)
		fmt.Printf("Created %s (%s)\n", n.Title, id)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
}
