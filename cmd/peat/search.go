package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find notes by title or content",
	Long:  `Search performs the same case insensitive substring match as the notebook's / prompt.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		var matches []peat.Note
		for n := range store.List(args[0]) {
			matches = append(matches, n)
		}

		if searchJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(matches); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range matches {
			fmt.Printf("%s  %-30s  %s\n", n.ID, displayableTitle(n), n.Updated().Format("2006-01-02 15:04"))
		}
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "No notes match %q\n", args[0])
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
