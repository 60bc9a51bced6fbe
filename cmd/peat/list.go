package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		notes := store.Notes()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range notes {
			fmt.Printf("%s  %-30s  %s\n", n.ID, displayableTitle(n), n.Updated().Format("2006-01-02 15:04"))
		}
	},
}

func displayableTitle(n peat.Note) string {
	if n.Title == "" {
		return "(untitled)"
	}
	return n.Title
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
