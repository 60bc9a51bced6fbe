package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [ref]",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Long:  `Delete permanently removes a note, referenced by ID, title, or ID prefix.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		n, err := resolveNote(store, args[0])
		if err != nil {
			fatal("Failed to delete note", err)
		}

		store.Delete(ctx, n.ID)
		fmt.Printf("Deleted %s (%s)\n", displayableTitle(n), n.ID)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
