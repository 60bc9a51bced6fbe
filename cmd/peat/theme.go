package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the notebook theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		if len(args) == 0 {
			fmt.Println(store.Theme())
			return
		}

		theme := peat.Theme(args[0])
		if !theme.Valid() {
			fatal("Failed to set theme", fmt.Errorf("unknown theme %q, expected light or dark", args[0]))
		}
		store.SetTheme(ctx, theme)
		fmt.Printf("Theme set to %s\n", theme)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
