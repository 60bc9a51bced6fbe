package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of peat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("peat version %s\n", peat.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
