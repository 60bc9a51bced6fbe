package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
)

var (
	readJSON  bool
	readPlain bool
)

var readCmd = &cobra.Command{
	Use:   "read [ref]",
	Short: "Read a note",
	Long: `Read a note by ID, title, or ID prefix. Content is rendered as styled
terminal markdown; --plain prints the raw text and --json the full record.`,
	Args: cobra.ExactArgs(1),
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
			fatal("Failed to read note", err)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(n); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if readPlain {
			printRaw(n.Content)
			return
		}

		out, err := renderMarkdown(n.Content, store.Theme())
		if err != nil {
			// Styled output is cosmetic; the note itself must still print.
			printRaw(n.Content)
			return
		}
		fmt.Print(out)
	},
}

// renderMarkdown styles the note the way the notebook's preview pane does,
// following the persisted theme.
func renderMarkdown(content string, theme peat.Theme) (string, error) {
	style := "light"
	if theme == peat.ThemeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

func printRaw(content string) {
	fmt.Print(content)
	if content != "" && content[len(content)-1] != '\n' {
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
	readCmd.Flags().BoolVar(&readPlain, "plain", false, "Print raw content without styling")
}
