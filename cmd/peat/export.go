package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aretw0/peat"
	"github.com/aretw0/peat/pkg/frontmatter"
)

var (
	exportFormat string
	exportOut    string
	exportAll    bool
)

var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var exportCmd = &cobra.Command{
	Use:   "export [ref]",
	Short: "Export notes as markdown or HTML",
	Long: `Export writes a note as markdown with a frontmatter header, or as a
standalone HTML document. With --all every note is written to a directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if exportAll == (len(args) == 1) {
			fatal("Failed to export", fmt.Errorf("pass exactly one of a note reference or --all"))
		}

		settings := loadSettings()
		ctx := context.Background()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		if exportAll {
			dir := exportOut
			if dir == "" {
				dir = "."
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				fatal("Failed to create export directory", err)
			}
			count := 0
			for _, n := range store.Notes() {
				data, err := renderExport(n)
				if err != nil {
					fatal("Failed to render note", err)
				}
				path := filepath.Join(dir, exportFilename(n))
				if err := os.WriteFile(path, data, 0644); err != nil {
					fatal("Failed to write export", err)
				}
				count++
			}
			fmt.Printf("Exported %d notes to %s\n", count, dir)
			return
		}

		n, err := resolveNote(store, args[0])
		if err != nil {
			fatal("Failed to export note", err)
		}
		data, err := renderExport(n)
		if err != nil {
			fatal("Failed to render note", err)
		}

		if exportOut == "" {
			os.Stdout.Write(data)
			return
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			fatal("Failed to write export", err)
		}
		fmt.Printf("Exported %s to %s\n", displayableTitle(n), exportOut)
	},
}

func renderExport(n peat.Note) ([]byte, error) {
	switch exportFormat {
	case "markdown", "md":
		return frontmatter.Render(n)
	case "html":
		var body bytes.Buffer
		if err := htmlRenderer.Convert([]byte(n.Content), &body); err != nil {
			return nil, fmt.Errorf("failed to convert markdown: %w", err)
		}
		var doc bytes.Buffer
		doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
		fmt.Fprintf(&doc, "<title>%s</title>\n", htmlEscape(displayableTitle(n)))
		doc.WriteString("</head>\n<body>\n")
		fmt.Fprintf(&doc, "<h1>%s</h1>\n", htmlEscape(displayableTitle(n)))
		doc.Write(body.Bytes())
		doc.WriteString("</body>\n</html>\n")
		return doc.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected markdown or html", exportFormat)
	}
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// exportFilename derives a stable, filesystem safe name for a note.
func exportFilename(n peat.Note) string {
	ext := ".md"
	if exportFormat == "html" {
		ext = ".html"
	}

	slug := strings.ToLower(displayableTitle(n))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "note"
	}

	short := n.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return slug + "-" + short + ext
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "Output format (markdown, html)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file, or directory with --all")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every note")
}
