package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mapterm [file]",
	Short: "A terminal mind mapper",
	Long:  "mapterm is a mouse-driven mind-map editor for the terminal.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := loadConfig()
		startFile := ""
		if len(args) == 1 {
			startFile = args[0]
		}
		p := tea.NewProgram(
			initialModel(config, startFile),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		_, err := p.Run()
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <map.txt> <out.png>",
	Short: "Render a saved map to a PNG image without opening the editor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, _, err := LoadMindMap(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}
		e := NewEngine("", 80*cellWidth, 23*cellHeight)
		e.AdoptDocument(doc, 0, 0)
		if err := ExportPNG(e, args[1]); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(os.Stdout, "exported %s\n", args[1])
		return nil
	},
}

func main() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
