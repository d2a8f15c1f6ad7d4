package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"portfolio/internal/layout"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleStar  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List catalog categories and items",
		Long:  `List the categories, the roles that show them and every item with the size class it gets in the unfiltered gallery.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, _, err := newGallery()
			if err != nil {
				return err
			}

			counts := make(map[string]int, len(cat.Categories))
			for _, item := range cat.Items {
				counts[item.Category]++
			}

			out := os.Stdout
			fmt.Fprintln(out, styleTitle.Render("Categories"))
			for _, c := range cat.Categories {
				roles := make([]string, len(c.Roles))
				for i, r := range c.Roles {
					roles[i] = string(r)
				}
				fmt.Fprintf(out, "  %s %d items %s\n", styleKey.Render(c.Label), counts[c.Name], styleDim.Render("("+strings.Join(roles, ", ")+")"))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, styleTitle.Render("Items"))
			for _, item := range layout.Classify(cat.Items) {
				marker := " "
				if item.Featured {
					marker = styleStar.Render("★")
				}
				fmt.Fprintf(out, "%s %s %-7s %-10s %s\n", marker, styleKey.Render(item.ID), item.Size, item.Type, styleDim.Render(item.Title))
			}

			return nil
		},
	}
}
