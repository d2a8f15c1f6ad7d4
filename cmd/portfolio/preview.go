package main

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"portfolio/internal/layout"
	"portfolio/internal/terminal"
)

func newPreviewCmd() *cobra.Command {
	var (
		category string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the gallery in the terminal",
		Long: `Draw the gallery sized to the terminal and redraw it when the window is resized.
Narrow terminals page through the items with n and p (or 1-9); q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, svc, err := newGallery()
			if err != nil {
				return err
			}

			filter, err := cliFilter(category, role)
			if err != nil {
				return err
			}

			items, err := svc.ListItems(cmd.Context(), filter)
			if err != nil {
				return err
			}

			var program atomic.Pointer[tea.Program]

			vp := terminal.NewViewport(0)
			view := layout.NewView(vp, items, layout.ViewOptions{
				Heights:        cfg.Gallery.Heights,
				PageSize:       cfg.Gallery.PageSize,
				ResizeDebounce: cfg.Gallery.ResizeDebounce,
			}, terminal.Redraw(program.Load))
			defer view.Close()

			p := tea.NewProgram(terminal.NewModel(vp, view), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			program.Store(p)

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only items of this category")
	cmd.Flags().StringVar(&role, "role", "", "only categories shown for this role")

	return cmd
}
