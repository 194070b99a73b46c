package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/scottbass3/manifestview/internal/render"
)

var tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

func newListCommand(a *app) *cobra.Command {
	var filters []string
	var platforms bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the images visible under the current filters",
		Example: `  manifestview list --filter repo=dotnet/runtime --filter arch=arm64
  manifestview list --url '?osfamily=Alpine&version=9.0' --platforms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, closeLog, err := a.cliLogger()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			view, err := a.loadView(cmd.Context(), log)
			if err != nil {
				return err
			}
			if err := applyFilters(view, filters); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			images := view.visibleImages()
			if len(images) == 0 {
				fmt.Fprintln(out, "No images match the current filters.")
				return nil
			}
			if platforms {
				fmt.Fprintln(out, platformTable(images))
			} else {
				fmt.Fprintln(out, imageTable(images))
			}
			fmt.Fprintf(out, "%d images  %s\n", len(images), view.sync.Location().QueryString())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value; repeatable")
	cmd.Flags().BoolVar(&platforms, "platforms", false, "Print one row per visible platform")
	return cmd
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...)
}

func imageTable(images []render.ImageEntry) string {
	t := newTable("Repo", "Version", "OS", "Arch", "Created", "Reference")
	for _, image := range images {
		t.Row(
			image.Repo,
			image.ProductVersion,
			image.OSFamily.String(),
			strings.Join(image.Architectures, ","),
			placeholder(image.Created),
			placeholder(image.Reference),
		)
	}
	return t.Render()
}

func platformTable(images []render.ImageEntry) string {
	t := newTable("Repo", "Version", "Platform", "OS Version", "Size", "Digest", "Tag")
	for _, image := range images {
		for _, platform := range image.Platforms {
			tag := ""
			if len(platform.Tags) > 0 {
				tag = platform.Tags[0]
			}
			sha := platform.SHA
			if len(sha) > 12 {
				sha = sha[:12]
			}
			t.Row(
				image.Repo,
				image.ProductVersion,
				placeholder(platform.Platform),
				placeholder(platform.OSVersion),
				platform.TotalSize,
				placeholder(sha),
				placeholder(tag),
			)
		}
	}
	return t.Render()
}

func placeholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
