package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/scottbass3/manifestview/internal/classify"
	"github.com/scottbass3/manifestview/internal/render"
)

func newDescribeCommand(a *app) *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "describe <repo> <version>",
		Short: "Show the manifest details of matching images",
		Long: "describe prints markdown details for every visible image of a repo whose product " +
			"version or major.minor version matches. The repo may omit its namespace.",
		Example: `  manifestview describe dotnet/runtime 9.0.1
  manifestview describe aspnet 8.0 --filter osfamily=Alpine --style notty`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			matches := matchImages(view.visibleImages(), args[0], args[1])
			if len(matches) == 0 {
				return fmt.Errorf("no visible image matches %s %s", args[0], args[1])
			}

			renderer, err := glamour.NewTermRenderer(
				markdownStyleOption(a.opts.markdownStyle),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			sections := make([]string, 0, len(matches))
			for _, image := range matches {
				sections = append(sections, render.Markdown(image))
			}
			out, err := renderer.Render(strings.Join(sections, "\n---\n\n"))
			if err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as name=value; repeatable")
	return cmd
}

func markdownStyleOption(style string) glamour.TermRendererOption {
	style = strings.TrimSpace(style)
	if style == "" || style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}

func matchImages(images []render.ImageEntry, repo, version string) []render.ImageEntry {
	repo = strings.Trim(strings.ToLower(strings.TrimSpace(repo)), "/")
	version = strings.TrimSpace(version)
	var out []render.ImageEntry
	for _, image := range images {
		name := strings.ToLower(image.Repo)
		if name != repo && !strings.HasSuffix(name, "/"+repo) {
			continue
		}
		if image.ProductVersion != version && classify.MajorMinorVersion(image.ProductVersion) != version {
			continue
		}
		out = append(out, image)
	}
	return out
}
