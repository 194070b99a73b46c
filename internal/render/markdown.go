package render

import (
	"fmt"
	"strings"
)

// Markdown describes one image and its platforms for the detail view.
func Markdown(entry ImageEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", entry.Repo, entry.ProductVersion)
	if entry.Reference != "" {
		fmt.Fprintf(&b, "`%s`\n\n", entry.Reference)
	}
	fmt.Fprintf(&b, "- **Created:** %s\n", placeholder(entry.Created))
	fmt.Fprintf(&b, "- **OS:** %s\n", entry.OSFamily)
	fmt.Fprintf(&b, "- **Distroless:** %s\n", yesNo(entry.Distroless))
	fmt.Fprintf(&b, "- **Composite:** %s\n", yesNo(entry.Composite))
	fmt.Fprintf(&b, "- **Globalization:** %s\n", yesNo(entry.Globalization))
	if len(entry.SharedTags) > 0 {
		fmt.Fprintf(&b, "- **Shared tags:** %s\n", codeList(entry.SharedTags))
	}

	for _, platform := range entry.Platforms {
		fmt.Fprintf(&b, "\n## %s\n\n", placeholder(platform.Platform))
		fmt.Fprintf(&b, "- **Size:** %s\n", platform.TotalSize)
		fmt.Fprintf(&b, "- **Digest:** `%s`\n", placeholder(platform.SHA))
		if platform.BaseImageDigest != "" {
			fmt.Fprintf(&b, "- **Base image:** `%s`\n", platform.BaseImageDigest)
		}
		fmt.Fprintf(&b, "- **Created:** %s\n", placeholder(platform.Created))
		if platform.DockerfileURL != "" {
			fmt.Fprintf(&b, "- **Dockerfile:** [%s](%s)\n", placeholder(platform.Dockerfile), platform.DockerfileURL)
		} else if platform.Dockerfile != "" {
			fmt.Fprintf(&b, "- **Dockerfile:** %s\n", platform.Dockerfile)
		}
		if len(platform.Tags) > 0 {
			fmt.Fprintf(&b, "- **Tags:** %s\n", codeList(platform.Tags))
		}
		if len(platform.Layers) > 0 {
			b.WriteString("\n| Layer | Size |\n| --- | --- |\n")
			for _, layer := range platform.Layers {
				fmt.Fprintf(&b, "| `%s` | %s |\n", shortSHA(layer.SHA), layer.Size)
			}
		}
	}
	return b.String()
}

func codeList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, "`"+value+"`")
	}
	return strings.Join(quoted, ", ")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func placeholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
