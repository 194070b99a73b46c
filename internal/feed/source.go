package feed

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultHost = "raw.githubusercontent.com"
	DefaultOrg  = "dotnet"
	DefaultRepo = "versions"
	DefaultRef  = "refs/heads/main"
	DefaultFile = "dotnet-dotnet-docker-main"
)

// Query parameters that select the feed rather than filter it.
const (
	ParamRef    = "ref"
	ParamBranch = "branch"
	ParamFile   = "file"
)

// Source identifies one image-info document in the build-info tree.
type Source struct {
	Host string
	Org  string
	Repo string
	Ref  string
	File string
}

func DefaultSource() Source {
	return Source{
		Host: DefaultHost,
		Org:  DefaultOrg,
		Repo: DefaultRepo,
		Ref:  DefaultRef,
		File: DefaultFile,
	}
}

// URL interpolates the source into the build-info path template.
func (s Source) URL() string {
	s = s.withDefaults()
	return fmt.Sprintf("https://%s/%s/%s/%s/build-info/docker/image-info.%s.json",
		strings.Trim(s.Host, "/"),
		strings.Trim(s.Org, "/"),
		strings.Trim(s.Repo, "/"),
		strings.Trim(s.Ref, "/"),
		s.File,
	)
}

func (s Source) withDefaults() Source {
	def := DefaultSource()
	s.Host = firstNonEmpty(s.Host, def.Host)
	s.Org = firstNonEmpty(s.Org, def.Org)
	s.Repo = firstNonEmpty(s.Repo, def.Repo)
	s.Ref = firstNonEmpty(s.Ref, def.Ref)
	s.File = firstNonEmpty(s.File, def.File)
	return s
}

// SourceFromQuery overrides ref and file from query parameters. The legacy branch
// parameter is honoured when ref is absent.
func SourceFromQuery(values url.Values, defaults Source) Source {
	out := defaults.withDefaults()
	if ref := strings.TrimSpace(values.Get(ParamRef)); ref != "" {
		out.Ref = ref
	} else if branch := strings.TrimSpace(values.Get(ParamBranch)); branch != "" {
		out.Ref = branch
	}
	if file := strings.TrimSpace(values.Get(ParamFile)); file != "" {
		out.File = file
	}
	return out
}

func firstNonEmpty(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
