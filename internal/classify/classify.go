// Package classify derives categorical attributes from raw image-info fields.
package classify

import (
	"regexp"
	"strings"

	"github.com/scottbass3/manifestview/internal/feed"
)

type Family string

const (
	FamilyUbuntu            Family = "Ubuntu"
	FamilyDebian            Family = "Debian"
	FamilyAlpine            Family = "Alpine"
	FamilyAzureLinux        Family = "Azure Linux"
	FamilyCBLMariner        Family = "CBL Mariner"
	FamilyWindowsServerCore Family = "Windows Server Core"
	FamilyWindowsNanoServer Family = "Windows Nano Server"
	FamilyOther             Family = "Other"
)

func (f Family) String() string {
	return string(f)
}

// FamilyRule maps OS-version substrings to a family. Rules are checked in order and
// the first match wins.
type FamilyRule struct {
	Family   Family
	Contains []string
}

// DefaultFamilyRules checks azure before cbl. Current feeds name Azure Linux 3.0 images
// "azurelinux3.0" and CBL Mariner images "cbl-mariner2.0", so the two never overlap.
var DefaultFamilyRules = []FamilyRule{
	{Family: FamilyUbuntu, Contains: []string{"jammy", "noble"}},
	{Family: FamilyDebian, Contains: []string{"trixie", "bookworm"}},
	{Family: FamilyAlpine, Contains: []string{"alpine"}},
	{Family: FamilyAzureLinux, Contains: []string{"azure"}},
	{Family: FamilyCBLMariner, Contains: []string{"cbl"}},
	{Family: FamilyWindowsServerCore, Contains: []string{"servercore"}},
	{Family: FamilyWindowsNanoServer, Contains: []string{"nano"}},
}

var majorMinorPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// Attributes are the derived values for one platform (or an image's representative platform).
type Attributes struct {
	OSFamily      Family
	Distroless    bool
	Composite     bool
	Globalization bool
}

// Classifier holds the family precedence. The zero value uses DefaultFamilyRules.
type Classifier struct {
	rules []FamilyRule
}

type Option func(*Classifier)

func WithFamilyRules(rules []FamilyRule) Option {
	return func(c *Classifier) {
		c.rules = rules
	}
}

func New(opts ...Option) Classifier {
	c := Classifier{rules: DefaultFamilyRules}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Classifier) familyRules() []FamilyRule {
	if c.rules == nil {
		return DefaultFamilyRules
	}
	return c.rules
}

func (c Classifier) OSFamily(osVersion string) Family {
	value := strings.ToLower(osVersion)
	for _, rule := range c.familyRules() {
		for _, needle := range rule.Contains {
			if needle != "" && strings.Contains(value, strings.ToLower(needle)) {
				return rule.Family
			}
		}
	}
	return FamilyOther
}

func (c Classifier) Globalization(osVersion string, tags []string) bool {
	if anyContains(tags, "extra") {
		return true
	}
	if IsDistroless(osVersion) {
		return false
	}
	family := c.OSFamily(osVersion)
	return family == FamilyUbuntu || family == FamilyDebian
}

func (c Classifier) Classify(platform feed.Platform) Attributes {
	return Attributes{
		OSFamily:      c.OSFamily(platform.OsVersion),
		Distroless:    IsDistroless(platform.OsVersion),
		Composite:     IsComposite(platform.SimpleTags),
		Globalization: c.Globalization(platform.OsVersion, platform.SimpleTags),
	}
}

// ClassifyImage classifies an image through its representative platform.
func (c Classifier) ClassifyImage(image feed.Image) Attributes {
	return c.Classify(image.Representative())
}

func OSFamily(osVersion string) Family {
	return Classifier{}.OSFamily(osVersion)
}

func IsDistroless(osVersion string) bool {
	value := strings.ToLower(osVersion)
	return strings.Contains(value, "distroless") || strings.Contains(value, "chisel")
}

func IsComposite(tags []string) bool {
	return anyContains(tags, "composite")
}

// Globalization reports whether culture data ships in the image: either an "extra"
// variant was requested, or the OS is a full Debian/Ubuntu userland.
func Globalization(osVersion string, tags []string) bool {
	return Classifier{}.Globalization(osVersion, tags)
}

// MajorMinorVersion returns the first "X.Y" group of a product version, or the input
// unchanged when there is none.
func MajorMinorVersion(productVersion string) string {
	match := majorMinorPattern.FindStringSubmatch(productVersion)
	if match == nil {
		return productVersion
	}
	return match[1] + "." + match[2]
}

func Architectures(platforms []feed.Platform) []string {
	if len(platforms) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(platforms))
	out := make([]string, 0, len(platforms))
	for _, platform := range platforms {
		arch := strings.TrimSpace(platform.Architecture)
		if arch == "" || seen[arch] {
			continue
		}
		seen[arch] = true
		out = append(out, arch)
	}
	return out
}

func anyContains(values []string, needle string) bool {
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
