package feed

// Feed is the decoded image-info document.
type Feed struct {
	Repos []Repo `json:"repos"`
}

type Repo struct {
	Name   string  `json:"repo"`
	Images []Image `json:"images"`
}

type Image struct {
	ProductVersion string     `json:"productVersion"`
	Platforms      []Platform `json:"platforms"`
	Manifest       *Manifest  `json:"manifest,omitempty"`
}

// Manifest describes the multi-platform manifest list an image is published under.
type Manifest struct {
	Digest     string   `json:"digest"`
	Created    string   `json:"created"`
	SharedTags []string `json:"sharedTags"`
}

type Platform struct {
	Dockerfile      string   `json:"dockerfile"`
	Architecture    string   `json:"architecture"`
	OsType          string   `json:"osType"`
	OsVersion       string   `json:"osVersion"`
	Digest          string   `json:"digest"`
	BaseImageDigest string   `json:"baseImageDigest,omitempty"`
	Created         string   `json:"created"`
	CommitURL       string   `json:"commitUrl,omitempty"`
	SimpleTags      []string `json:"simpleTags"`
	Layers          []Layer  `json:"layers"`
}

type Layer struct {
	Digest string `json:"digest"`
	Size   int64  `json:"size"`
}

// Representative returns the platform image-level classification is derived from.
// Every platform of an image is assumed to share its OS; only the first one is consulted.
func (i Image) Representative() Platform {
	if len(i.Platforms) == 0 {
		return Platform{}
	}
	return i.Platforms[0]
}

func (i Image) SharedTags() []string {
	if i.Manifest == nil {
		return nil
	}
	return i.Manifest.SharedTags
}

func (p Platform) TotalSize() int64 {
	var total int64
	for _, layer := range p.Layers {
		total += layer.Size
	}
	return total
}

func (f Feed) ImageCount() int {
	count := 0
	for _, repo := range f.Repos {
		count += len(repo.Images)
	}
	return count
}

func (f Feed) PlatformCount() int {
	count := 0
	for _, repo := range f.Repos {
		for _, image := range repo.Images {
			count += len(image.Platforms)
		}
	}
	return count
}
