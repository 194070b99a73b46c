package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/scottbass3/manifestview/internal/filter"
	"github.com/scottbass3/manifestview/internal/logging"
	"github.com/scottbass3/manifestview/internal/render"
	"github.com/scottbass3/manifestview/internal/urlstate"
)

// feedView is a fetched and rendered feed with the location's filters applied.
type feedView struct {
	images []render.ImageEntry
	sync   *urlstate.Sync
}

func (v feedView) visibleImages() []render.ImageEntry {
	indices := v.sync.Visibility().VisibleImages()
	out := make([]render.ImageEntry, 0, len(indices))
	for _, index := range indices {
		image := v.images[index]
		visible := v.sync.Visibility().VisiblePlatforms(index)
		platforms := make([]render.PlatformEntry, 0, len(visible))
		for _, p := range visible {
			platforms = append(platforms, image.Platforms[p])
		}
		image.Architectures = image.ArchitecturesOf(visible)
		image.Platforms = platforms
		out = append(out, image)
	}
	return out
}

func (a *app) cliLogger() (logr.Logger, func() error, error) {
	return logging.New(a.cfg.Log.Level, a.cfg.Log.File)
}

func (a *app) loadView(ctx context.Context, log logr.Logger) (feedView, error) {
	location, err := a.location()
	if err != nil {
		return feedView{}, err
	}
	dims, err := a.cfg.FilterDimensions()
	if err != nil {
		return feedView{}, err
	}
	target := a.feedTarget(location)
	f, err := a.fetcher(log, nil).FetchLocation(ctx, target)
	if err != nil {
		return feedView{}, err
	}
	images := a.renderer().Render(f)
	return feedView{
		images: images,
		sync:   urlstate.New(location, dims, render.Entries(images)),
	}, nil
}

// applyFilters sets name=value pairs on the view. Unlike URL values, a value outside
// the dimension's options is an error here.
func applyFilters(view feedView, pairs []string) error {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q: expected name=value", pair)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		control, ok := view.sync.Control(name)
		if !ok {
			dims := make([]filter.Dimension, 0, len(view.sync.Controls()))
			for _, c := range view.sync.Controls() {
				dims = append(dims, c.Dimension)
			}
			dim, found := filter.Find(dims, name)
			if !found {
				return fmt.Errorf("%w: %s", filter.ErrUnknownDimension, name)
			}
			control, _ = view.sync.Control(dim.Name)
		}
		matched, ok := control.Match(value)
		if !ok {
			return fmt.Errorf("no %s option %q (have %s)", control.Dimension.Name, value, strings.Join(control.Values(), ", "))
		}
		if err := view.sync.Change(control.Dimension.Name, matched); err != nil {
			return err
		}
	}
	return nil
}
