package assets

import (
	"errors"
	"sort"
)

// AssetResolver looks styles up through an ordered chain of loaders: the
// --asset-path directory when one is configured, then the built-in styles.
// A custom style therefore overrides a built-in style of the same name.
type AssetResolver struct {
	loaders []AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath gives the
// built-in styles only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	var loaders []AssetLoader
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		loaders = append(loaders, custom)
	}
	return &AssetResolver{loaders: append(loaders, NewEmbeddedLoader())}, nil
}

// LoadStyle returns the first loader's copy of name. Only ErrStyleNotFound
// moves on to the next loader.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	var err error
	for _, l := range r.loaders {
		var css string
		if css, err = l.LoadStyle(name); !errors.Is(err, ErrStyleNotFound) {
			return css, err
		}
	}
	return "", err
}

// ListStyles returns the sorted union of every loader's styles.
func (r *AssetResolver) ListStyles() ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, l := range r.loaders {
		list, err := l.ListStyles()
		if err != nil {
			return nil, err
		}
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

var _ AssetLoader = (*AssetResolver)(nil)
