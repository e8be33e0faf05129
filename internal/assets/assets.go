package assets

// defaultLoader serves the package-level helpers.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in CSS style by name.
// Returns ErrStyleNotFound if the style does not exist.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// ListStyles returns the names of the built-in styles.
func ListStyles() ([]string, error) {
	return defaultLoader.ListStyles()
}
