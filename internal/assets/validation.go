package assets

import "fmt"

// maxAssetNameLength bounds style names; they become file names.
const maxAssetNameLength = 64

// ValidateAssetName checks that name is a bare style name: ASCII letters,
// digits, '-' and '_', starting with a letter or digit. Anything that could
// act as a path or an extension is rejected.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxAssetNameLength)
	}
	for i, r := range name {
		if isNameRune(r) || (i > 0 && (r == '-' || r == '_')) {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
