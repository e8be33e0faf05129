// Package assets provides the CSS styles injected into generated man pages.
//
// Styles come from two places:
//
//	EmbeddedLoader    built-in styles compiled into the binary (default, dark, print)
//	FilesystemLoader  {path}/styles/{name}.css, or {path}/{name}.css for a flat directory
//
// AssetResolver chains them, asset path first, so a custom directory can add
// styles or override single built-in ones.
//
// Style names are restricted to letters, digits, '-' and '_'. FilesystemLoader
// also resolves symlinks and refuses files outside its directory.
package assets
