// Package scaffold provides the embedded starter files written by
// `siteconf init`. Files use Go text/template syntax and have a .tmpl
// suffix.
package scaffold

import "embed"

//go:embed all:templates
var Templates embed.FS
