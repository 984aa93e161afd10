// Package templates embeds the LaTeX resume template handed to the
// formatting prompt.
package templates

import _ "embed"

//go:embed latex_template.tex
var latexTemplate string

// Resume returns the LaTeX resume template source.
func Resume() string {
	return latexTemplate
}
