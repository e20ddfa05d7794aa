// Package textnorm normaliza términos de búsqueda escritos por el usuario:
// minúsculas, sin tildes ni marcas diacríticas y sin espacios sobrantes, para
// que "Café" y "cafe" busquen lo mismo.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // quita las marcas combinantes (tildes, diéresis)
	norm.NFC,
)

// Fold devuelve el término en minúsculas, sin diacríticos y recortado.
func Fold(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no normalizable: se busca tal cual vino
		return s
	}
	return folded
}
