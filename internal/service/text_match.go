package service

import (
	"regexp"
	"strings"
)

/*
========================
 Coincidencia de texto
========================
*/

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

// countContained cuenta cuántas palabras clave aparecen (como substring) en s.
func countContained(s string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(s, k) {
			n++
		}
	}
	return n
}

// wordMatcher cuenta ocurrencias de palabras clave respetando límites de palabra.
// Las expresiones se compilan una sola vez.
type wordMatcher struct {
	patterns []*regexp.Regexp
}

func newWordMatcher(keywords []string) wordMatcher {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, k := range keywords {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(k)+`\b`))
	}
	return wordMatcher{patterns: patterns}
}

// Count devuelve el total de ocurrencias en un texto ya en minúsculas.
func (m wordMatcher) Count(lower string) int {
	total := 0
	for _, p := range m.patterns {
		total += len(p.FindAllStringIndex(lower, -1))
	}
	return total
}
