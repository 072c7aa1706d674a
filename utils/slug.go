package utils

import "strings"

// NormalizeCategorySlug maps a URL slug to the canonical stored category
// form: lowercase, hyphens folded to spaces, trailing word singularized.
// "Sheet-Masks" and "sheet masks" both become "sheet mask".
func NormalizeCategorySlug(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}

	words := strings.Split(s, " ")
	words[len(words)-1] = singularize(words[len(words)-1])
	return strings.Join(words, " ")
}

// NormalizeBrandSlug folds a brand slug to the lowercase spaced form brands
// are stored in ("cosrx", "beauty-of-joseon" -> "beauty of joseon").
func NormalizeBrandSlug(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"):
		return word
	case strings.HasSuffix(word, "es") && (strings.HasSuffix(word, "shes") || strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "xes")):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && len(word) > 1:
		return word[:len(word)-1]
	default:
		return word
	}
}
