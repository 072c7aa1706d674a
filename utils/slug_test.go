package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategorySlug(t *testing.T) {
	cases := map[string]string{
		"cleansers":       "cleanser",
		"Sheet-Masks":     "sheet mask",
		"sheet masks":     "sheet mask",
		"SERUMS":          "serum",
		"sunscreen":       "sunscreen",
		"eye-creams":      "eye cream",
		"essences":        "essence",
		"toner":           "toner",
		"lip--balms":      "lip balm",
		"  moisturizers ": "moisturizer",
		"":                "",
	}

	for slug, want := range cases {
		assert.Equal(t, want, NormalizeCategorySlug(slug), "slug %q", slug)
	}
}

func TestNormalizeCategorySlugKeepsNonPluralSuffixes(t *testing.T) {
	// Words ending in "ss"/"us" are not plural.
	assert.Equal(t, "glass", NormalizeCategorySlug("glass"))
	assert.Equal(t, "focus", NormalizeCategorySlug("focus"))
}

func TestNormalizeBrandSlug(t *testing.T) {
	assert.Equal(t, "beauty of joseon", NormalizeBrandSlug("Beauty-of-Joseon"))
	assert.Equal(t, "cosrx", NormalizeBrandSlug("COSRX"))
	assert.Equal(t, "some by mi", NormalizeBrandSlug("some--by--mi"))
}
