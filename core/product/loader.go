package product

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"oligoseq/core/grammar"
	"oligoseq/core/validate"
)

// file is the on-disk layout:
//
//	products:
//	  sgrna-kit: GUUUUAGAGC...
type file struct {
	Products map[string]string `yaml:"products"`
}

// LoadYAML reads a suffix table. Every suffix must be valid single-letter
// text (RNA or DNA bases); it is stored upper-cased.
func LoadYAML(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(path, raw)
}

// ParseYAML is LoadYAML over bytes; name is only used in error messages.
func ParseYAML(name string, raw []byte) (Table, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("%s: no products defined", name)
	}
	t := make(Table, len(f.Products))
	for slug, suffix := range f.Products {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			return nil, fmt.Errorf("%s: empty product slug", name)
		}
		norm, err := validate.SingleLetter(suffix, grammar.Custom, true)
		if err != nil {
			return nil, fmt.Errorf("%s: product %s: %w", name, slug, err)
		}
		t[slug] = norm
	}
	return t, nil
}
