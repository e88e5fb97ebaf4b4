// Package catalog provides the static product lookup table backing the
// storefront and the intake receipt form. The catalog is data, not logic: it
// is loaded once from a YAML document and never mutated afterwards.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// fuzzyAllowanceDivisor scales the edit distance FindClosest accepts to the
// query length. A third of the query keeps long names tolerant of typos while
// short or empty queries need near-exact spelling instead of resolving to an
// arbitrary product.
const fuzzyAllowanceDivisor = 3

// Product is one catalog entry. Weight is a display label only; the tool
// recommendation load model deliberately ignores it.
type Product struct {
	Name      string  `yaml:"name"`
	UnitPrice float64 `yaml:"unit_price"`
	Location  string  `yaml:"location"`
	Category  string  `yaml:"category"`
	Weight    string  `yaml:"weight"`
}

// Validate checks a single product entry for completeness.
func (p Product) Validate() error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if p.UnitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%.2f is negative for %q", p.UnitPrice, p.Name))
	}
	if _, err := kernel.ParseShelfLocation(p.Location); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("product location", err)
	}
	return nil
}

// ShelfLocation returns the product's parsed storage location.
func (p Product) ShelfLocation() kernel.ShelfLocation {
	loc, _ := kernel.ParseShelfLocation(p.Location)
	return loc
}

// Catalog is an immutable, ordered collection of products.
type Catalog struct {
	products []Product
	byName   map[string]int
}

// catalogFile is the YAML document shape.
type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Parse decodes and validates a catalog YAML payload.
// Product order in the document is preserved; duplicate names are rejected.
func Parse(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errs.NewValueIsRequiredError("catalog payload")
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("catalog payload", err)
	}
	if len(file.Products) == 0 {
		return nil, errs.NewValueIsRequiredError("catalog products")
	}

	c := &Catalog{
		products: file.Products,
		byName:   make(map[string]int, len(file.Products)),
	}
	for i, p := range file.Products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := normalizeName(p.Name)
		if _, exists := c.byName[key]; exists {
			return nil, errs.NewConflictError("product name", p.Name)
		}
		c.byName[key] = i
	}

	return c, nil
}

// LoadFile reads a catalog YAML document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		// The embedded document is fixed at build time; failing to parse it
		// is a programming error.
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Products returns all catalog entries in document order.
// The returned slice must not be mutated by callers.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Find looks up a product by exact name, case-insensitively.
func (c *Catalog) Find(name string) (Product, bool) {
	i, ok := c.byName[normalizeName(name)]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// FindClosest returns the catalog product whose name has the smallest
// Levenshtein distance to the query. Exact matches win outright; otherwise
// the closest entry within a third of the query's length is returned. Empty
// and blank queries never match. The second return value is false when
// nothing is close enough.
func (c *Catalog) FindClosest(query string) (Product, bool) {
	if p, ok := c.Find(query); ok {
		return p, true
	}

	normalized := normalizeName(query)
	if normalized == "" {
		return Product{}, false
	}

	best := -1
	bestDistance := len(normalized)/fuzzyAllowanceDivisor + 1
	for i, p := range c.products {
		d := levenshtein.ComputeDistance(normalized, normalizeName(p.Name))
		if d < bestDistance {
			bestDistance = d
			best = i
		}
	}

	if best < 0 {
		return Product{}, false
	}
	return c.products[best], true
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
