package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TemirB/smm-orders/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type entry struct {
	Key       string `yaml:"key"`
	Name      string `yaml:"name"`
	ServiceID int64  `yaml:"service_id"`
	Panel     string `yaml:"panel"`
	Quantity  int    `yaml:"quantity"`
}

type file struct {
	Comments []entry `yaml:"comments"`
	Services []entry `yaml:"services"`
}

// Catalog is the static, ordered list of orderable services.
type Catalog struct {
	services []domain.ServiceOrderSpec
	comments map[domain.Panel]domain.ServiceOrderSpec
	byKey    map[string]domain.ServiceOrderSpec
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file, or returns the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		comments: make(map[domain.Panel]domain.ServiceOrderSpec),
		byKey:    make(map[string]domain.ServiceOrderSpec),
	}
	for _, e := range f.Comments {
		spec, err := e.spec(domain.CommentList)
		if err != nil {
			return nil, err
		}
		if _, dup := c.comments[spec.Panel]; dup {
			return nil, fmt.Errorf("catalog: second comment service for panel %s", spec.Panel)
		}
		if err := c.add(spec); err != nil {
			return nil, err
		}
		c.comments[spec.Panel] = spec
	}
	for _, e := range f.Services {
		spec, err := e.spec(domain.FixedQuantity)
		if err != nil {
			return nil, err
		}
		if err := c.add(spec); err != nil {
			return nil, err
		}
		c.services = append(c.services, spec)
	}
	return c, nil
}

func (c *Catalog) add(spec domain.ServiceOrderSpec) error {
	if _, dup := c.byKey[spec.Key]; dup {
		return fmt.Errorf("catalog: duplicate key %q", spec.Key)
	}
	c.byKey[spec.Key] = spec
	return nil
}

func (e entry) spec(mode domain.Mode) (domain.ServiceOrderSpec, error) {
	if e.Key == "" {
		return domain.ServiceOrderSpec{}, errors.New("catalog: entry without key")
	}
	p, ok := domain.ParsePanel(e.Panel)
	if !ok {
		return domain.ServiceOrderSpec{}, fmt.Errorf("catalog: %s: %w %q", e.Key, domain.ErrUnknownPanel, e.Panel)
	}
	if e.ServiceID <= 0 {
		return domain.ServiceOrderSpec{}, fmt.Errorf("catalog: %s: service_id must be positive", e.Key)
	}

	spec := domain.ServiceOrderSpec{
		Key:         e.Key,
		DisplayName: e.Name,
		ServiceID:   e.ServiceID,
		Panel:       p,
		Mode:        mode,
	}
	switch mode {
	case domain.FixedQuantity:
		if e.Quantity <= 0 {
			return domain.ServiceOrderSpec{}, fmt.Errorf("catalog: %s: quantity must be positive", e.Key)
		}
		spec.Quantity = e.Quantity
	case domain.CommentList:
		if e.Quantity != 0 {
			return domain.ServiceOrderSpec{}, fmt.Errorf("catalog: %s: comment services take no quantity", e.Key)
		}
	}
	if spec.DisplayName == "" {
		spec.DisplayName = e.Key
	}
	return spec, nil
}

// Services returns the fixed-quantity entries in catalog order.
func (c *Catalog) Services() []domain.ServiceOrderSpec {
	out := make([]domain.ServiceOrderSpec, len(c.services))
	copy(out, c.services)
	return out
}

// CommentService returns the comment entry served by panel p.
func (c *Catalog) CommentService(p domain.Panel) (domain.ServiceOrderSpec, bool) {
	s, ok := c.comments[p]
	return s, ok
}

// CommentPanels lists panels offering custom comments, in panel order.
func (c *Catalog) CommentPanels() []domain.Panel {
	var out []domain.Panel
	for _, p := range domain.Panels {
		if _, ok := c.comments[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Lookup(key string) (domain.ServiceOrderSpec, bool) {
	s, ok := c.byKey[key]
	return s, ok
}
