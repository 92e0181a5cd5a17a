package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
)

// ErrNotFound is returned when an operation references an unknown content id.
var ErrNotFound = errors.New("content not found")

// Catalog holds the static content metadata. Load runs once at startup,
// before any concurrent reader; after that the catalog is immutable, so
// reads need no locking.
type Catalog struct {
	items      map[string]*model.Content
	order      []string
	categories []string
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]*model.Content)}
}

// Load validates and stores the given entries, preserving their order.
// A validation failure or duplicate id rejects the whole batch.
func (c *Catalog) Load(contents []model.Content) error {
	validate := validator.New()

	for i := range contents {
		entry := contents[i]
		if err := validate.Struct(entry); err != nil {
			return fmt.Errorf("invalid content %q: %w", entry.ID, err)
		}
		if _, exists := c.items[entry.ID]; exists {
			return fmt.Errorf("duplicate content id %q", entry.ID)
		}
		c.items[entry.ID] = &entry
		c.order = append(c.order, entry.ID)
	}

	c.categories = distinctCategories(c.items)
	return nil
}

// Get returns the content for the given id.
func (c *Catalog) Get(id string) (*model.Content, bool) {
	item, ok := c.items[id]
	return item, ok
}

// All returns every entry in load order.
func (c *Catalog) All() []*model.Content {
	all := make([]*model.Content, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.items[id])
	}
	return all
}

// Categories returns the distinct category set, sorted lexicographically.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

func distinctCategories(items map[string]*model.Content) []string {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item.Category] = struct{}{}
	}

	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
