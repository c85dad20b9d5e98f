package content

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/turntable/asset"
	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/groove"
)

// Section is one loadable drawer body
type Section struct {
	ID     string
	Title  string
	Body   string // Sanitised, unwrapped
	Source string // File path, or "builtin"
}

// Catalog maps ring ids to sections
type Catalog struct {
	registry *groove.Registry
	sections map[string]Section
}

// NewCatalog creates a catalog seeded with the built-in texts for every ring
func NewCatalog(registry *groove.Registry) *Catalog {
	c := &Catalog{
		registry: registry,
		sections: make(map[string]Section),
	}
	for _, ring := range registry.Rings() {
		text, ok := asset.Sections[ring.ID]
		if !ok {
			continue
		}
		c.sections[ring.ID] = Section{
			ID:     ring.ID,
			Title:  ring.DisplayName(),
			Body:   Sanitize(text),
			Source: "builtin",
		}
	}
	return c
}

// LoadDir overrides sections with <id>.txt files found in dir
// A missing directory is not an error; unreadable files are skipped and counted
func (c *Catalog) LoadDir(dir string) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Printf("Content directory '%s' does not exist, using built-in sections", dir)
		return 0, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read content directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if strings.HasPrefix(fileName, ".") || !strings.HasSuffix(fileName, constants.ContentExtension) {
			continue
		}

		id := strings.TrimSuffix(fileName, constants.ContentExtension)
		ring, ok := c.registry.Lookup(id)
		if !ok {
			log.Printf("Skipping content file without a ring: %s", fileName)
			continue
		}

		path := filepath.Join(dir, fileName)
		data, err := readLimited(path)
		if err != nil {
			log.Printf("Skipping content file %s: %v", path, err)
			continue
		}

		c.sections[id] = Section{
			ID:     id,
			Title:  ring.DisplayName(),
			Body:   Sanitize(string(data)),
			Source: path,
		}
		loaded++
		log.Printf("Loaded content file: %s", path)
	}

	return loaded, nil
}

func readLimited(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > constants.MaxContentBytes {
		return nil, fmt.Errorf("file too large (%d > %d bytes)", info.Size(), constants.MaxContentBytes)
	}
	return os.ReadFile(path)
}

// Get returns the section for id
func (c *Catalog) Get(id string) (Section, bool) {
	s, ok := c.sections[id]
	return s, ok
}

// Len returns the number of sections
func (c *Catalog) Len() int {
	return len(c.sections)
}

// Label returns the tab label for id: the ring label, or the id upper-cased
func (c *Catalog) Label(id string) string {
	if ring, ok := c.registry.Lookup(id); ok {
		return ring.DisplayName()
	}
	return strings.ToUpper(id)
}
