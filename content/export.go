package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/turntable/constants"
)

// Exporter writes whole sections to standalone text files
type Exporter struct {
	catalog *Catalog
	dir     string
	width   int
}

// NewExporter creates an exporter writing into dir
func NewExporter(catalog *Catalog, dir string) *Exporter {
	if dir == "" {
		dir = constants.DefaultExportDir
	}
	return &Exporter{
		catalog: catalog,
		dir:     dir,
		width:   constants.ExportWidth,
	}
}

// Dir returns the output directory
func (e *Exporter) Dir() string {
	return e.dir
}

// Export writes the section for id to <dir>/<id>.txt with every card laid out
// in order, and returns the written path
func (e *Exporter) Export(id string) (string, error) {
	section, ok := e.catalog.Get(id)
	if !ok {
		return "", fmt.Errorf("export %q: %w", id, ErrUnknownSection)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.dir, id+constants.ContentExtension)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(e.Render(section)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}
	return path, nil
}

// Render lays out a section as a plain page: an underlined title, the header
// and each card numbered "n / total"
func (e *Exporter) Render(section Section) string {
	var b strings.Builder
	title := e.catalog.Label(section.ID)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", runewidth.StringWidth(title)) + "\n")

	header, cards := SplitCards(section.Body)
	writeLines := func(text string) {
		for _, line := range Wrap(text, e.width) {
			b.WriteString(line + "\n")
		}
	}
	if header != "" {
		b.WriteString("\n")
		writeLines(header)
	}
	for i, card := range cards {
		fmt.Fprintf(&b, "\n[%d / %d]\n", i+1, len(cards))
		writeLines(card)
	}
	return b.String()
}
