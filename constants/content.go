package constants

// Content Loading
const (
	DefaultContentDir = "./content"
	ContentExtension  = ".txt"
	MaxContentBytes   = 64 * 1024 // Larger override files are rejected
	TabWidth          = 4
)

// Drawer Layout
const (
	DrawerMinWidth     = 20
	DrawerDefaultWidth = 72
	DrawerHeightRatio  = 0.95
)

// Card Decks
const (
	// CardSeparator on a line of its own starts the next card of a section
	CardSeparator = "---"
	DeckPeekDepth = 3 // Behind-cards drawn as stacked edges
)

// Full Mode Export
const (
	DefaultExportDir = "./export"
	ExportWidth      = 80
)
