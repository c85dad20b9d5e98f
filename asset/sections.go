// Package asset holds the built-in section texts shown in the drawer
package asset

// IntroText is the first groove
const IntroText = `# Side A, track 1
Hello, and welcome to the record.

Drag the tonearm onto the platter, or use the arrow keys to pick a groove and
press Enter to drop the needle. Each groove holds one section; the label on the
drawer tab tells you what is playing.

Press o to open the drawer and c to close it.`

// CVText is the second groove
const CVText = `# Curriculum vitae

Experience
  Backend and systems engineering, terminal tools, audio toys.

Skills
  Go, distributed services, protocol plumbing, storage layers.

Education
  Computer science, with a long detour through synthesizers.`

// PortfolioText is the third groove, one card per project
const PortfolioText = `# Portfolio
Use [ and ] to flip through the deck.
---
Turntable
   The thing you are using right now. Tonearm geometry, groove snapping and a
   needle that bounces when it lands.
---
Terminal games
   Real-time games drawn with a cell buffer and synthesized sound.
---
Small services
   Event queues, caches and the glue between them.`

// EasterEgg1Text is the hidden outer ring
const EasterEgg1Text = `# Run-out groove

You found the lead-in. Nothing is recorded here except the crackle.`

// EasterEgg2Text is the hidden inner ring
const EasterEgg2Text = `# Locked groove

The needle goes round and round. Lift the arm with Esc to escape.`

// Sections maps ring ids to their built-in text
var Sections = map[string]string{
	"intro":        IntroText,
	"cv":           CVText,
	"portfolio":    PortfolioText,
	"easter-egg-1": EasterEgg1Text,
	"easter-egg-2": EasterEgg2Text,
}
