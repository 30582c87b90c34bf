package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal colors.
type Color uint8

// Palette for the runner. Names follow the track's desert sci-fi theme.
const (
	ColorDefault   Color = iota
	ColorCream           // Text, player armor
	ColorMocha           // Track structure, lane dividers
	ColorGold            // Gems, letter E
	ColorTeal            // Shield, letter G
	ColorDanger          // Obstacles, hearts
	ColorAccent          // Aliens, letter Y
	ColorViolet          // Shop portal, letter S
	ColorPlasma          // Missiles, letter N
	ColorGray            // Dimmed / uncollected
	ColorBrightWhite     // Highlights
)

// LetterColors are the per-letter colors of the target word.
var LetterColors = [...]Color{
	ColorTeal,
	ColorGold,
	ColorPlasma,
	ColorViolet,
	ColorAccent,
	ColorDanger,
}
