package parameter

// Terminal Rendering
const (
	// CellAspect is the height/width ratio of a terminal cell
	// Used to keep circles round when world units map onto cells
	CellAspect = 2.0

	// CircleGlyph fills cells covered by an entity
	CircleGlyph = '█'

	// ProjectileGlyph is used when a projectile covers less than a cell
	ProjectileGlyph = '•'

	// HUDRows reserved at the top of the terminal for status text
	HUDRows = 1
)
