package common

const (
	// BaseWidth and BaseHeight are the logical display size. Everything is
	// drawn at this resolution and scaled up to the window.
	BaseWidth  = 160
	BaseHeight = 120

	// WindowScale is the default integer window scale.
	WindowScale = 4

	// TPS is the target simulation rate.
	TPS = 60

	// TileLayer is the only layer the game reads from a world file.
	TileLayer = "tiles"

	// ExitTile is the tile name marking a stage exit.
	ExitTile = "end"
)
