package spheres3d

var (
	Debug     = false // set to true for verbose debug output and ray statistics
	Progress  = false // set to true to print render progress
	RAW       = false // set to true to also save the unclamped float canvas
	AlwaysBVH = false // set to true to always use BVH for nearest hit calculations
	NeverBVH  = false // set to true to never use BVH for nearest hit calculations
	// Compile time check that the canvas can be rendered into
	_ PixelSink = (*Canvas)(nil)
)
