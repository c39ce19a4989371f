package spheres3d

// Real is the scalar type used across the tracer.
type Real = float64

// Channel indices for readability.
const (
	ChR                 = 0
	ChG                 = 1
	ChB                 = 2
	CanvasWidth         = 600
	CanvasHeight        = 600
	ViewportWidth       = 1.0
	ViewportHeight      = 1.0
	CameraDistance      = 1.0
	MaxDepth            = 3    // reflection recursion budget
	Epsilon             = 1e-4 // offset for secondary rays so a hit point does not see its own sphere
	PrimaryTMin         = 1.0  // primary rays start at the projection plane
	Output              = "out.bmp"
	Gamma               = 1.0
	ProbeRays           = 4096
	AABBBVHMaxLeafSize  = 2
	AABBBVHFromNObjects = 8 // minimum number of spheres to use BVH of AABBs, otherwise just iterate all spheres
	NoSpecular          = -1.0
	minRotationDet      = 1e-9 // below this a camera rotation counts as singular
)
