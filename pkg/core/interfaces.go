package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     Point3  // Point of intersection
	Normal    Vec3    // Unit normal, always facing against the incoming ray
	T         float64 // Parameter t along the ray
	FrontFace bool    // Whether the ray approached from outside the surface
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with t in the interval [tMin, tMax].
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Scene is what an integrator needs to shade a ray: geometry plus the sky
type Scene interface {
	Shape
	GetBackgroundColors() (topColor, bottomColor Color)
}
