package core

// Returned when a drawing surface can't be obtained: either the
// destination target is nil or a tinted atlas surface can't be
// allocated for the source image (e.g. the image is empty).
type SurfaceCreationError struct {
	Reason string
}

func (self *SurfaceCreationError) Error() string {
	if self.Reason == "" { return "surface creation failed" }
	return "surface creation failed: " + self.Reason
}
