package component

type Camera struct {
	ViewWidth  float64
	ViewHeight float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
