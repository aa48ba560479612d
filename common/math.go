package common

// BaseWidth and BaseHeight are the logical screen size the game renders at.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
