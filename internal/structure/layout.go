package structure

import (
	"math"

	"github.com/tkondra/constella/internal/model"
)

// layerBands scale the sphere radius into three concentric shells:
// emotional core, active middle band, abstract outer band.
var layerBands = [...]float64{0.3, 0.7, 1.1}

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// layerFor assigns a category to its concentric band. Synthetic nodes
// take the outer band.
func layerFor(cat model.Category) int {
	switch cat {
	case model.CategoryEmotion, model.CategoryPeople:
		return 0
	case model.CategoryTime, model.CategoryActions, model.CategoryPlaces:
		return 1
	default:
		return 2
	}
}

// sphereRadius grows with node count so dense structures spread out
// instead of overlapping.
func sphereRadius(nodeCount int) float64 {
	return math.Max(10, float64(nodeCount)/10)
}

// layoutNodes places every node on a Fibonacci spiral over the sphere,
// scaled by its layer band. Even angular spacing makes an explicit
// collision pass unnecessary.
func layoutNodes(nodes []model.Node) {
	n := len(nodes)
	if n == 0 {
		return
	}
	radius := sphereRadius(n)
	for i := range nodes {
		dir := fibonacciDirection(i, n)
		r := radius * layerBands[nodes[i].Data.Layer]
		nodes[i].Position = model.Vec3{X: dir.X * r, Y: dir.Y * r, Z: dir.Z * r}
	}
}

// fibonacciDirection returns the i-th of n near-evenly distributed
// unit vectors on the sphere.
func fibonacciDirection(i, n int) model.Vec3 {
	if n <= 1 {
		return model.Vec3{X: 1}
	}
	y := 1 - 2*float64(i)/float64(n-1)
	r := math.Sqrt(math.Max(0, 1-y*y))
	theta := goldenAngle * float64(i)
	return model.Vec3{X: math.Cos(theta) * r, Y: y, Z: math.Sin(theta) * r}
}
