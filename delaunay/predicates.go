package delaunay

import "github.com/exactgeom/planekernel/point"

// inCircle reports whether d lies strictly inside the circumcircle of the
// counterclockwise-oriented triangle (a, b, c). It evaluates the standard
// determinant of the points lifted onto the paraboloid z = x^2 + y^2
// exactly, never approximately.
func inCircle(a, b, c, d point.Point) bool {
	ax := a.X.Sub(d.X)
	ay := a.Y.Sub(d.Y)
	bx := b.X.Sub(d.X)
	by := b.Y.Sub(d.Y)
	cx := c.X.Sub(d.X)
	cy := c.Y.Sub(d.Y)

	aSq := ax.Mul(ax).Add(ay.Mul(ay))
	bSq := bx.Mul(bx).Add(by.Mul(by))
	cSq := cx.Mul(cx).Add(cy.Mul(cy))

	det := ax.Mul(by.Mul(cSq).Sub(bSq.Mul(cy)))
	det = det.Sub(ay.Mul(bx.Mul(cSq).Sub(bSq.Mul(cx))))
	det = det.Add(aSq.Mul(bx.Mul(cy).Sub(by.Mul(cx))))

	return det.Sign() > 0
}
