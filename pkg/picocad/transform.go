package picocad

import "picocad-tools/pkg/scene"

// picoCAD objects carry only a position, so rotation and scale have to
// be folded into the raw vertex coordinates before emission.
// Translation stays out: it maps onto the object's pos field.

// BakeVertex applies the object's rotation, then its per-axis scale,
// to a local vertex position.
func BakeVertex(v scene.Vec3, rot scene.Quat, sc scene.Vec3) scene.Vec3 {
	return rotate(v, rot).Mul(sc)
}

// rotate applies the quaternion q to v:
// v' = v + w*t + (u x t) with u = (q.X, q.Y, q.Z), t = 2*(u x v).
func rotate(v scene.Vec3, q scene.Quat) scene.Vec3 {
	u := scene.Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := scaled(cross(u, v), 2)
	return v.Add(scaled(t, q.W)).Add(cross(u, t))
}

func cross(a, b scene.Vec3) scene.Vec3 {
	return scene.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func scaled(v scene.Vec3, s float64) scene.Vec3 {
	return scene.Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}
