// Package lvmath is a fixed-size linear algebra toolkit whose shapes live in
// the type system: adding a 2×3 matrix to a 3×2 one, or a position to a
// position, does not compile.
//
// What is inside?
//
//   - Matrices parameterised by row and column markers (D1..D4) and element type
//   - Vector roles sharing one storage core: Vec, Position, Size, RGB, UnitVec
//   - Radian and Degree angles with an implicit degree → radian path
//   - 2D and 3D transformation builders (rotation, scale, projection,
//     reflection, shear) using the row-vector convention v·M
//   - Declarative transform pipelines decoded from YAML or TOML
//
// Packages:
//
//	angle/            Radian, Degree, trig, text codec ("90 deg", "1.5 rad")
//	linalg/           Matrix, Vec/Position/Size/RGB, traits, AllClose, f32 interop
//	trans2d/          2D builders
//	trans3d/          3D builders
//	pipeline/         Spec decoding, Build2D/Build3D, batched Apply
//	cmd/lvtransform/  CLI running points through a pipeline file
//
// Quick example:
//
//	p := linalg.Position2[float64]{1, 0}
//	q := p.Mul(trans2d.Rotate[float64](90 * angle.Deg)) // ≈ (0, 1)
//
//	go get github.com/katalvlaran/lvmath/linalg
package lvmath
