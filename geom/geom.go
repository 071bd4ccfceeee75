// Package geom declares the fixed-size numeric aggregates jdoc can
// serialize. Vectors are float32 component arrays; matrices are arrays
// of row vectors (row major). On the wire a VecN is the literal array
// [x, y, ...] and a MatN is an array of N arrays of length N.
package geom

type Vec2 [2]float32

type Vec3 [3]float32

type Vec4 [4]float32

type Mat2 [2]Vec2

type Mat3 [3]Vec3

type Mat4 [4]Vec4
