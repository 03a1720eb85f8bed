// Package geometry implements the 3D bounding box construction and pinhole
// camera projection used for ground truth keypoint generation
package geometry

// NumVertices is the number of corners on a 3D bounding box
const NumVertices = 8

// Point3D is a point in object frame coordinates
type Point3D struct {
	X float64
	Y float64
	Z float64
}

// BoxVertices builds the 8 corner points of an axis aligned bounding box
// from the object model extents.  The corners are returned in a fixed
// enumeration order that downstream channel layout depends on:
//
//	0: origin
//	1: origin+ex
//	2: origin+ey
//	3: origin+ez
//	4: origin+ex+ey
//	5: origin+ex+ez
//	6: origin+ey+ez
//	7: origin+ex+ey+ez
//
// where origin is (minX, minY, minZ) and ex/ey/ez are the box edge vectors
// along each axis
func BoxVertices(minX, minY, minZ, sizeX, sizeY, sizeZ float64) [NumVertices]Point3D {

	return [NumVertices]Point3D{
		{minX, minY, minZ},
		{minX + sizeX, minY, minZ},
		{minX, minY + sizeY, minZ},
		{minX, minY, minZ + sizeZ},
		{minX + sizeX, minY + sizeY, minZ},
		{minX + sizeX, minY, minZ + sizeZ},
		{minX, minY + sizeY, minZ + sizeZ},
		{minX + sizeX, minY + sizeY, minZ + sizeZ},
	}
}
