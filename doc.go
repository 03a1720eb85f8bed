/*
go-posegt generates dense ground truth supervision maps for training
keypoint based 6-DoF object pose estimation models on BOP/LineMOD style
datasets.

For each annotated object instance it projects the 8 corners of the
object's 3D bounding box through the camera model, then rasterizes one
Gaussian belief map per keypoint (8 corners plus the centroid of the
projected corners) and a 2D unit vector field per corner pointing
toward the centroid.  The resulting 25 channel tensor matches the
output layout of belief map pose networks in the style of DOPE/PVNet.

See example code and usage in the example subdirectory.
*/
package posegt
