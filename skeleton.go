package posenet

// SkeletonEdge is a pair of joints joined by a visible limb segment
type SkeletonEdge struct {
	From JointKind
	To   JointKind
}

// EdgeCount is the number of edges in the skeleton.  The displacement
// outputs carry two channels per edge.
const EdgeCount = 12

// skeleton defines the pose segments to draw.  The index of an edge is also
// its channel in the displacement outputs.
var skeleton = [EdgeCount]SkeletonEdge{
	// left side of the body
	{From: LeftHip, To: LeftShoulder},
	{From: LeftShoulder, To: LeftElbow},
	{From: LeftElbow, To: LeftWrist},
	{From: LeftHip, To: LeftKnee},
	{From: LeftKnee, To: LeftAnkle},
	// right side of the body
	{From: RightHip, To: RightShoulder},
	{From: RightShoulder, To: RightElbow},
	{From: RightElbow, To: RightWrist},
	{From: RightHip, To: RightKnee},
	{From: RightKnee, To: RightAnkle},
	// crossing over the body
	{From: LeftShoulder, To: RightShoulder},
	{From: LeftHip, To: RightHip},
}

// Edges returns the skeleton segments in displacement channel order
func Edges() []SkeletonEdge {
	edges := make([]SkeletonEdge, EdgeCount)
	copy(edges, skeleton[:])
	return edges
}
