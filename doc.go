/*
go-posenet decodes the raw output tensors of a PoseNet style pose estimation
model into a single person skeleton of 17 joints with image space positions
and confidence scores.

The root package binds the four model outputs (heatmap, offsets and the
forward/backward displacement maps) into bounds checked Tensors and
validates their shapes.  The postprocess package turns bound Outputs into a
Pose and maps it from model input resolution into display resolution.  The
preprocess and render packages provide gocv helpers for preparing frames and
drawing the decoded skeleton.

See example code and usage in the examples subdirectory.
*/
package posenet
