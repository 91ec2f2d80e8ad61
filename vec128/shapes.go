package vec128

// Pass-through descriptors for downstream convolution and pooling kernels.
// Nothing in this module interprets them beyond the output-size helper;
// they exist so higher-level code shares one vocabulary for shapes.

// TensorShape describes a feature map in NCHW order
// (batch, channels, height, width).
type TensorShape struct {
	N int
	C int
	H int
	W int
}

// Elems returns the total number of elements in the shape.
func (s TensorShape) Elems() int {
	return s.N * s.C * s.H * s.W
}

// ConvParams carries convolution window parameters.
type ConvParams struct {
	KernelH, KernelW     int
	StrideH, StrideW     int
	PadH, PadW           int
	DilationH, DilationW int
}

// PoolParams carries pooling window parameters.
type PoolParams struct {
	PoolH, PoolW     int
	StrideH, StrideW int
	PadH, PadW       int
}

// ConvOutSize returns the spatial output size of a convolution or pooling
// window: (in + 2*pad - kernel)/stride + 1.
func ConvOutSize(in, kernel, stride, pad int) int {
	return (in+2*pad-kernel)/stride + 1
}
