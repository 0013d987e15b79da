package cpu

import (
	"github.com/born-ml/metrics/internal/tensor"
)

// broadcastIndexer maps flat output positions back to the flat positions
// of the two (possibly stretched) operands. Stretched dimensions carry a
// zero stride, so every output coordinate along them reads the same
// source element.
type broadcastIndexer struct {
	outStrides []int
	aStrides   []int
	bStrides   []int
}

func newBroadcastIndexer(aShape, bShape, outShape tensor.Shape) broadcastIndexer {
	return broadcastIndexer{
		outStrides: outShape.ComputeStrides(),
		aStrides:   stretchedStrides(aShape, outShape),
		bStrides:   stretchedStrides(bShape, outShape),
	}
}

// sourceIndices decomposes one flat output index into coordinates and
// projects them through both operands' strides in a single pass.
func (ix broadcastIndexer) sourceIndices(i int) (int, int) {
	var ia, ib int
	for d, stride := range ix.outStrides {
		coord := i / stride
		i %= stride
		ia += coord * ix.aStrides[d]
		ib += coord * ix.bStrides[d]
	}
	return ia, ib
}

// stretchedStrides aligns shape to outShape from the right and returns
// its strides in the output's coordinate system. Dimensions the operand
// is missing, or has as size 1, get stride 0.
func stretchedStrides(shape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	own := shape.ComputeStrides()
	offset := len(outShape) - len(shape)
	for d := offset; d < len(outShape); d++ {
		if shape[d-offset] != 1 {
			strides[d] = own[d-offset]
		}
	}
	return strides
}
