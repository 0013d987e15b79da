package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/metrics/internal/backend/cpu"
	"github.com/born-ml/metrics/internal/tensor"
)

func TestGaussianKernel(t *testing.T) {
	backend := cpu.New()

	kernel, err := GaussianKernel[float32](3, [2]int{11, 11}, [2]float64{1.5, 1.5}, backend)
	require.NoError(t, err)
	require.True(t, kernel.Shape().Equal(tensor.Shape{3, 1, 11, 11}))

	// Each channel's window sums to one.
	data := kernel.Data()
	for c := 0; c < 3; c++ {
		var sum float32
		for _, v := range data[c*121 : (c+1)*121] {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-5)
	}

	// The center weight dominates.
	center := kernel.At(0, 0, 5, 5)
	assert.Greater(t, center, kernel.At(0, 0, 0, 0))
	assert.Greater(t, center, kernel.At(0, 0, 5, 0))

	// All channels carry the same window.
	assert.Equal(t, kernel.At(0, 0, 5, 5), kernel.At(2, 0, 5, 5))
}

func TestGaussianKernel_Validation(t *testing.T) {
	backend := cpu.New()

	var cfgErr *ConfigError

	_, err := GaussianKernel[float32](1, [2]int{10, 10}, [2]float64{1.5, 1.5}, backend)
	require.ErrorAs(t, err, &cfgErr)

	_, err = GaussianKernel[float32](1, [2]int{11, 11}, [2]float64{0, 1.5}, backend)
	require.ErrorAs(t, err, &cfgErr)

	_, err = GaussianKernel[float32](0, [2]int{11, 11}, [2]float64{1.5, 1.5}, backend)
	require.ErrorAs(t, err, &cfgErr)
}

func TestSSIM_IdenticalInputs(t *testing.T) {
	backend := cpu.New()
	x := tensor.Rand[float32](tensor.Shape{1, 1, 16, 16}, backend)

	score, err := SSIM(x, x, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.Item(), 1e-4)
}

func TestSSIM_ScaledInput(t *testing.T) {
	backend := cpu.New()
	pred := tensor.Rand[float32](tensor.Shape{16, 1, 16, 16}, backend)
	target := pred.MulScalar(0.75)

	score, err := SSIM(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.Greater(t, float64(score.Item()), 0.0)
	assert.Less(t, float64(score.Item()), 1.0)
}

func TestSSIM_Symmetric(t *testing.T) {
	backend := cpu.New()
	// Normally distributed inputs exercise the negative value range too.
	a := tensor.Randn[float32](tensor.Shape{2, 3, 16, 16}, backend)
	b := tensor.Randn[float32](tensor.Shape{2, 3, 16, 16}, backend)

	ab, err := SSIM(a, b, ReduceMean)
	require.NoError(t, err)
	ba, err := SSIM(b, a, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, ab.Item(), ba.Item(), 1e-5)
}

func TestSSIM_NoReductionShape(t *testing.T) {
	backend := cpu.New()
	a := tensor.Rand[float32](tensor.Shape{2, 1, 16, 16}, backend)
	b := tensor.Rand[float32](tensor.Shape{2, 1, 16, 16}, backend)

	// 11x11 window over 16x16 leaves a 6x6 valid region.
	score, err := SSIM(a, b, ReduceNone)
	require.NoError(t, err)
	assert.True(t, score.Shape().Equal(tensor.Shape{2, 1, 6, 6}))
}

func TestSSIM_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	a := tensor.Rand[float32](tensor.Shape{1, 1, 16, 16}, backend)
	b := tensor.Rand[float32](tensor.Shape{1, 1, 8, 8}, backend)

	var shapeErr *ShapeMismatchError
	_, err := SSIM(a, b, ReduceMean)
	require.ErrorAs(t, err, &shapeErr)
}

func TestSSIM_RankError(t *testing.T) {
	backend := cpu.New()
	a := tensor.Rand[float32](tensor.Shape{16, 16}, backend)
	b := tensor.Rand[float32](tensor.Shape{16, 16}, backend)

	var rankErr *RankError
	_, err := SSIM(a, b, ReduceMean)
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, 4, rankErr.Want)
}

func TestSSIM_InvalidOptions(t *testing.T) {
	backend := cpu.New()
	a := tensor.Rand[float32](tensor.Shape{1, 1, 16, 16}, backend)
	b := tensor.Rand[float32](tensor.Shape{1, 1, 16, 16}, backend)

	var cfgErr *ConfigError

	_, err := SSIM(a, b, ReduceMean, WithKernelSize(10, 10))
	require.ErrorAs(t, err, &cfgErr)

	_, err = SSIM(a, b, ReduceMean, WithSigma(-1.5, 1.5))
	require.ErrorAs(t, err, &cfgErr)
}

func TestSSIM_UnsupportedReduction(t *testing.T) {
	backend := cpu.New()
	x := tensor.Rand[float32](tensor.Shape{1, 1, 16, 16}, backend)

	var cfgErr *ConfigError
	_, err := SSIM(x, x, Reduction(42))
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "ssim")
}

func TestSSIM_CustomWindow(t *testing.T) {
	backend := cpu.New()
	x := tensor.Rand[float32](tensor.Shape{1, 2, 12, 12}, backend)

	score, err := SSIM(x, x, ReduceMean, WithKernelSize(5, 5), WithSigma(1.0, 1.0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.Item(), 1e-4)
}
