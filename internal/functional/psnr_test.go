package functional

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/metrics/internal/backend/cpu"
	"github.com/born-ml/metrics/internal/tensor"
)

// psnrPair returns a 2x2 pair with MSE 5 and a target range of 3.
func psnrPair(t *testing.T, b Backend) (pred, target *tensor.Tensor[float32, Backend]) {
	t.Helper()
	pred = fromSlice(t, []float32{0, 1, 2, 3}, tensor.Shape{2, 2}, b)
	target = fromSlice(t, []float32{3, 2, 1, 0}, tensor.Shape{2, 2}, b)
	return pred, target
}

func TestPSNR(t *testing.T) {
	backend := cpu.New()
	pred, target := psnrPair(t, backend)

	score, err := PSNR(pred, target, ReduceMean)
	require.NoError(t, err)
	// 10 * (2*log10(3) - log10(5))
	assert.InDelta(t, 2.5527, score.Item(), 1e-3)
}

func TestPSNR_ExplicitDataRange(t *testing.T) {
	backend := cpu.New()
	pred, target := psnrPair(t, backend)

	score, err := PSNR(pred, target, ReduceMean, WithDataRange(4))
	require.NoError(t, err)
	// 10 * (2*log10(4) - log10(5))
	assert.InDelta(t, 5.0515, score.Item(), 1e-3)
}

func TestPSNR_LogBase(t *testing.T) {
	backend := cpu.New()
	pred, target := psnrPair(t, backend)

	score, err := PSNR(pred, target, ReduceMean, WithLogBase(math.E))
	require.NoError(t, err)
	// 10 * (2*ln(3) - ln(5))
	assert.InDelta(t, 5.8778, score.Item(), 1e-3)
}

func TestPSNR_PerfectMatchIsInf(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, []float32{0, 1, 2, 3}, tensor.Shape{4}, backend)

	score, err := PSNR(x, x, ReduceMean)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(score.Item()), 1))
}

func TestPSNR_UnsupportedReduction(t *testing.T) {
	backend := cpu.New()
	pred, target := psnrPair(t, backend)

	var cfgErr *ConfigError
	_, err := PSNR(pred, target, Reduction(42))
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "psnr")
}

func TestPSNRState_MergeMatchesFullComputation(t *testing.T) {
	backend := cpu.New()
	pred, target := psnrPair(t, backend)

	predA := fromSlice(t, []float32{0, 1}, tensor.Shape{2}, backend)
	targetA := fromSlice(t, []float32{3, 2}, tensor.Shape{2}, backend)
	predB := fromSlice(t, []float32{2, 3}, tensor.Shape{2}, backend)
	targetB := fromSlice(t, []float32{1, 0}, tensor.Shape{2}, backend)

	// Partitions see different value ranges, so the whole-signal range
	// must be pinned explicitly.
	merged := PartialPSNR(predA, targetA, WithDataRange(3)).
		Merge(PartialPSNR(predB, targetB, WithDataRange(3)))

	full, err := PSNR(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, full.Item(), merged.Finalize(10).Item(), 1e-5)
	assert.InDelta(t, 3, merged.DataRange, 1e-9)
	assert.InDelta(t, 4, merged.NObservations.Item(), 1e-6)
}
