package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/metrics/internal/backend/cpu"
	"github.com/born-ml/metrics/internal/tensor"
)

type Backend = *cpu.CPUBackend

func fromSlice(t *testing.T, data []float32, shape tensor.Shape, b Backend) *tensor.Tensor[float32, Backend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, b)
	require.NoError(t, err)
	return x
}

// testPair returns the reference prediction/target pair used throughout:
// pred [0, 1, 2, 3], target [0, 1, 2, 2].
func testPair(t *testing.T, b Backend) (pred, target *tensor.Tensor[float32, Backend]) {
	t.Helper()
	pred = fromSlice(t, []float32{0, 1, 2, 3}, tensor.Shape{4}, b)
	target = fromSlice(t, []float32{0, 1, 2, 2}, tensor.Shape{4}, b)
	return pred, target
}

func TestMSE(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	score, err := MSE(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, score.Item(), 1e-6)

	score, err = MSE(pred, target, ReduceSum)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.Item(), 1e-6)
}

func TestMSE_NoReduction(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	score, err := MSE(pred, target, ReduceNone)
	require.NoError(t, err)
	require.True(t, score.Shape().Equal(tensor.Shape{4}))
	assert.Equal(t, []float32{0, 0, 0, 1}, score.Data())
}

func TestMSE_IdenticalInputs(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, []float32{-1, 0, 2.5, 7}, tensor.Shape{4}, backend)

	score, err := MSE(x, x, ReduceMean)
	require.NoError(t, err)
	assert.Zero(t, score.Item())

	score, err = MAE(x, x, ReduceMean)
	require.NoError(t, err)
	assert.Zero(t, score.Item())
}

func TestRMSE(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	score, err := RMSE(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score.Item(), 1e-6)
}

func TestMAE(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	score, err := MAE(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, score.Item(), 1e-6)
}

func TestRMSLE(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	score, err := RMSLE(pred, target, ReduceMean)
	require.NoError(t, err)
	// Only the last element differs: (ln 4 - ln 3)² / 4, then sqrt.
	assert.InDelta(t, 0.1438, score.Item(), 1e-4)
}

func TestMSEState_MergeMatchesFullComputation(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	predA := fromSlice(t, []float32{0, 1}, tensor.Shape{2}, backend)
	targetA := fromSlice(t, []float32{0, 1}, tensor.Shape{2}, backend)
	predB := fromSlice(t, []float32{2, 3}, tensor.Shape{2}, backend)
	targetB := fromSlice(t, []float32{2, 2}, tensor.Shape{2}, backend)

	merged := PartialMSE(predA, targetA).Merge(PartialMSE(predB, targetB))

	full, err := MSE(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, full.Item(), merged.Mean().Item(), 1e-6)
	assert.InDelta(t, 4, merged.NObservations.Item(), 1e-6)
}

func TestMSEState_MergeIsCommutative(t *testing.T) {
	backend := cpu.New()

	a := PartialMSE(
		fromSlice(t, []float32{1, 2}, tensor.Shape{2}, backend),
		fromSlice(t, []float32{1, 4}, tensor.Shape{2}, backend),
	)
	b := PartialMSE(
		fromSlice(t, []float32{5}, tensor.Shape{1}, backend),
		fromSlice(t, []float32{2}, tensor.Shape{1}, backend),
	)

	assert.InDelta(t, a.Merge(b).Mean().Item(), b.Merge(a).Mean().Item(), 1e-6)
}

func TestMAEState_MergeMatchesFullComputation(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	predA := fromSlice(t, []float32{0, 1}, tensor.Shape{2}, backend)
	targetA := fromSlice(t, []float32{0, 1}, tensor.Shape{2}, backend)
	predB := fromSlice(t, []float32{2, 3}, tensor.Shape{2}, backend)
	targetB := fromSlice(t, []float32{2, 2}, tensor.Shape{2}, backend)

	merged := PartialMAE(predA, targetA).Merge(PartialMAE(predB, targetB))

	full, err := MAE(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, full.Item(), merged.Mean().Item(), 1e-6)
}

// TestRMSEStateUsesReducedTensor pins the shape of the RMSE partial
// state: it is taken over the already-reduced inner MSE, so with
// ReduceMean the state holds the mean itself with a count of one.
func TestRMSEStateUsesReducedTensor(t *testing.T) {
	backend := cpu.New()
	pred, target := testPair(t, backend)

	state, err := PartialRMSE(pred, target, ReduceMean)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, state.SquaredError.Item(), 1e-6)
	assert.InDelta(t, 1, state.NObservations.Item(), 1e-6)

	state, err = PartialRMSE(pred, target, ReduceNone)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, state.SquaredError.Item(), 1e-6)
	assert.InDelta(t, 4, state.NObservations.Item(), 1e-6)
}
