package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Linear(t *testing.T) {
	m, err := NewMetrics(1.0)
	require.NoError(t, err)
	assert.Equal(t, 24.0, m.HeadingSize)
	assert.Equal(t, 12.0, m.SubheadingSize)
	assert.Equal(t, 10.0, m.BodySize)
	assert.Equal(t, 5.0, m.CellHeight)
	assert.Equal(t, 1.5, m.BigLine)
	assert.Equal(t, 0.5, m.SmallLine)

	half, err := NewMetrics(0.5)
	require.NoError(t, err)
	assert.InDelta(t, m.HeadingSize/2, half.HeadingSize, 1e-9)
	assert.InDelta(t, m.BodySize/2, half.BodySize, 1e-9)
	assert.InDelta(t, m.SmallLine/2, half.SmallLine, 1e-9)
}

func TestNewMetrics_SmallScaleStaysPositive(t *testing.T) {
	m, err := NewMetrics(0.01)
	require.NoError(t, err)
	for _, v := range []float64{m.HeadingSize, m.SubheadingSize, m.BodySize, m.CellHeight, m.BigLine, m.SmallLine} {
		assert.Greater(t, v, 0.0)
	}
}

func TestNewMetrics_RejectsNonPositive(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		_, err := NewMetrics(scale)
		require.Error(t, err)
		var renderErr *RenderError
		assert.ErrorAs(t, err, &renderErr)
	}
}
