package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionParameters(t *testing.T) {
	{
		var ep ExtractionParameters
		err := ep.Parse([]byte(`
Title: wing surface nodes
MeshFile: wing.exo
Blocks:
  - fuselage
SideSets:
  - wall
  - inflow
Flatten: true
WithCoordinates: true
`))
		require.NoError(t, err)
		assert.Equal(t, "wing.exo", ep.MeshFile)
		assert.Equal(t, []string{"fuselage"}, ep.Blocks)
		assert.Equal(t, []string{"wall", "inflow"}, ep.SideSets)
		assert.True(t, ep.Flatten)
		assert.True(t, ep.WithCoordinates)
	}
	// A job without a mesh file is rejected at parse time
	{
		var ep ExtractionParameters
		err := ep.Parse([]byte(`Title: empty`))
		assert.Error(t, err)
	}
}
