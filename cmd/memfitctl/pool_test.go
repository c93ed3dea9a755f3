package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memfit/pool"
)

func TestPoolCommand(t *testing.T) {
	resetGlobals(t)

	output, err := captureOutput(t, runPool)
	require.NoError(t, err)
	assertContains(t, output, []string{"Memory pool:", "block 4", "600 KB", "Total: 1,700 KB in 5 blocks"})
}

func TestPoolCommand_JSONFromFile(t *testing.T) {
	resetGlobals(t)
	jsonOut = true
	poolFile = writePoolFile(t, "pool.json", `{"blocks": [{"id": 7, "size": 64}, {"size": 128}]}`)

	output, err := captureOutput(t, runPool)
	require.NoError(t, err)

	var out struct {
		Blocks    []pool.Block `json:"blocks"`
		TotalSize int          `json:"totalSize"`
	}
	assertJSON(t, output, &out)

	assert.Equal(t, 192, out.TotalSize)
	require.Len(t, out.Blocks, 2)
	assert.Equal(t, 7, out.Blocks[0].ID)
	assert.False(t, out.Blocks[1].Allocated)
}

func TestPoolCommand_BadFile(t *testing.T) {
	resetGlobals(t)
	poolFile = writePoolFile(t, "pool.yaml", "sizes: [100, -5]\n")

	_, err := captureOutput(t, runPool)
	require.ErrorIs(t, err, pool.ErrBadDefinition)
}

func TestStrategiesCommand(t *testing.T) {
	resetGlobals(t)

	output, err := captureOutput(t, runStrategies)
	require.NoError(t, err)
	assert.Equal(t, "first-fit\nbest-fit\nnext-fit\nworst-fit\n", output)

	verbose = true
	output, err = captureOutput(t, runStrategies)
	require.NoError(t, err)
	assertContains(t, output, []string{"smallest free block that fits"})
}
