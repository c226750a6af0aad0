package builder

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainedConstruction(t *testing.T) {
	pc := NewComputerBuilder().RAM("16GB").Storage("1TB").Build()
	assert.Equal(t, "16GB", pc.RAM)
	assert.Equal(t, "1TB", pc.Storage)
}

func TestFieldOrderDoesNotMatter(t *testing.T) {
	a := NewComputerBuilder().RAM("32GB").Storage("2TB").Build()
	b := NewComputerBuilder().Storage("2TB").RAM("32GB").Build()
	assert.Equal(t, a, b)
}

func TestOmittedFieldsStayEmpty(t *testing.T) {
	pc := NewComputerBuilder().RAM("8GB").Build()
	assert.Equal(t, "8GB", pc.RAM)
	assert.Empty(t, pc.Storage)
}

func TestDemoRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo{}.Run(context.Background(), &buf))
	assert.Contains(t, buf.String(), "RAM=16GB Storage=1TB")
}
