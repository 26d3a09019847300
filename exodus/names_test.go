package exodus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertNames(t *testing.T) {
	raw := []string{
		"Fluid\x00\x00\x00",
		"WALL  ",
		"\x00\x00",
		"Mixed Case\x00",
	}
	assert.Equal(t, []string{"fluid", "wall", "", "mixed case"}, convertNames(raw))
}
