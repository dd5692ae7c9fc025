package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlineForKnownTypes(t *testing.T) {
	togaf := OutlineFor("togaf")
	assert.Equal(t, "Document d'Architecture TOGAF", togaf.Title)
	require.Len(t, togaf.Sections, 7)
	assert.Equal(t, "1. Vision d'Architecture", togaf.Sections["vision"].Title)

	archimate := OutlineFor("archimate")
	assert.Equal(t, "Document ArchiMate", archimate.Title)
	require.Len(t, archimate.Sections, 6)
}

func TestOutlineForUnknownTypeFallsBackToCustom(t *testing.T) {
	custom := OutlineFor("custom")
	assert.Equal(t, custom, OutlineFor("zachman"))
	assert.Equal(t, custom, OutlineFor(""))
}
