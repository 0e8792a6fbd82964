package uploads

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsImage(t *testing.T) {
	require.True(t, IsImage("poster.jpg"))
	require.True(t, IsImage("POSTER.PNG"))
	require.True(t, IsImage("cover.webp"))
	require.False(t, IsImage("rules.pdf"))
	require.False(t, IsImage("archive.zip"))
	require.False(t, IsImage("noextension"))
}

func TestIsPDF(t *testing.T) {
	require.True(t, IsPDF("rules.pdf"))
	require.True(t, IsPDF("RULES.PDF"))
	require.False(t, IsPDF("rules.doc"))
}

func TestOwnerBaseName(t *testing.T) {
	require.Equal(t, "arjun_k", OwnerBaseName("arjun_k"))

	// Without an owner a random token is used so first-time uploads cannot
	// collide.
	anon := OwnerBaseName("")
	require.NotEmpty(t, anon)
	require.NotContains(t, anon, "-")
	require.NotEqual(t, anon, OwnerBaseName(""))
}
