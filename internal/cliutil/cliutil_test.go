package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTty(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "regular"))
	require.NoError(t, err)
	defer f.Close()

	require.False(t, IsTty(f), "regular files are not terminals")

	require.NoError(t, f.Close())
	require.False(t, IsTty(f), "closed files are not terminals")
}
