//go:build unix

package docxgen

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeRespectsUmask(t *testing.T) {
	previous := syscall.Umask(0o027)
	t.Cleanup(func() { syscall.Umask(previous) })

	b, _ := newTestBuilder(t)
	b.AddText("private")

	dest := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, b.Finalize(dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}
