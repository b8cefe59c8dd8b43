package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoaderBundledFont(t *testing.T) {
	t.Parallel()

	loader := NewLoader("")

	resource, err := loader.Ensure()
	require.NoError(t, err)
	require.NotEmpty(t, resource.PostScriptName())
	require.NotEmpty(t, resource.Data())
	require.Greater(t, resource.Ascent(), 0.0)
	require.Less(t, resource.Descent(), 0.0)
}

func TestLoaderFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	loader := NewLoader(path)

	resource, err := loader.Ensure()
	require.NoError(t, err)
	require.Equal(t, goregular.TTF, resource.Data())
}

func TestLoaderMissingFile(t *testing.T) {
	t.Parallel()

	loader := NewLoader(filepath.Join(t.TempDir(), "missing.ttf"))

	_, err := loader.Ensure()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoaderInvalidFontData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	loader := NewLoader(path)

	_, err := loader.Ensure()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoaderCachesResource(t *testing.T) {
	t.Parallel()

	loader := NewLoader("")

	first, err := loader.Ensure()
	require.NoError(t, err)

	second, err := loader.Ensure()
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "late.ttf")
	loader := NewLoader(path)

	_, err := loader.Ensure()
	require.ErrorIs(t, err, ErrUnavailable)

	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	resource, err := loader.Ensure()
	require.NoError(t, err)
	require.NotNil(t, resource)
}
