package naming_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"materialize/naming"
)

const script = `
function material_name(name)
  return "ic_" .. string.lower(name)
end

function number(name)
  return nil
end

function slash(name)
  return "../" .. name
end
`

func TestIdentity(t *testing.T) {
	name, err := naming.Identity{}.Name("Arrow Back")
	require.NoError(t, err)
	require.Equal(t, "Arrow Back", name)
}

func TestLuaNamer(t *testing.T) {
	n, err := naming.NewLuaNamerString(script, "material_name")
	require.NoError(t, err)

	name, err := n.Name("ArrowBack")
	require.NoError(t, err)
	require.Equal(t, "ic_arrowback", name)

	// state is reusable
	name, err = n.Name("Home")
	require.NoError(t, err)
	require.Equal(t, "ic_home", name)
}

func TestLuaNamerFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "names.lua")
	require.NoError(t, os.WriteFile(p, []byte(script), 0o644))

	n, err := naming.NewLuaNamerFile(p, "material_name")
	require.NoError(t, err)
	name, err := n.Name("Star")
	require.NoError(t, err)
	require.Equal(t, "ic_star", name)
}

func TestLuaNamerErrors(t *testing.T) {
	_, err := naming.NewLuaNamerString(script, "missing")
	require.EqualError(t, err, "naming function missing is not defined")

	_, err = naming.NewLuaNamerString(script, "")
	require.Error(t, err)

	_, err = naming.NewLuaNamerString("function (", "x")
	require.Error(t, err)

	n, err := naming.NewLuaNamerString(script, "number")
	require.NoError(t, err)
	_, err = n.Name("a")
	require.Error(t, err)

	n, err = naming.NewLuaNamerString(script, "slash")
	require.NoError(t, err)
	_, err = n.Name("a")
	require.Error(t, err)
}
