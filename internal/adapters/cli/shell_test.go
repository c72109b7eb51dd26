package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hostgen/internal/adapters/jsonfile"
	"github.com/example/hostgen/internal/app"
	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/models"
)

// runSession drives a shell over a JSON store at path with the given input lines.
func runSession(t *testing.T, path string, lines ...string) (string, error) {
	t.Helper()
	svc := app.NewCatalogService(jsonfile.NewStore(path))
	out := &bytes.Buffer{}
	shell := NewShell(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), out)
	err := shell.Run(context.Background())
	return out.String(), err
}

func seedStore(t *testing.T, c *models.Catalog) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base.json")
	require.NoError(t, jsonfile.NewStore(path).Save(context.Background(), c))
	return path
}

func loadStore(t *testing.T, path string) *models.Catalog {
	t.Helper()
	c, err := jsonfile.NewStore(path).Load(context.Background())
	require.NoError(t, err)
	return c
}

func seededCatalog() *models.Catalog {
	c := models.NewCatalog()
	c.Suppliers["acme"] = "AC"
	c.Types["laptop"] = "L"
	c.Sectors["ti"] = "01"
	c.Locations["matriz"] = "1"
	return c
}

func TestShell_RegisterEverythingThenGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.json")

	out, err := runSession(t, path,
		"4", "Acme", "AC",
		"6", "laptop", "l",
		"5", "TI", "01",
		"7", "matriz", "1",
		"2", "acme", "laptop", "ti", "matriz", "",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Supplier acme registered with code AC")
	assert.Contains(t, out, "Type laptop registered with code L")
	assert.Contains(t, out, "Hostname generated: CNL-ACL011-001")
	assert.Contains(t, out, "Exiting...")

	c := loadStore(t, path)
	assert.Equal(t, "CNL-ACL011-001", c.Machines["ti"]["001"])
	assert.Equal(t, "01", c.Sectors["ti"])
}

func TestShell_RegistersMissingCategoryAndRetries(t *testing.T) {
	seed := seededCatalog()
	delete(seed.Sectors, "ti")
	path := seedStore(t, seed)

	out, err := runSession(t, path,
		"2", "acme", "laptop", "ti", "matriz", "",
		"y", "01",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, `Sector "ti" is not registered. Register it now? [y/N]`)
	assert.Contains(t, out, "Hostname generated: CNL-ACL011-001")

	c := loadStore(t, path)
	assert.Equal(t, "01", c.Sectors["ti"])
	assert.Equal(t, "CNL-ACL011-001", c.Machines["ti"]["001"])
}

func TestShell_DecliningRegistrationAborts(t *testing.T) {
	seed := seededCatalog()
	delete(seed.Suppliers, "acme")
	path := seedStore(t, seed)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := runSession(t, path,
		"2", "acme", "laptop", "ti", "matriz", "",
		"n",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, `supplier "acme" not found`)
	assert.NotContains(t, out, "Hostname generated")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestShell_ExplicitNumber(t *testing.T) {
	seed := seededCatalog()
	seed.Machines["ti"] = map[string]string{"001": "CNL-ACL011-001"}
	path := seedStore(t, seed)

	out, err := runSession(t, path,
		"2", "acme", "laptop", "ti", "matriz", "1",
		"2", "acme", "laptop", "ti", "matriz", "abc",
		"2", "acme", "laptop", "ti", "matriz", "0",
		"2", "acme", "laptop", "ti", "matriz", "5",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "sequence number 001 is already used in sector ti")
	assert.Contains(t, out, `invalid sequence number "abc": not a number`)
	assert.Contains(t, out, "sequence number 0 is not valid")
	assert.Contains(t, out, "Hostname generated: CNL-ACL011-005")

	c := loadStore(t, path)
	assert.Len(t, c.Machines["ti"], 2)
}

func TestShell_DuplicateCodeIsReported(t *testing.T) {
	path := seedStore(t, seededCatalog())

	out, err := runSession(t, path, "4", "globex", "AC", "8")
	require.NoError(t, err)

	assert.Contains(t, out, `supplier code "AC" is already used by "acme"`)
	_, ok := loadStore(t, path).Suppliers["globex"]
	assert.False(t, ok)
}

func TestShell_DeleteHostname(t *testing.T) {
	seed := seededCatalog()
	seed.Machines["ti"] = map[string]string{"001": "CNL-ACL011-001"}
	path := seedStore(t, seed)

	out, err := runSession(t, path,
		"3", "CNL-XXX-001",
		"3", "CNL-ACL011-001",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, `hostname "CNL-XXX-001" not found`)
	assert.Contains(t, out, "Hostname CNL-ACL011-001 deleted (sector ti, number 001)")
	assert.Empty(t, loadStore(t, path).Machines["ti"])
}

func TestShell_Query(t *testing.T) {
	seed := seededCatalog()
	seed.Machines["ti"] = map[string]string{
		"001": "CNL-ACL011-001",
		"002": "CNL-ACL012-002",
	}
	path := seedStore(t, seed)

	out, err := runSession(t, path,
		"1", "ti",
		"1", "supplier",
		"1", "",
		"1", "financeiro",
		"8",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "ACL011 (1)\n  CNL-ACL011-001\n")
	assert.Contains(t, out, "ACL012 (1)\n  CNL-ACL012-002\n")
	assert.Contains(t, out, "acme")
	assert.Contains(t, out, `sector "financeiro" not found`)
}

func TestShell_InvalidMenuChoice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.json")

	out, err := runSession(t, path, "9", "menu", "8")
	require.NoError(t, err)

	assert.Contains(t, out, `invalid menu option "9": choose 1 to 8`)
	assert.Contains(t, out, `invalid menu option "menu": choose 1 to 8`)
}

func TestShell_EndOfInputExitsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.json")
	svc := app.NewCatalogService(jsonfile.NewStore(path))
	out := &bytes.Buffer{}

	// Input ends in the middle of the create prompts.
	shell := NewShell(svc, strings.NewReader("2\nacme\n"), out)
	require.NoError(t, shell.Run(context.Background()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing should have been saved")
}

func TestShell_CorruptStoreIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fornecedores": `), 0644))

	out, err := runSession(t, path, "8")
	require.Error(t, err)
	assert.True(t, hosterrors.IsStorage(err))
	assert.NotContains(t, out, "MENU")
}
