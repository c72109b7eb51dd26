package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/models"
)

// legacyDocument is a store as written by earlier releases (json.dump, indent 4).
const legacyDocument = `{
    "fornecedores": {
        "acme": "AC",
        "globex": "GX"
    },
    "setores": {
        "ti": "01"
    },
    "tipos": {
        "laptop": "L"
    },
    "locais": {
        "matriz": "1"
    },
    "maquinas": {
        "ti": {
            "001": "CNL-ACL011-001",
            "002": "CNL-GXL011-002"
        }
    }
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "base.json"))

	c, err := store.Load(context.Background())
	require.NoError(t, err)

	for _, cat := range models.Categories {
		assert.NotNil(t, c.Entries(cat))
		assert.Empty(t, c.Entries(cat))
	}
	assert.NotNil(t, c.Machines)
	assert.Empty(t, c.Machines)
}

func TestStore_LoadLegacyDocument(t *testing.T) {
	store := NewStore(writeFile(t, legacyDocument))

	c, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "AC", c.Suppliers["acme"])
	assert.Equal(t, "L", c.Types["laptop"])
	assert.Equal(t, "01", c.Sectors["ti"])
	assert.Equal(t, "1", c.Locations["matriz"])
	assert.Equal(t, "CNL-GXL011-002", c.Machines["ti"]["002"])
}

func TestStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"fornecedores": {`},
		{"empty file", ``},
		{"wrong shape", `{"fornecedores": ["acme"]}`},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(writeFile(t, tt.content))
			_, err := store.Load(context.Background())
			require.Error(t, err)
			assert.True(t, hosterrors.IsStorage(err), "got %v", err)
		})
	}
}

func TestStore_LoadPartialDocumentNormalizes(t *testing.T) {
	store := NewStore(writeFile(t, `{"fornecedores": {"acme": "AC"}, "maquinas": {"ti": null}}`))

	c, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c.Types)
	assert.NotNil(t, c.Machines["ti"])
}

func TestStore_SaveLoadIsByteIdempotent(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, legacyDocument)
	store := NewStore(path)

	c, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, legacyDocument, string(first), "sorted legacy document should be rewritten unchanged")

	c, err = store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_SaveCreatesFileAndLeavesNoTemp(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "base.json"))

	c := models.NewCatalog()
	c.Suppliers["acme"] = "AC"
	require.NoError(t, store.Save(ctx, c))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "base.json", entries[0].Name())

	info, err := os.Stat(filepath.Join(dir, "base.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestStore_SaveToMissingDirectoryFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", "base.json"))

	err := store.Save(context.Background(), models.NewCatalog())
	require.Error(t, err)
	assert.True(t, hosterrors.IsStorage(err))
}

func TestEncode_EmptyCatalog(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, `{
    "fornecedores": {},
    "setores": {},
    "tipos": {},
    "locais": {},
    "maquinas": {}
}`, string(data))
}

func TestEncode_DoesNotEscapeHTML(t *testing.T) {
	c := models.NewCatalog()
	c.Suppliers["a&b"] = "<AB>"

	data, err := Encode(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a&b": "<AB>"`)
}

func TestNewStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFileName, NewStore("").Location())
}
