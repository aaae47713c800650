package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"animalbase/internal/domain/animals"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "animals.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ReadsArrayInOrder(t *testing.T) {
	path := writeFile(t, t.TempDir(), `[
		{"fullname": "Mandu the amazing cat", "age": 10},
		{"fullname": "Mia the black cat", "age": 8},
		{"fullname": "Leeroy the growing dog", "age": 3}
	]`)

	raws, err := New(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 3)
	require.Equal(t, "Mandu the amazing cat", raws[0].Fullname)
	require.Equal(t, "Leeroy the growing dog", raws[2].Fullname)
	require.Equal(t, float64(3), raws[2].Age)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	require.ErrorIs(t, err, animals.ErrLoadFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), `[{"fullname": "Rex the Good Dog",`)

	_, err := New(path).Load(context.Background())
	require.ErrorIs(t, err, animals.ErrInvalidPayload)
}

func TestWatch_CallsOnChangeAfterWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	err := New(path).Watch(ctx, nil, func(context.Context) {
		changed <- struct{}{}
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"fullname":"Rex the Good Dog","age":3}]`), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected onChange after writing the file")
	}
}
