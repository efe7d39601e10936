package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
	"github.com/gatescan/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []staff.Staff {
	return []staff.Staff{
		{ID: "1", Name: "Ahmed", Position: "Teacher", Barcode: "B1", Section: "M"},
		{ID: "2", Name: "Fatima", Position: "Teacher", Barcode: "B2", Section: "F"},
	}
}

func TestDirectory_FindByBarcode_LazyLoads(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SetRoster(testRoster())

	dir := NewDirectory(store)

	// No explicit Reload; the first lookup must trigger one.
	st, err := dir.FindByBarcode(ctx, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", st.Name)
	assert.Equal(t, "M", st.Section)
}

func TestDirectory_FindByBarcode_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SetRoster(testRoster())

	dir := NewDirectory(store)

	_, err := dir.FindByBarcode(ctx, "unknown")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestDirectory_NoReloadBetweenLookups(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SetRoster(testRoster())

	dir := NewDirectory(store)

	_, err := dir.FindByBarcode(ctx, "B1")
	require.NoError(t, err)

	// A roster change is invisible until the next explicit reload.
	store.SetRoster([]staff.Staff{
		{ID: "3", Name: "Noor", Barcode: "B3", Section: "F"},
	})

	_, err = dir.FindByBarcode(ctx, "B3")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	require.NoError(t, dir.Reload(ctx))

	st, err := dir.FindByBarcode(ctx, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Noor", st.Name)

	_, err = dir.FindByBarcode(ctx, "B1")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestDirectory_Snapshot_KeepsLoadOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SetRoster(testRoster())

	dir := NewDirectory(store)

	roster, err := dir.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "1", roster[0].ID)
	assert.Equal(t, "2", roster[1].ID)
}

type failingSource struct{}

func (failingSource) ListStaff(ctx context.Context) ([]staff.Staff, error) {
	return nil, errors.New("store rejected the call")
}

func TestDirectory_SourceFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	dir := NewDirectory(failingSource{})

	_, err := dir.FindByBarcode(ctx, "B1")
	assert.Error(t, err)
}

func TestDirectory_NilSourceUnavailable(t *testing.T) {
	ctx := context.Background()
	dir := NewDirectory(nil)

	_, err := dir.Snapshot(ctx)
	assert.ErrorIs(t, err, staff.ErrDirectoryUnavailable)
}
