package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreLoadMissingKeyReturnsEmptyCart(t *testing.T) {
	store := NewMemoryStore()

	c, err := store.Load(context.Background(), "sesi-baru")
	assert.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestSessionPersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess, err := NewSession(ctx, "meja-5", store)
	assert.NoError(t, err)

	sess.AddItem(ctx, menuFixture(1, "Kopi Susu", 15000), 2)
	sess.UpdateNote(ctx, 1, "less ice")
	sess.SetCustomerName(ctx, "Sari")

	// Sesi baru dengan key sama harus melihat state tersimpan
	reloaded, err := NewSession(ctx, "meja-5", store)
	assert.NoError(t, err)
	assert.Equal(t, "Sari", reloaded.Cart.CustomerName)
	assert.Len(t, reloaded.Cart.Lines, 1)
	assert.Equal(t, "less ice", reloaded.Cart.Lines[0].Note)
	assert.Equal(t, float64(30000), reloaded.Cart.TotalPrice())
}

func TestSessionClearSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess, _ := NewSession(ctx, "meja-7", store)
	sess.AddItem(ctx, menuFixture(1, "Kopi Susu", 15000), 1)
	sess.Clear(ctx)

	reloaded, err := NewSession(ctx, "meja-7", store)
	assert.NoError(t, err)
	assert.True(t, reloaded.Cart.IsEmpty())
}

// failingStore selalu gagal menyimpan, untuk memastikan kegagalan persist
// tidak menggagalkan mutasi in-memory.
type failingStore struct{}

func (failingStore) Load(ctx context.Context, key string) (*Cart, error) {
	return New(), nil
}

func (failingStore) Save(ctx context.Context, key string, c *Cart) error {
	return errors.New("storage unavailable")
}

func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("storage unavailable")
}

func TestSessionKeepsInMemoryStateWhenSaveFails(t *testing.T) {
	ctx := context.Background()

	sess, err := NewSession(ctx, "meja-9", failingStore{})
	assert.NoError(t, err)

	sess.AddItem(ctx, menuFixture(1, "Kopi Susu", 15000), 2)
	sess.UpdateQuantity(ctx, 1, 3)

	assert.Len(t, sess.Cart.Lines, 1)
	assert.Equal(t, 3, sess.Cart.Lines[0].Quantity)
	assert.Equal(t, float64(45000), sess.Cart.TotalPrice())
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c := New()
	c.AddItem(menuFixture(1, "Kopi Susu", 15000), 1)
	assert.NoError(t, store.Save(ctx, "meja-2", c))
	assert.NoError(t, store.Delete(ctx, "meja-2"))

	loaded, err := store.Load(ctx, "meja-2")
	assert.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
