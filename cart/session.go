package cart

import (
	"context"

	"github.com/pandugalih/kedai-pos/models"
	"github.com/pandugalih/kedai-pos/utils"
)

// Session mengikat satu Cart ke key sesi browsing dan menyimpan ulang setiap
// mutasi lewat Store. Gagal menyimpan tidak menggagalkan operasi: state
// in-memory tetap jadi acuan selama sesi berjalan, kegagalannya hanya dicatat.
type Session struct {
	Key   string
	Cart  *Cart
	store Store
}

// NewSession memuat keranjang tersimpan untuk key tersebut, atau keranjang
// kosong kalau belum ada.
func NewSession(ctx context.Context, key string, store Store) (*Session, error) {
	c, err := store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return &Session{Key: key, Cart: c, store: store}, nil
}

func (s *Session) AddItem(ctx context.Context, menu models.Menu, qty int) {
	s.Cart.AddItem(menu, qty)
	s.persist(ctx)
}

func (s *Session) UpdateQuantity(ctx context.Context, menuID uint, qty int) {
	s.Cart.UpdateQuantity(menuID, qty)
	s.persist(ctx)
}

func (s *Session) RemoveItem(ctx context.Context, menuID uint) {
	s.Cart.RemoveItem(menuID)
	s.persist(ctx)
}

func (s *Session) UpdateNote(ctx context.Context, menuID uint, note string) {
	s.Cart.UpdateNote(menuID, note)
	s.persist(ctx)
}

func (s *Session) SetCustomerName(ctx context.Context, name string) {
	s.Cart.SetCustomerName(name)
	s.persist(ctx)
}

func (s *Session) Clear(ctx context.Context) {
	s.Cart.Clear()
	s.persist(ctx)
}

func (s *Session) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.Key, s.Cart); err != nil {
		utils.ErrorLogger.Printf("failed to persist cart %s: %v", s.Key, err)
	}
}
