package cart

import "github.com/pandugalih/kedai-pos/models"

// Line adalah satu baris keranjang: menu + jumlah + catatan opsional.
type Line struct {
	MenuID    uint    `json:"menu_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note,omitempty"`
}

// Cart menampung pilihan customer sebelum order dibuat. Maksimal satu baris
// per menu id; urutan baris mengikuti urutan pertama kali item ditambahkan.
// Semua mutasi di sini murni in-memory, persistensi diurus oleh Session.
type Cart struct {
	CustomerName string `json:"customer_name,omitempty"`
	Lines        []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddItem menambahkan menu ke keranjang. Kalau item sudah ada, quantity
// ditambah, bukan membuat baris baru. qty <= 0 diabaikan.
func (c *Cart) AddItem(menu models.Menu, qty int) {
	if qty <= 0 {
		return
	}
	if line := c.findLine(menu.ID); line != nil {
		line.Quantity += qty
		return
	}
	c.Lines = append(c.Lines, Line{
		MenuID:    menu.ID,
		Name:      menu.Name,
		UnitPrice: menu.Price,
		Quantity:  qty,
	})
}

// UpdateQuantity mengeset quantity sebuah baris. qty <= 0 menghapus baris
// (sama dengan RemoveItem) - ini kontrak yang disengaja, bukan error.
func (c *Cart) UpdateQuantity(menuID uint, qty int) {
	if qty <= 0 {
		c.RemoveItem(menuID)
		return
	}
	if line := c.findLine(menuID); line != nil {
		line.Quantity = qty
	}
}

// RemoveItem menghapus baris kalau ada; no-op kalau tidak.
func (c *Cart) RemoveItem(menuID uint) {
	for i := range c.Lines {
		if c.Lines[i].MenuID == menuID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateNote mengubah catatan baris; no-op kalau baris tidak ada.
func (c *Cart) UpdateNote(menuID uint, note string) {
	if line := c.findLine(menuID); line != nil {
		line.Note = note
	}
}

func (c *Cart) SetCustomerName(name string) {
	c.CustomerName = name
}

// Clear mengosongkan semua baris dan nama customer. Idempotent.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.CustomerName = ""
}

// TotalPrice dihitung ulang setiap dipanggil, tidak pernah di-cache.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) findLine(menuID uint) *Line {
	for i := range c.Lines {
		if c.Lines[i].MenuID == menuID {
			return &c.Lines[i]
		}
	}
	return nil
}
