package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrAmountMismatch    = errors.New("payment amount does not match order total")
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrDuplicatePayment  = errors.New("order already has a transaction")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTransaksiNotFound = errors.New("transaction not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ItemUnavailableError menyebut item mana yang tidak bisa dipesan supaya
// caller bisa menghapus item itu dari keranjang dan mencoba lagi.
type ItemUnavailableError struct {
	MenuID uint
	Name   string
}

func (e *ItemUnavailableError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("menu %q (id %d) is not available", e.Name, e.MenuID)
	}
	return fmt.Sprintf("menu id %d is not available", e.MenuID)
}
