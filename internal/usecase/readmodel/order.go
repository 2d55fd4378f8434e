package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type OrderRM struct {
	Index         int       `json:"index"`
	ID            uuid.UUID `json:"id"`
	Seq           int       `json:"seq"`
	Drink         string    `json:"drink"`
	Temperature   string    `json:"temperature"`
	Size          string    `json:"size"`
	Options       []string  `json:"options"`
	Price         int64     `json:"price"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SessionRM struct {
	UserID        string   `json:"user_id"`
	State         string   `json:"state"`
	Drink         *string  `json:"drink,omitempty"`
	Temperature   *string  `json:"temperature,omitempty"`
	Size          *string  `json:"size,omitempty"`
	Options       []string `json:"options"`
	Confirmed     bool     `json:"confirmed"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
}

type TurnRM struct {
	Prompt     string   `json:"prompt"`
	PromptKind string   `json:"prompt_kind"`
	State      string   `json:"state"`
	Order      *OrderRM `json:"order,omitempty"`
}

type MenuRM struct {
	Categories []MenuCategoryRM `json:"categories"`
	Sizes      []PricedItemRM   `json:"sizes"`
	Options    []PricedItemRM   `json:"options"`
	Payments   []string         `json:"payment_methods"`
}

type MenuCategoryRM struct {
	Name   string        `json:"name"`
	Drinks []MenuDrinkRM `json:"drinks"`
}

type MenuDrinkRM struct {
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	Temperatures []string `json:"temperatures"`
}

type PricedItemRM struct {
	Name  string `json:"name"`
	Delta int64  `json:"delta"`
}

type SalesRM struct {
	Total int64 `json:"total"`
}
