package models

// OrderStatus is the kitchen-facing lifecycle of an order. Staff tooling may
// move an order to any status at any time; no transition graph is enforced.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Language selects the menu localization. Russian is the house default.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

// ParseLanguage maps any value other than "en" to Russian.
func ParseLanguage(v string) Language {
	if v == string(LanguageEN) {
		return LanguageEN
	}
	return LanguageRU
}
