package models

// OrderItem is one embedded order line. Price and Name are copies taken when
// the order was placed and do not follow later catalog edits.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Price      float64 `json:"price" bson:"price"`
	Name       string  `json:"name" bson:"name"`
}

// OrderItemCreate is one requested order line. Every field must be present.
type OrderItemCreate struct {
	MenuItemID *string  `json:"menu_item_id" validate:"required"`
	Quantity   *int     `json:"quantity" validate:"required,gte=1"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
	Name       *string  `json:"name" validate:"required"`
}

func (in OrderItemCreate) OrderItem() OrderItem {
	return OrderItem{
		MenuItemID: deref(in.MenuItemID),
		Quantity:   deref(in.Quantity),
		Price:      deref(in.Price),
		Name:       deref(in.Name),
	}
}
