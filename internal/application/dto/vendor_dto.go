package dto

// VendorInventoryItemDTO una fruta del inventario de un vendor.
type VendorInventoryItemDTO struct {
	FruitID  int64         `json:"fruit_id"`
	Quantity int64         `json:"quantity"`
	Fruit    FruitResponse `json:"fruit"`
}

// VendorResponse salida de un vendor con su inventario.
type VendorResponse struct {
	ID            int64                    `json:"id"`
	Name          string                   `json:"name"`
	Species       string                   `json:"species"`
	HomeDimension string                   `json:"home_dimension"`
	Inventory     []VendorInventoryItemDTO `json:"inventory_items"`
}

// AddFruitRequest body para POST /api/vendors/me/add-fruit (abono directo).
type AddFruitRequest struct {
	FruitID  int64 `json:"fruit_id"`
	Quantity int64 `json:"quantity"`
}
