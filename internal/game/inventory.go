package game

// InventoryItem is one stack in the player's inventory as last reported.
type InventoryItem struct {
	Type         string  `json:"type"`          // "missile", etc.
	VariantID    string  `json:"variant_id"`    // "basic", "high_heat", "long_range", etc.
	HeatCapacity float64 `json:"heat_capacity"` // Heat capacity for missiles
	Quantity     int     `json:"quantity"`      // Stack size
}

// Inventory mirrors the server's item stacks. It is replaced wholesale by
// each snapshot that carries one, so there are no mutators here.
type Inventory struct {
	Items []InventoryItem `json:"items"`
}

// Count returns the total quantity of items of the given type.
func (inv *Inventory) Count(itemType string) int {
	if inv == nil {
		return 0
	}
	total := 0
	for _, item := range inv.Items {
		if item.Type == itemType {
			total += item.Quantity
		}
	}
	return total
}

// GetItemCount returns the quantity of a specific item variant.
func (inv *Inventory) GetItemCount(itemType, variantID string) int {
	if inv == nil {
		return 0
	}
	total := 0
	for _, item := range inv.Items {
		if item.Type == itemType && item.VariantID == variantID {
			total += item.Quantity
		}
	}
	return total
}

// Variants lists the distinct variants of itemType in stack order, skipping
// empty stacks.
func (inv *Inventory) Variants(itemType string) []string {
	if inv == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, item := range inv.Items {
		if item.Type != itemType || item.Quantity <= 0 || seen[item.VariantID] {
			continue
		}
		seen[item.VariantID] = true
		out = append(out, item.VariantID)
	}
	return out
}

func (inv *Inventory) clone() *Inventory {
	if inv == nil {
		return nil
	}
	return &Inventory{Items: append([]InventoryItem(nil), inv.Items...)}
}
