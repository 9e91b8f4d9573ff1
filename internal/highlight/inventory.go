// File: internal/highlight/inventory.go
package highlight

import (
	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/ge"
)

// inventoryItemWidget locates the inventory slot holding the given unnoted
// item. The trade-post swaps the inventory to its own interface group while
// open, so that group is tried first. A slot holding the item directly beats
// one holding its noted variant; the noted slot is returned only when no
// direct match exists.
func (c *Controller) inventoryItemWidget(unnotedItemID int) schemas.Widget {
	inventory := c.client.Widget(ge.GroupInventoryGE, 0)
	if inventory == nil {
		inventory = c.client.Widget(ge.GroupInventory, 0)
		if inventory == nil {
			return nil
		}
	}

	var noted, unnoted schemas.Widget
	for _, slot := range inventory.DynamicChildren() {
		if slot == nil {
			continue
		}
		itemID := slot.ItemID()
		def := c.client.ItemDef(itemID)

		if def.Noted {
			if def.LinkedID == unnotedItemID {
				noted = slot
			}
		} else if itemID == unnotedItemID {
			unnoted = slot
		}
	}

	if unnoted != nil {
		return unnoted
	}
	return noted
}
