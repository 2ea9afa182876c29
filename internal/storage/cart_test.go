package storage_test

import (
	"testing"

	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/storage"
	"github.com/stretchr/testify/assert"
)

func azureEarrings() *models.Product {
	return &models.Product{
		ID:          1,
		Name:        "Azure Teardrop Earrings",
		Price:       1800,
		ImageURL:    "https://picsum.photos/seed/earring1/600/600",
		Description: "Elegant paper quilled teardrop earrings.",
		Category:    models.CategoryEarrings,
		Options: &models.ProductOptions{
			Name:   "Hook Material",
			Values: []string{"Sterling Silver", "Gold Plated", "Hypoallergenic Steel"},
		},
	}
}

func sharmaNameplate() *models.Product {
	return &models.Product{
		ID:          5,
		Name:        "Sharma Family Nameplate",
		Price:       3600,
		ImageURL:    "https://picsum.photos/seed/nameplate1/800/400",
		Description: "A beautiful, personalized nameplate.",
		Category:    models.CategoryNameplates,
	}
}

func TestCartStore_AddItem_MergesSameIdentity(t *testing.T) {
	cart := storage.NewCartStore()

	// same (id, option) pair must merge into one line, summing quantity
	cart.AddItem(azureEarrings(), 1, "Gold Plated")
	cart.AddItem(azureEarrings(), 2, "Gold Plated")

	items := cart.Items()
	assert.Len(t, items, 1, "same identity key must merge into one line")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 5400, items[0].Subtotal())
}

func TestCartStore_AddItem_DistinctOptionsCoexist(t *testing.T) {
	cart := storage.NewCartStore()

	cart.AddItem(azureEarrings(), 1, "Gold Plated")
	cart.AddItem(azureEarrings(), 1, "Sterling Silver")
	cart.AddItem(azureEarrings(), 1, "")

	items := cart.Items()
	assert.Len(t, items, 3, "distinct options must stay independent lines")
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartStore_AddItem_MergePreservesPosition(t *testing.T) {
	cart := storage.NewCartStore()

	cart.AddItem(azureEarrings(), 1, "Gold Plated")
	cart.AddItem(sharmaNameplate(), 1, "")
	cart.AddItem(azureEarrings(), 4, "Gold Plated")

	items := cart.Items()
	assert.Len(t, items, 2)
	// the merged line keeps the position of the first add
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(5), items[1].ProductID)
}

func TestCartStore_AddItem_SnapshotsProductFields(t *testing.T) {
	cart := storage.NewCartStore()

	product := azureEarrings()
	cart.AddItem(product, 1, "Gold Plated")

	// later catalog changes must not alter lines already in the cart
	product.Price = 9999
	product.Options.Values[0] = "changed"

	items := cart.Items()
	assert.Equal(t, 1800, items[0].Price)
	assert.Equal(t, "Sterling Silver", items[0].Options.Values[0])
}

func TestCartStore_UpdateQuantity_SetsQuantity(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(azureEarrings(), 1, "Gold Plated")

	cart.UpdateQuantity(1, "Gold Plated", 7)

	items := cart.Items()
	assert.Len(t, items, 1, "a quantity >= 1 never removes a line")
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 7, cart.TotalItems())
}

func TestCartStore_UpdateQuantity_ZeroAndNegativeRemove(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		cart := storage.NewCartStore()
		cart.AddItem(azureEarrings(), 2, "Gold Plated")

		cart.UpdateQuantity(1, "Gold Plated", quantity)

		assert.Empty(t, cart.Items(), "quantity <= 0 must remove the line")
		assert.Equal(t, 0, cart.TotalItems())
	}
}

func TestCartStore_UpdateQuantity_KeysOnFullIdentity(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(azureEarrings(), 1, "Gold Plated")
	cart.AddItem(azureEarrings(), 1, "Sterling Silver")

	// variant lines sharing a product id are updated independently
	cart.UpdateQuantity(1, "Gold Plated", 5)

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartStore_UpdateQuantity_NoMatchIsNoOp(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(azureEarrings(), 2, "Gold Plated")

	cart.UpdateQuantity(42, "", 5)
	cart.UpdateQuantity(1, "Hypoallergenic Steel", 5)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartStore_RemoveItem_DropsAllVariants(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(azureEarrings(), 1, "Gold Plated")
	cart.AddItem(azureEarrings(), 1, "Sterling Silver")
	cart.AddItem(sharmaNameplate(), 1, "")

	cart.RemoveItem(1)

	items := cart.Items()
	assert.Len(t, items, 1, "only the removed product's lines may disappear")
	assert.Equal(t, int64(5), items[0].ProductID)
}

func TestCartStore_RemoveItem_NoMatchIsNoOp(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(sharmaNameplate(), 1, "")

	cart.RemoveItem(42)

	assert.Len(t, cart.Items(), 1)
}

func TestCartStore_Clear(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(azureEarrings(), 2, "Gold Plated")
	cart.AddItem(sharmaNameplate(), 1, "")

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartStore_TotalItems_TracksEveryMutation(t *testing.T) {
	cart := storage.NewCartStore()
	assert.Equal(t, 0, cart.TotalItems())

	cart.AddItem(azureEarrings(), 2, "Gold Plated")
	assert.Equal(t, 2, cart.TotalItems())

	cart.AddItem(sharmaNameplate(), 3, "")
	assert.Equal(t, 5, cart.TotalItems())

	cart.UpdateQuantity(5, "", 1)
	assert.Equal(t, 3, cart.TotalItems())

	cart.RemoveItem(1)
	assert.Equal(t, 1, cart.TotalItems())

	cart.Clear()
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartStore_ItemsReturnsCopy(t *testing.T) {
	cart := storage.NewCartStore()
	cart.AddItem(azureEarrings(), 2, "Gold Plated")

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 2, cart.Items()[0].Quantity, "mutating the snapshot must not touch the store")
}
