package storage_test

import (
	"testing"
	"time"

	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/storage"
	"github.com/stretchr/testify/assert"
)

func testOrder(id, email string, lines ...models.CartLine) models.Order {
	return models.Order{
		ID:        id,
		Email:     email,
		Lines:     lines,
		Total:     models.OrderTotal(lines),
		CreatedAt: time.Now(),
	}
}

func TestSessionStore_LoginLogout(t *testing.T) {
	session := storage.NewSessionStore()

	_, ok := session.Current()
	assert.False(t, ok, "a fresh store is anonymous")

	session.Login("a@b.com")
	user, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", user.Email)

	session.Logout()
	_, ok = session.Current()
	assert.False(t, ok, "logout returns to anonymous")
}

func TestSessionStore_AddOrder_RequiresIdentity(t *testing.T) {
	session := storage.NewSessionStore()

	// anonymous orders are never recorded, silently
	recorded := session.AddOrder(testOrder("o1", ""))
	assert.False(t, recorded)
	assert.Empty(t, session.OrdersFor(""))

	session.Login("a@b.com")
	recorded = session.AddOrder(testOrder("o2", "a@b.com"))
	assert.True(t, recorded)

	orders := session.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "o2", orders[0].ID)
}

func TestSessionStore_AddOrder_AppendsOldestFirst(t *testing.T) {
	session := storage.NewSessionStore()
	session.Login("a@b.com")

	session.AddOrder(testOrder("o1", "a@b.com"))
	session.AddOrder(testOrder("o2", "a@b.com"))
	session.AddOrder(testOrder("o3", "a@b.com"))

	orders := session.Orders()
	assert.Len(t, orders, 3)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "o3", orders[2].ID)
}

func TestSessionStore_HistoriesArePartitionedPerEmail(t *testing.T) {
	session := storage.NewSessionStore()

	session.Login("a@b.com")
	session.AddOrder(testOrder("o1", "a@b.com"))
	session.Logout()

	// a different identity must not see the first identity's orders
	session.Login("c@d.com")
	assert.Empty(t, session.Orders())
	session.AddOrder(testOrder("o2", "c@d.com"))
	session.Logout()

	// the original identity finds its own history again
	session.Login("a@b.com")
	orders := session.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)

	assert.Len(t, session.OrdersFor("c@d.com"), 1)
}

func TestSessionStore_OrdersReturnsDeepCopies(t *testing.T) {
	session := storage.NewSessionStore()
	session.Login("a@b.com")

	line := models.CartLine{ProductID: 1, Name: "Azure Teardrop Earrings", Price: 2500, Quantity: 1}
	session.AddOrder(testOrder("o1", "a@b.com", line))

	// mutating a returned order must not corrupt the stored history
	leaked := session.Orders()
	leaked[0].Lines[0].Quantity = 99
	leaked[0].Lines[0].Name = "tampered"

	orders := session.Orders()
	assert.Equal(t, 1, orders[0].Lines[0].Quantity)
	assert.Equal(t, "Azure Teardrop Earrings", orders[0].Lines[0].Name)

	leaked = session.OrdersFor("a@b.com")
	leaked[0].Lines[0].Quantity = 99
	assert.Equal(t, 1, session.OrdersFor("a@b.com")[0].Lines[0].Quantity)
}

func TestSessionStore_OrdersWhileAnonymousIsEmpty(t *testing.T) {
	session := storage.NewSessionStore()
	session.Login("a@b.com")
	session.AddOrder(testOrder("o1", "a@b.com"))
	session.Logout()

	assert.Empty(t, session.Orders())
}
