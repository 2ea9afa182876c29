package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/linemk/siya-shop/internal/domain/models"
	"github.com/linemk/siya-shop/internal/service"
	"github.com/linemk/siya-shop/internal/storage"
	"github.com/stretchr/testify/assert"
)

// fakeCatalogRepo serves a fixed product set, keyed by id.
type fakeCatalogRepo struct {
	products map[int64]*models.Product
}

var _ storage.CatalogStorage = (*fakeCatalogRepo)(nil)

func newFakeCatalogRepo(products ...*models.Product) *fakeCatalogRepo {
	repo := &fakeCatalogRepo{products: make(map[int64]*models.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListProductsByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, storage.ErrProductNotFound
	}
	return p, nil
}

// fakeGenerator stands in for the generative-design collaborator.
type fakeGenerator struct {
	suggestion *models.DesignSuggestion
	image      string
	err        error
}

func (f *fakeGenerator) SuggestDesign(ctx context.Context, name, stylePrompt string) (*models.DesignSuggestion, error) {
	return f.suggestion, f.err
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return f.image, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func goldEarrings() *models.Product {
	return &models.Product{
		ID:       1,
		Name:     "Azure Teardrop Earrings",
		Price:    1800,
		Category: models.CategoryEarrings,
		Options: &models.ProductOptions{
			Name:   "Hook Material",
			Values: []string{"Sterling Silver", "Gold Plated"},
		},
	}
}

func nameplate() *models.Product {
	return &models.Product{
		ID:       5,
		Name:     "Sharma Family Nameplate",
		Price:    3600,
		Category: models.CategoryNameplates,
	}
}

func TestAuthService_Login_IssuesTokenAndActivatesSession(t *testing.T) {
	os.Setenv("JWT_SECRET", "testsecret")
	defer os.Unsetenv("JWT_SECRET")

	sessionStore := storage.NewSessionStore()
	authService := service.NewAuthService(testLogger(), sessionStore, time.Minute)

	token, err := authService.Login(context.Background(), "a@b.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, ok := sessionStore.Current()
	assert.True(t, ok, "login must activate the session")
	assert.Equal(t, "a@b.com", user.Email)
}

func TestAuthService_Login_FailsWithoutSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	sessionStore := storage.NewSessionStore()
	authService := service.NewAuthService(testLogger(), sessionStore, time.Minute)

	_, err := authService.Login(context.Background(), "a@b.com")
	assert.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	os.Setenv("JWT_SECRET", "testsecret")
	defer os.Unsetenv("JWT_SECRET")

	sessionStore := storage.NewSessionStore()
	authService := service.NewAuthService(testLogger(), sessionStore, time.Minute)

	_, err := authService.Login(context.Background(), "a@b.com")
	assert.NoError(t, err)

	authService.Logout(context.Background())
	_, ok := sessionStore.Current()
	assert.False(t, ok)
}

func TestCartService_Add_ResolvesProductFromCatalog(t *testing.T) {
	cartStore := storage.NewCartStore()
	cartService := service.NewCartService(testLogger(), newFakeCatalogRepo(goldEarrings()), cartStore)

	err := cartService.Add(context.Background(), 1, 2, "Gold Plated")
	assert.NoError(t, err)

	cart := cartService.View(context.Background())
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Azure Teardrop Earrings", cart.Items[0].Name)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, 3600, cart.Subtotal)
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	cartStore := storage.NewCartStore()
	cartService := service.NewCartService(testLogger(), newFakeCatalogRepo(), cartStore)

	err := cartService.Add(context.Background(), 42, 1, "")
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
	assert.Empty(t, cartService.View(context.Background()).Items)
}

func TestCartService_Add_CustomOptionFromCustomizer(t *testing.T) {
	cartStore := storage.NewCartStore()
	cartService := service.NewCartService(testLogger(), newFakeCatalogRepo(nameplate()), cartStore)

	// the customizer submits free-form options outside the declared list
	err := cartService.Add(context.Background(), 5, 1, "Custom: Sharma")
	assert.NoError(t, err)

	cart := cartService.View(context.Background())
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Custom: Sharma", cart.Items[0].SelectedOption)
}

func TestCheckoutService_AuthedCheckoutRecordsOrder(t *testing.T) {
	cartStore := storage.NewCartStore()
	sessionStore := storage.NewSessionStore()
	checkoutService := service.NewCheckoutService(testLogger(), cartStore, sessionStore)

	cartStore.AddItem(nameplate(), 1, "")
	sessionStore.Login("a@b.com")

	result := checkoutService.Checkout(context.Background())

	assert.True(t, result.OrderRecorded)
	assert.NotNil(t, result.Order)
	assert.NotEmpty(t, result.Order.ID)
	assert.Equal(t, 3600, result.Order.Total)

	orders := sessionStore.Orders()
	assert.Len(t, orders, 1)
	assert.Len(t, orders[0].Lines, 1)
	assert.Equal(t, int64(5), orders[0].Lines[0].ProductID)

	// the cart is cleared after the snapshot is archived
	assert.Empty(t, cartStore.Items())
	assert.Equal(t, 0, cartStore.TotalItems())
}

func TestCheckoutService_GuestCheckoutClearsCartWithoutRecord(t *testing.T) {
	cartStore := storage.NewCartStore()
	sessionStore := storage.NewSessionStore()
	checkoutService := service.NewCheckoutService(testLogger(), cartStore, sessionStore)

	cartStore.AddItem(nameplate(), 1, "")

	result := checkoutService.Checkout(context.Background())

	assert.False(t, result.OrderRecorded)
	assert.Nil(t, result.Order)
	assert.Empty(t, cartStore.Items(), "the clear is unconditional for guests too")
}

func TestCheckoutService_SnapshotIsImmutable(t *testing.T) {
	cartStore := storage.NewCartStore()
	sessionStore := storage.NewSessionStore()
	checkoutService := service.NewCheckoutService(testLogger(), cartStore, sessionStore)

	sessionStore.Login("a@b.com")
	cartStore.AddItem(goldEarrings(), 2, "Gold Plated")

	checkoutService.Checkout(context.Background())

	// new cart activity must not leak into the archived order
	cartStore.AddItem(nameplate(), 5, "")
	orders := sessionStore.Orders()
	assert.Len(t, orders, 1)
	assert.Len(t, orders[0].Lines, 1)
	assert.Equal(t, 2, orders[0].Lines[0].Quantity)
}

func TestDesignService_Suggest_Success(t *testing.T) {
	suggestion := &models.DesignSuggestion{
		FontFamily:   "Lobster",
		Description:  "A playful hand-lettered concept.",
		ColorPalette: []string{"#FFFFFF", "#2B2B2B", "#C9A227"},
	}
	designService := service.NewDesignService(testLogger(), &fakeGenerator{suggestion: suggestion})

	got, err := designService.Suggest(context.Background(), "Sharma", "rustic wood")
	assert.NoError(t, err)
	assert.Equal(t, suggestion, got)
}

func TestDesignService_Suggest_CollapsesUpstreamFailure(t *testing.T) {
	designService := service.NewDesignService(testLogger(), &fakeGenerator{err: errors.New("upstream exploded")})

	_, err := designService.Suggest(context.Background(), "Sharma", "rustic wood")
	assert.ErrorIs(t, err, service.ErrGenerationFailed, "upstream detail must not surface")
}

func TestDesignService_GenerateImage(t *testing.T) {
	designService := service.NewDesignService(testLogger(), &fakeGenerator{image: "aGVsbG8="})

	image, err := designService.GenerateImage(context.Background(), "walnut nameplate")
	assert.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", image)

	failing := service.NewDesignService(testLogger(), &fakeGenerator{err: errors.New("no image")})
	_, err = failing.GenerateImage(context.Background(), "walnut nameplate")
	assert.ErrorIs(t, err, service.ErrGenerationFailed)
}
