package integration

import (
	"context"
	"testing"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns the seeded catalog", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("Seeding twice does not duplicate rows", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("GetBySlug round-trips nested document fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		product, err := repo.GetBySlug(ctx, "zx9-speaker")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "ZX9 Speaker", product.Name)
		assert.Equal(t, 4500, product.Price)
		assert.NotEmpty(t, product.Includes)
		require.NotNil(t, product.Gallery)
		assert.NotEmpty(t, product.Gallery.First)
		assert.NotEmpty(t, product.Others)
	})

	t.Run("GetBySlug returns nil for an unknown slug", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		product, err := repo.GetBySlug(ctx, "zx11-speaker")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("GetByID returns the correct product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		product, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, 1, product.ID)
	})

	t.Run("GetByCategory filters by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalog(t, testDB.Pool)

		speakers, err := repo.GetByCategory(ctx, "speakers")
		require.NoError(t, err)
		require.Len(t, speakers, 2)
		for _, p := range speakers {
			assert.Equal(t, "speakers", p.Category)
		}

		empty, err := repo.GetByCategory(ctx, "turntables")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	newOrder := func() *model.Order {
		return &model.Order{
			Name:          "Alexei Ward",
			Email:         "alexei@mail.com",
			Phone:         "+1 202-555-0136",
			Address:       "1137 Williams Avenue",
			Zip:           "10001",
			City:          "New York",
			Country:       "United States",
			PaymentMethod: model.PaymentMethodEMoney,
			Items: []model.OrderItem{
				{ID: 1, Name: "YX1", Price: 599, Quantity: 1},
				{ID: 5, Name: "ZX9", Price: 4500, Quantity: 2},
			},
			Subtotal:   9599,
			Shipping:   50,
			VAT:        1920,
			GrandTotal: 11569,
		}
	}

	t.Run("Create assigns sequential ids", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		first := newOrder()
		second := newOrder()

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		assert.Positive(t, first.ID)
		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("GetByID round-trips the item snapshot", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		require.NoError(t, repo.Create(ctx, order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, order.Name, got.Name)
		assert.Equal(t, order.GrandTotal, got.GrandTotal)
		require.Len(t, got.Items, 2)
		assert.Equal(t, 4500, got.Items[1].Price)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("GetByID returns nil for an unknown id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := repo.GetByID(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
