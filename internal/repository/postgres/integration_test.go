//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/thevanityindia/vanity-server/internal/model"
	repo "github.com/thevanityindia/vanity-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "vanity_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/vanity_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func createUser(t *testing.T, conn *repo.Connection, email string) model.User {
	t.Helper()
	now := time.Now()
	user, err := repo.NewUserRepository(conn).Create(context.Background(), model.User{
		ID:        uuid.New(),
		Email:     email,
		Role:      model.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return user
}

func createProduct(t *testing.T, conn *repo.Connection, name string, price float64) model.Product {
	t.Helper()
	product, err := repo.NewProductRepository(conn).Create(context.Background(), model.Product{
		ID:        uuid.New(),
		Brand:     "Lakme",
		Name:      name,
		Price:     price,
		Category:  "makeup",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return product
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		user := createUser(t, conn, "user@example.com")

		byEmail, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, byEmail.ID)

		byEmail.Name = "Priya"
		updated, err := ur.Update(ctx, byEmail)
		require.NoError(t, err)
		require.Equal(t, "Priya", updated.Name)

		_, err = ur.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("passcode_repository", func(t *testing.T) {
		pr := repo.NewPasscodeRepository(conn)
		passcode := model.Passcode{
			Email:     "otp@example.com",
			Code:      "123456",
			ExpiresAt: time.Now().Add(10 * time.Minute),
			CreatedAt: time.Now(),
		}
		require.NoError(t, pr.Upsert(ctx, passcode))

		// Re-requesting replaces the code and resets consumption.
		passcode.Code = "654321"
		require.NoError(t, pr.Upsert(ctx, passcode))

		stored, err := pr.GetByEmail(ctx, "otp@example.com")
		require.NoError(t, err)
		require.Equal(t, "654321", stored.Code)
		require.False(t, stored.Consumed)

		require.NoError(t, pr.Consume(ctx, "otp@example.com"))
		stored, err = pr.GetByEmail(ctx, "otp@example.com")
		require.NoError(t, err)
		require.True(t, stored.Consumed)
	})

	t.Run("cart_repository", func(t *testing.T) {
		cr := repo.NewCartRepository(conn)
		user := createUser(t, conn, "cart@example.com")
		product := createProduct(t, conn, "Kajal", 249)

		cart, err := cr.AddLine(ctx, user.ID, model.CartLine{ID: uuid.New(), ProductID: product.ID, Quantity: 1})
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)

		// Same product increments the existing line.
		cart, err = cr.AddLine(ctx, user.ID, model.CartLine{ID: uuid.New(), ProductID: product.ID, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, 3, cart.Lines[0].Quantity)

		cart, err = cr.UpdateLineQuantity(ctx, user.ID, cart.Lines[0].ID, 5)
		require.NoError(t, err)
		require.Equal(t, 5, cart.Lines[0].Quantity)

		// Removing an unknown line leaves the cart unchanged.
		cart, err = cr.RemoveLine(ctx, user.ID, uuid.New())
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)

		require.NoError(t, cr.Clear(ctx, user.ID))
		cart, err = cr.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, cart.Lines)
	})

	t.Run("wishlist_repository", func(t *testing.T) {
		wr := repo.NewWishlistRepository(conn)
		user := createUser(t, conn, "wish@example.com")
		product := createProduct(t, conn, "Serum", 999)

		wishlist, err := wr.Add(ctx, user.ID, product.ID)
		require.NoError(t, err)
		require.Len(t, wishlist.Entries, 1)

		// Duplicate add is a no-op.
		wishlist, err = wr.Add(ctx, user.ID, product.ID)
		require.NoError(t, err)
		require.Len(t, wishlist.Entries, 1)

		wishlist, err = wr.Remove(ctx, user.ID, product.ID)
		require.NoError(t, err)
		require.Empty(t, wishlist.Entries)
	})

	t.Run("address_and_order_repositories", func(t *testing.T) {
		ar := repo.NewAddressRepository(conn)
		or := repo.NewOrderRepository(conn)
		user := createUser(t, conn, "order@example.com")
		product := createProduct(t, conn, "Foundation", 1299)

		address, err := ar.Create(ctx, model.Address{
			ID:        uuid.New(),
			UserID:    user.ID,
			Name:      "Priya Sharma",
			Phone:     "9876543210",
			Line1:     "14 MG Road",
			City:      "Bengaluru",
			State:     "Karnataka",
			Pincode:   "560001",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		order, err := or.Create(ctx, model.Order{
			ID:     uuid.New(),
			UserID: user.ID,
			Items: []model.OrderItem{
				{ProductID: product.ID, Brand: product.Brand, Name: product.Name, UnitPrice: product.Price, Quantity: 2},
			},
			Address:       address,
			PaymentMethod: model.PaymentMethodCOD,
			Total:         2598,
			Status:        model.OrderStatusPlaced,
			CreatedAt:     time.Now(),
		})
		require.NoError(t, err)

		fetched, err := or.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Items, 1)
		require.Equal(t, 2598.0, fetched.Total)

		orders, err := or.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		require.NoError(t, ar.Delete(ctx, address.ID))
		_, err = ar.GetByID(ctx, address.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
