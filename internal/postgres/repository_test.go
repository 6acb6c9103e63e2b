package postgres_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"

	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/port"
	"github.com/nkaewam/storefront/internal/postgres"
)

type repositorySuite struct {
	suite.Suite

	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	products  port.ProductRepository
	cart      port.CartRepository
}

// entry point to run the tests in the suite
func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres repository tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	suite.Run(t, new(repositorySuite))
}

// before all tests in the suite
func (suite *repositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	suite.pool, err = postgres.Connect(ctx, connStr, 4)
	suite.Require().NoError(err)

	applied, err := postgres.Migrate(ctx, suite.pool)
	suite.Require().NoError(err)
	suite.Equal([]string{
		"migrations/001_catalog.up.sql",
		"migrations/002_cart_items.up.sql",
	}, applied)

	suite.products = postgres.NewProductRepository(suite.pool)
	suite.cart = postgres.NewCartRepository(suite.pool)
}

// after all tests in the suite
func (suite *repositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

// before each test
func (suite *repositorySuite) SetupTest() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE products, cart_items")
	suite.Require().NoError(err)
}

func (suite *repositorySuite) TestMigrateIsRepeatable() {
	_, err := postgres.Migrate(suite.T().Context(), suite.pool)
	suite.NoError(err)
}

func (suite *repositorySuite) TestProductRoundTrip() {
	ctx := suite.T().Context()

	want := suite.randomProduct("")
	suite.Require().NoError(suite.products.Save(ctx, want))

	got, err := suite.products.FindByID(ctx, want.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got)

	if diff := cmp.Diff(productView(want), productView(got)); diff != "" {
		suite.Failf("product mismatch", "(-want +got):\n%s", diff)
	}
}

func (suite *repositorySuite) TestProductPriceKeepsPrecision() {
	ctx := suite.T().Context()

	p, err := domain.ReconstituteProduct("precise", domain.ProductAttrs{
		Name:     "Precise",
		Price:    decimal.RequireFromString("1234567.891234"),
		Currency: currency.EUR,
		Stock:    1,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.Save(ctx, p))

	got, err := suite.products.FindByID(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.Price().Equals(p.Price()), "got %s", got.Price())
}

func (suite *repositorySuite) TestProductStockBeyondInt32() {
	ctx := suite.T().Context()

	p, err := domain.ReconstituteProduct("warehouse", domain.ProductAttrs{
		Name:  "Warehouse",
		Price: decimal.RequireFromString("1"),
		Stock: 3_000_000_000,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.Save(ctx, p))

	got, err := suite.products.FindByID(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(3_000_000_000, got.Stock().Quantity())
}

func (suite *repositorySuite) TestProductFindMissing() {
	id, err := domain.NewProductID("missing")
	suite.Require().NoError(err)

	got, err := suite.products.FindByID(suite.T().Context(), id)
	suite.NoError(err)
	suite.Nil(got)
}

func (suite *repositorySuite) TestProductUpsertKeepsOrder() {
	ctx := suite.T().Context()

	first := suite.randomProduct("first")
	second := suite.randomProduct("second")
	suite.Require().NoError(suite.products.Save(ctx, first))
	suite.Require().NoError(suite.products.Save(ctx, second))

	attrs := first.Attrs()
	attrs.Stock = 42
	updated, err := domain.ReconstituteProduct("first", attrs)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.Save(ctx, updated))

	all, err := suite.products.FindAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("first", all[0].ID().Value())
	suite.Equal(42, all[0].Stock().Quantity())
	suite.Equal("second", all[1].ID().Value())
}

func (suite *repositorySuite) TestProductDelete() {
	ctx := suite.T().Context()

	p := suite.randomProduct("")
	suite.Require().NoError(suite.products.Save(ctx, p))
	suite.Require().NoError(suite.products.Delete(ctx, p.ID()))
	suite.Require().NoError(suite.products.Delete(ctx, p.ID()), "deleting twice is not an error")

	all, err := suite.products.FindAll(ctx)
	suite.Require().NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func (suite *repositorySuite) TestCartLifecycle() {
	ctx := suite.T().Context()

	item, err := domain.NewCartItem("widget-1", 3)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cart.Save(ctx, item))

	replaced, err := domain.NewCartItem("widget-1", 7)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cart.Save(ctx, replaced))

	got, err := suite.cart.FindByProductID(ctx, item.ProductID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(7, got.Quantity().Value())

	all, err := suite.cart.FindAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)

	suite.Require().NoError(suite.cart.DeleteByProductID(ctx, item.ProductID()))
	missing, err := suite.cart.FindByProductID(ctx, item.ProductID())
	suite.Require().NoError(err)
	suite.Nil(missing)
}

func (suite *repositorySuite) TestCartQuantityCheckConstraint() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"INSERT INTO cart_items (product_id, quantity) VALUES ('x', 1000)")
	suite.Error(err)
}

func (suite *repositorySuite) randomProduct(id string) *domain.Product {
	p, err := domain.ReconstituteProduct(id, domain.ProductAttrs{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency:    randomCurrency(),
		Stock:       gofakeit.IntRange(0, 1000),
	})
	suite.Require().NoError(err)
	return p
}

func randomCurrency() currency.Unit {
	for {
		// tag is not always a recognized currency
		unit, err := currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			return unit
		}
	}
}

// productFields is a product flattened into comparable fields
type productFields struct {
	ID, Name, Description, Price, Currency string
	Stock                                  int
}

func productView(p *domain.Product) productFields {
	return productFields{
		ID:          p.ID().Value(),
		Name:        p.Name().Value(),
		Description: p.Description().Value(),
		Price:       p.Price().Amount().StringFixed(2),
		Currency:    p.Price().Currency().String(),
		Stock:       p.Stock().Quantity(),
	}
}
