package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/order"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

func milkTeaResolver() *mockResolver {
	return &mockResolver{
		products: map[string]*catalog.ProductOptions{
			"p1": {
				Variants: []catalog.Variant{
					{ID: "v1", Name: "Size M", Price: 30000, IsDefault: true},
					{ID: "v2", Name: "Size L", Price: 38000},
				},
				OptionGroups: []catalog.OptionGroup{
					{
						ID:     "g-sugar",
						Name:   "Đường",
						UIType: catalog.UITypeSingle,
						Options: []catalog.Option{
							{ID: "s50", Name: "50% đường", PriceDelta: 0},
							{ID: "s100", Name: "100% đường", PriceDelta: 0},
						},
					},
					{
						ID:     "g-topping",
						Name:   "Topping",
						UIType: catalog.UITypeMulti,
						Options: []catalog.Option{
							{ID: "pearl", Name: "Trân châu", PriceDelta: 7000},
							{ID: "pudding", Name: "Pudding", PriceDelta: 9000},
						},
					},
				},
			},
			"p2": {
				Variants: []catalog.Variant{
					{ID: "v9", Name: "Size S", Price: 22000},
				},
			},
		},
	}
}

func TestService_BuildSubmission(t *testing.T) {
	resolver := milkTeaResolver()
	creator := &mockOrderCreator{}
	service := NewService(resolver, creator, "POS")

	lines := []cart.Line{
		{
			ID:      "cart-1-aaa",
			Product: catalog.Product{ID: "p1", Name: "Trà sữa", ImageURL: "https://cdn/p1.jpg"},
			Selection: pricing.Selection{
				VariantID: "v2",
				Options: map[string]pricing.OptionChoice{
					"g-sugar":   pricing.SingleChoice("s50"),
					"g-topping": pricing.MultiChoice("pearl", "pudding"),
				},
				Quantity: 1,
			},
		},
		{
			ID:        "cart-2-bbb",
			Product:   catalog.Product{ID: "p2", Name: "Trà đào"},
			Selection: pricing.Selection{VariantID: "v9", Quantity: 2},
		},
	}

	submission, err := service.BuildSubmission(context.Background(), lines, &Request{
		PaymentMethod: order.PaymentMethodCash,
		Note:          "ít đá",
	})
	require.NoError(t, err)

	require.Len(t, submission.Items, 2)

	first := submission.Items[0]
	assert.Equal(t, "p1", first.ProductID)
	assert.Equal(t, "Trà sữa", first.ProductName)
	assert.Equal(t, "https://cdn/p1.jpg", first.ProductImage)
	assert.Equal(t, "v2", first.VariantID)
	assert.Equal(t, "Size L", first.VariantName)
	assert.Equal(t, int64(38000), first.BasePrice)
	assert.Equal(t, int64(38000+7000+9000), first.LineTotal)
	require.Len(t, first.Options, 3)
	assert.Equal(t, "g-sugar", first.Options[0].GroupID)
	assert.Equal(t, "50% đường", first.Options[0].OptionName)
	assert.Equal(t, int64(7000), first.Options[1].PriceDelta)

	second := submission.Items[1]
	assert.Equal(t, int64(44000), second.LineTotal)
	// A line without selected options still carries an empty array
	require.NotNil(t, second.Options)
	assert.Empty(t, second.Options)

	assert.Equal(t, int64(54000+44000), submission.Subtotal)
	assert.Equal(t, int64(0), submission.Discount)
	assert.Equal(t, submission.Subtotal, submission.Total)
	assert.Equal(t, order.PaymentMethodCash, submission.PaymentMethod)
	assert.Equal(t, "POS", submission.Channel)
	assert.Equal(t, "ít đá", submission.Note)
}

func TestService_BuildSubmissionEmptyLines(t *testing.T) {
	service := NewService(milkTeaResolver(), &mockOrderCreator{}, "POS")

	submission, err := service.BuildSubmission(context.Background(), nil, &Request{
		PaymentMethod: order.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.NotNil(t, submission.Items)
	assert.Empty(t, submission.Items)
	assert.Equal(t, int64(0), submission.Subtotal)
	assert.Equal(t, int64(0), submission.Total)
}

func TestService_BuildSubmissionFailsOnUnresolvedProduct(t *testing.T) {
	service := NewService(milkTeaResolver(), &mockOrderCreator{}, "POS")

	lines := []cart.Line{
		{
			ID:        "cart-1-aaa",
			Product:   catalog.Product{ID: "p2", Name: "Trà đào"},
			Selection: pricing.Selection{VariantID: "v9", Quantity: 1},
		},
		{
			ID:        "cart-2-bbb",
			Product:   catalog.Product{ID: "ghost"},
			Selection: pricing.Selection{Quantity: 1},
		},
	}

	_, err := service.BuildSubmission(context.Background(), lines, &Request{
		PaymentMethod: order.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestService_PlaceOrderClearsCart(t *testing.T) {
	resolver := milkTeaResolver()
	creator := &mockOrderCreator{}
	service := NewService(resolver, creator, "POS")

	store := cart.NewStore(resolver)
	_, err := store.Add(catalog.Product{ID: "p2", Name: "Trà đào"}, pricing.Selection{VariantID: "v9", Quantity: 2})
	require.NoError(t, err)

	created, err := service.PlaceOrder(context.Background(), store, &Request{
		PaymentMethod: order.PaymentMethodTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, "DH-0001", created.OrderCode)
	assert.Empty(t, store.Lines())

	require.Len(t, creator.submissions, 1)
	assert.Equal(t, int64(44000), creator.submissions[0].Total)
	assert.Equal(t, order.PaymentMethodTransfer, creator.submissions[0].PaymentMethod)
}

func TestService_PlaceOrderEmptyCart(t *testing.T) {
	resolver := milkTeaResolver()
	creator := &mockOrderCreator{}
	service := NewService(resolver, creator, "POS")

	_, err := service.PlaceOrder(context.Background(), cart.NewStore(resolver), &Request{
		PaymentMethod: order.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Empty(t, creator.submissions)
}

func TestService_PlaceOrderKeepsCartOnCreateFailure(t *testing.T) {
	resolver := milkTeaResolver()
	creator := &mockOrderCreator{err: errBackendDown}
	service := NewService(resolver, creator, "POS")

	store := cart.NewStore(resolver)
	_, err := store.Add(catalog.Product{ID: "p2"}, pricing.Selection{VariantID: "v9", Quantity: 1})
	require.NoError(t, err)

	_, err = service.PlaceOrder(context.Background(), store, &Request{
		PaymentMethod: order.PaymentMethodCash,
	})
	require.ErrorIs(t, err, errBackendDown)

	// The line survives for a retry
	assert.Len(t, store.Lines(), 1)
}

func TestService_PlaceOrderKeepsCartOnUnresolvedProduct(t *testing.T) {
	resolver := milkTeaResolver()
	creator := &mockOrderCreator{}
	service := NewService(resolver, creator, "POS")

	store := cart.NewStore(resolver)
	_, err := store.Add(catalog.Product{ID: "ghost"}, pricing.Selection{Quantity: 1})
	require.NoError(t, err)

	_, err = service.PlaceOrder(context.Background(), store, &Request{
		PaymentMethod: order.PaymentMethodCash,
	})
	require.ErrorIs(t, err, catalog.ErrProductNotFound)

	assert.Len(t, store.Lines(), 1)
	assert.Empty(t, creator.submissions)
}
