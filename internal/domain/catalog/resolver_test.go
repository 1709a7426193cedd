package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Resolve(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/p1/with-options", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"variants": [
					{"_id": "v1", "name": "Size M", "price": 30000, "isDefault": true},
					{"_id": "v2", "name": "Size L", "price": 38000, "isDefault": false}
				],
				"optionGroups": [
					{
						"_id": "g1",
						"name": "Topping",
						"uiType": "multi",
						"required": false,
						"options": [
							{"_id": "c", "name": "Trân châu", "priceDelta": 10000, "isDefault": false, "sortOrder": 1}
						]
					}
				]
			}
		}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 5*time.Second)
	resolved, err := client.Resolve(context.Background(), "p1")
	require.NoError(t, err)

	require.Len(t, resolved.Variants, 2)
	assert.Equal(t, int64(30000), resolved.Variants[0].Price)
	require.Len(t, resolved.OptionGroups, 1)
	assert.Equal(t, UITypeMulti, resolved.OptionGroups[0].UIType)
	assert.Equal(t, int64(10000), resolved.OptionGroups[0].Options[0].PriceDelta)
}

func TestClient_ResolveNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 5*time.Second)
	_, err := client.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestClient_ResolveUnsuccessfulPayload(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 5*time.Second)
	_, err := client.Resolve(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ResolveMalformedPayload(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 5*time.Second)
	_, err := client.Resolve(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ResolveTransportFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // Refuse connections

	client := NewClient(backend.URL, time.Second)
	_, err := client.Resolve(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
	assert.NotErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ListProducts(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"_id": "p1", "name": "Trà sữa", "category": "Trà sữa", "description": "", "imageUrl": "https://cdn/p1.jpg"},
				{"_id": "p2", "name": "Cà phê sữa", "category": "Cà phê"},
				{"_id": "p3", "name": "Trà đào", "category": "Trà sữa"}
			]
		}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 5*time.Second)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 3)
	assert.Equal(t, "Trà sữa", products[0].Name)
	assert.Equal(t, "https://cdn/p1.jpg", products[0].ImageURL)

	// Categories keep first-seen order without duplicates
	assert.Equal(t, []string{"Trà sữa", "Cà phê"}, Categories(products))
}

func TestProductOptions_DefaultVariant(t *testing.T) {
	flagged := &ProductOptions{Variants: []Variant{
		{ID: "v1", Name: "Size M"},
		{ID: "v2", Name: "Size L", IsDefault: true},
	}}
	assert.Equal(t, "v2", flagged.DefaultVariant().ID)

	unflagged := &ProductOptions{Variants: []Variant{
		{ID: "v1", Name: "Size M"},
		{ID: "v2", Name: "Size L"},
	}}
	assert.Equal(t, "v1", unflagged.DefaultVariant().ID)

	empty := &ProductOptions{}
	assert.Nil(t, empty.DefaultVariant())
}
