package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `25`, 25},
		{"decimal", `19.5`, 19.5},
		{"numeric string", `"25"`, 25},
		{"dollar prefix", `"$25"`, 25},
		{"currency suffix", `"25 USD"`, 25},
		{"embedded decimal", `"about 12.50 dollars"`, 12.50},
		{"null", `null`, 0},
		{"garbage", `"free!"`, 0},
		{"empty string", `""`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			assert.Equal(t, tc.want, float64(p))
		})
	}
}

func TestPriceNeverFailsSurroundingUnmarshal(t *testing.T) {
	var a Activity
	err := json.Unmarshal([]byte(`{"title":"Museum","price":{"amount":25}}`), &a)
	require.NoError(t, err)
	assert.Equal(t, "Museum", a.Title)
	assert.Equal(t, Price(0), a.Price)
}

func TestItineraryItemDecodeActivity(t *testing.T) {
	raw := `{"type":"activity","day":1,"data":{"time":"09:00 AM","title":"Senso-ji","location":"Asakusa","category":"activity","price":"$0","rating":4.7}}`
	var it ItineraryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.Equal(t, ItemActivity, it.Type)
	assert.Equal(t, 1, it.Day)
	require.NotNil(t, it.Activity)
	assert.Nil(t, it.Meal)
	assert.Nil(t, it.Transport)
	assert.Equal(t, "Senso-ji", it.Activity.Title)
	assert.True(t, it.Valid())
}

func TestItineraryItemDecodeMeal(t *testing.T) {
	raw := `{"type":"meal","day":2,"data":{"mealType":"dinner","place":"Ichiran","location":"Shibuya","price":15}}`
	var it ItineraryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.Equal(t, ItemMeal, it.Type)
	require.NotNil(t, it.Meal)
	assert.Equal(t, MealDinner, it.Meal.MealType)
	assert.Equal(t, Price(15), it.Meal.Price)
	assert.True(t, it.Valid())
}

func TestItineraryItemDecodeTransport(t *testing.T) {
	raw := `{"type":"transportOptions","day":3,"data":{"from":"Tokyo","to":"Kyoto","options":[{"type":"train","duration":"2h 15m","price":120}]}}`
	var it ItineraryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.Equal(t, ItemTransport, it.Type)
	require.NotNil(t, it.Transport)
	require.Len(t, it.Transport.Options, 1)
	assert.Equal(t, ModeTrain, it.Transport.Options[0].Type)
	assert.True(t, it.Valid())
}

func TestItineraryItemUnknownTypeHasNoVariant(t *testing.T) {
	raw := `{"type":"lodging","day":1,"data":{"title":"Hotel"}}`
	var it ItineraryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.False(t, it.Valid())
	assert.Nil(t, it.Activity)
	assert.Nil(t, it.Meal)
	assert.Nil(t, it.Transport)
}

func TestItineraryItemMalformedDataHasNoVariant(t *testing.T) {
	raw := `{"type":"meal","day":1,"data":"lunch at noon"}`
	var it ItineraryItem
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.Equal(t, ItemMeal, it.Type)
	assert.False(t, it.Valid())
}

func TestItineraryItemRoundTrip(t *testing.T) {
	in := ItineraryItem{
		Type: ItemActivity,
		Day:  2,
		Activity: &Activity{
			Time: "10:00 AM", Title: "Fushimi Inari", Location: "Kyoto",
			Category: CategoryActivity, Price: 0, Rating: 4.8,
		},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out ItineraryItem
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
