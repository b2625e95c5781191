package codec_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/internal/codec"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

func placeFixture(id, name string) domain.PlaceItem {
	return domain.PlaceItem{
		ID:            id,
		Name:          name,
		Address:       "Champ de Mars, Paris",
		Day:           "Day 1",
		Category:      "Attraction",
		Duration:      2.5,
		PreferredTime: "09:30",
		Cost:          decimal.RequireFromString("30.00"),
		Description:   "Go early",
		Priority:      domain.PriorityHigh,
	}
}

func TestEncodeDecodeList_RoundTrip(t *testing.T) {
	in := []domain.PlaceItem{
		placeFixture("a", "Eiffel Tower"),
		placeFixture("b", "Louvre"),
		placeFixture("c", "Orsay"),
	}

	blob, err := codec.EncodeList(in)
	require.NoError(t, err)

	out, skipped := codec.DecodeList[domain.PlaceItem](blob)

	assert.Zero(t, skipped)
	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].Duration, out[i].Duration)
		assert.True(t, in[i].Cost.Equal(out[i].Cost), "cost mismatch at %d", i)
		assert.Equal(t, in[i].Priority, out[i].Priority)
	}
}

func TestEncodeList_EmptyIsArray(t *testing.T) {
	blob, err := codec.EncodeList[domain.TaskItem](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", blob)

	out, skipped := codec.DecodeList[domain.TaskItem](blob)
	assert.Zero(t, skipped)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeList_BlankBlob(t *testing.T) {
	out, skipped := codec.DecodeList[domain.Trip]("   ")

	assert.Zero(t, skipped)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeList_SkipsMalformedElements(t *testing.T) {
	blob := `[
		{"id":"1","title":"Museum","amount":"12.50","category":"Culture","date":"2025-06-01"},
		{"id":"2","title":"Broken","amount":"twelve"},
		null,
		{"id":"3","title":"Taxi","amount":20,"category":"Transport","date":"2025-06-02"}
	]`

	out, skipped := codec.DecodeList[domain.ExpenseItem](blob)

	assert.Equal(t, 2, skipped)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
	assert.True(t, out[1].Amount.Equal(decimal.NewFromInt(20)))
}

func TestDecodeList_NotAnArray(t *testing.T) {
	out, skipped := codec.DecodeList[domain.Trip]("Paris|France|01/06|10/06|1000|notes")

	assert.Equal(t, 1, skipped)
	assert.Empty(t, out)
}

func TestIsJSONList(t *testing.T) {
	assert.True(t, codec.IsJSONList(`[{"id":"1"}]`))
	assert.True(t, codec.IsJSONList("  \n[]"))
	assert.True(t, codec.IsJSONList(""))
	assert.False(t, codec.IsJSONList("p1|Louvre|Rue de Rivoli|Day 1|Museum|3|10:00|17|art"))
	assert.False(t, codec.IsJSONList(`{"id":"1"}`))
}

func TestDecodeList_LegacyEventShapeNormalized(t *testing.T) {
	// Shape written by the first calendar screen: single time plus type,
	// epoch-millis createdAt and isCompleted.
	blob := `[{"id":"e1","title":"Dinner","description":"","date":"01/06/2025",
		"time":"20:00","location":"Le Marais","type":"Restaurante","isCompleted":true,
		"createdAt":1717200000000}]`

	out, skipped := codec.DecodeList[domain.EventItem](blob)

	assert.Zero(t, skipped)
	require.Len(t, out, 1)
	assert.Equal(t, "20:00", out[0].StartTime)
	assert.Equal(t, "Restaurante", out[0].Category)
	assert.True(t, out[0].Completed)
	assert.Equal(t, int64(1717200000000), out[0].CreatedAt.UnixMilli())
}

func TestEncodeDecode_Singleton(t *testing.T) {
	in := domain.BudgetItem{
		TotalBudget: decimal.RequireFromString("2500"),
		Categories: map[string]decimal.Decimal{
			"Food": decimal.RequireFromString("800"),
		},
		Notes: "flexible",
	}

	blob, err := codec.Encode(in)
	require.NoError(t, err)
	out, err := codec.Decode[domain.BudgetItem](blob)
	require.NoError(t, err)

	assert.True(t, in.TotalBudget.Equal(out.TotalBudget))
	assert.True(t, in.Categories["Food"].Equal(out.Categories["Food"]))
	assert.Equal(t, "flexible", out.Notes)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := codec.Decode[domain.BudgetItem]("{")
	assert.Error(t, err)
}
