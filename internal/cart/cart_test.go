package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tee() ProductInfo {
	return ProductInfo{ID: 1, Name: "Oversized Tee", Price: 500, ImageURL: "/uploads/tee.png"}
}

func hoodie() ProductInfo {
	return ProductInfo{ID: 2, Name: "Heavy Hoodie", Price: 1200, ImageURL: "/uploads/hoodie.png"}
}

func TestCart_AddItem_SameProductAndSizeMerges(t *testing.T) {
	c := New()

	c.AddItem(tee(), "M")
	c.AddItem(tee(), "M")

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
}

func TestCart_AddItem_DifferentSizeIsNewLine(t *testing.T) {
	c := New()

	c.AddItem(tee(), "M")
	c.AddItem(tee(), "L")

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "M", lines[0].Size)
	assert.Equal(t, "L", lines[1].Size)
}

func TestCart_AddItem_KeepsInsertionOrderAndSnapshot(t *testing.T) {
	c := New()

	c.AddItem(hoodie(), "L")
	c.AddItem(tee(), "M")

	lines := c.Lines()
	assert.Equal(t, int64(2), lines[0].ProductID)
	assert.Equal(t, int64(1), lines[1].ProductID)
	assert.Equal(t, "Heavy Hoodie", lines[0].Name)
	assert.Equal(t, int64(1200), lines[0].Price)
}

func TestCart_RemoveItem(t *testing.T) {
	c := New()

	c.AddItem(tee(), "M")
	c.AddItem(hoodie(), "L")
	c.RemoveItem(1, "M")

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ProductID)
}

func TestCart_RemoveItem_AbsentIsNoop(t *testing.T) {
	c := New()
	c.AddItem(tee(), "M")

	c.RemoveItem(99, "M")
	c.RemoveItem(1, "XL")

	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(500), c.Total())
}

func TestCart_SetQuantity(t *testing.T) {
	c := New()
	c.AddItem(tee(), "M")

	c.SetQuantity(1, "M", 5)

	lines := c.Lines()
	assert.Equal(t, int64(5), lines[0].Quantity)
	assert.Equal(t, int64(2500), c.Total())
}

func TestCart_SetQuantity_ZeroBehavesAsRemove(t *testing.T) {
	c := New()
	c.AddItem(tee(), "M")

	c.SetQuantity(1, "M", 0)

	assert.True(t, c.Empty())
}

func TestCart_SetQuantity_NegativeBehavesAsRemove(t *testing.T) {
	c := New()
	c.AddItem(tee(), "M")

	c.SetQuantity(1, "M", -3)

	assert.True(t, c.Empty())
}

func TestCart_Total_RecomputedAfterMutation(t *testing.T) {
	c := New()

	c.AddItem(tee(), "M")
	assert.Equal(t, int64(500), c.Total())

	c.AddItem(tee(), "M")
	assert.Equal(t, int64(1000), c.Total())

	c.SetQuantity(1, "M", 3)
	assert.Equal(t, int64(1500), c.Total())

	c.RemoveItem(1, "M")
	assert.Equal(t, int64(0), c.Total())
}

func TestCart_ItemCount_SumsQuantities(t *testing.T) {
	c := New()

	c.AddItem(tee(), "M")
	c.SetQuantity(1, "M", 3)

	//1明細でも数量3ならカウントは3
	assert.Equal(t, int64(3), c.ItemCount())
	assert.Len(t, c.Lines(), 1)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.AddItem(tee(), "M")
	c.AddItem(hoodie(), "L")

	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, int64(0), c.Total())
	assert.Equal(t, int64(0), c.ItemCount())
}

func TestCart_Scenario_TwoProducts(t *testing.T) {
	c := New()

	c.AddItem(tee(), "M")
	c.AddItem(tee(), "M")
	c.AddItem(hoodie(), "L")

	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, int64(500*2+1200*1), c.Total())
	assert.Equal(t, int64(3), c.ItemCount())
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(tee(), "M")

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, int64(1), c.Lines()[0].Quantity)
}
