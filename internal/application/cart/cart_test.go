package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kajuKatli = Item{Name: "Kaju Katli", Gram: "250g", Barcode: "8901111", BarcodeNumber: "100001", UnitPrice: 25000}
	mysorePak = Item{Name: "Mysore Pak", Gram: "500g", Barcode: "8902222", BarcodeNumber: "100002", UnitPrice: 24000}
)

func TestAddNewItemStartsAtQuantityOne(t *testing.T) {
	c := New()

	line := c.Add(kajuKatli)

	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(25000), c.SubTotal())
}

func TestRepeatScanMergesIntoExistingLine(t *testing.T) {
	c := New()

	c.Add(kajuKatli)
	c.Add(mysorePak)
	line := c.Add(kajuKatli)

	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2, c.Len(), "repeat scan must not append a new line")
	assert.Equal(t, int64(2*25000+24000), c.SubTotal())
}

func TestLinesKeepFirstScannedOrder(t *testing.T) {
	c := New()

	c.Add(mysorePak)
	c.Add(kajuKatli)
	c.Add(mysorePak) // merging must not move the line

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Mysore Pak", lines[0].Name)
	assert.Equal(t, "Kaju Katli", lines[1].Name)
}

func TestDifferentGramIsADifferentLine(t *testing.T) {
	c := New()

	half := kajuKatli
	half.Gram = "500g"
	half.Barcode = "8903333"

	c.Add(kajuKatli)
	c.Add(half)

	assert.Equal(t, 2, c.Len())
}

func TestSameNameGramDifferentBarcodeStaysSeparate(t *testing.T) {
	c := New()

	relabeled := kajuKatli
	relabeled.Barcode = "8909999"

	c.Add(kajuKatli)
	c.Add(relabeled)

	assert.Equal(t, 2, c.Len())
}

func TestEmptyBarcodeFallsBackToNameAndGram(t *testing.T) {
	c := New()

	loose := Item{Name: "Ladoo", Gram: "100g", UnitPrice: 2000}

	c.Add(loose)
	c.Add(loose)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestAddQuantity(t *testing.T) {
	c := New()

	c.AddQuantity(kajuKatli, 3)
	line := c.AddQuantity(kajuKatli, 2)

	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, int64(5*25000), c.SubTotal())
}

func TestAddQuantityIgnoresNonPositive(t *testing.T) {
	c := New()

	c.AddQuantity(kajuKatli, 0)
	assert.True(t, c.IsEmpty())

	c.Add(kajuKatli)
	c.AddQuantity(kajuKatli, -5)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestSubTotalRecomputedFromLines(t *testing.T) {
	c := New()

	for i := 0; i < 4; i++ {
		c.Add(kajuKatli)
	}
	c.AddQuantity(mysorePak, 2)

	assert.Equal(t, int64(4*25000+2*24000), c.SubTotal())
	assert.Equal(t, 6, c.TotalQuantity())
}

func TestNameWhitespaceIsNormalized(t *testing.T) {
	c := New()

	padded := kajuKatli
	padded.Name = "  Kaju Katli "

	c.Add(kajuKatli)
	c.Add(padded)

	assert.Equal(t, 1, c.Len())
}

func TestLinesReturnsACopy(t *testing.T) {
	c := New()
	c.Add(kajuKatli)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestClearEmptiesEverything(t *testing.T) {
	c := New()
	c.Add(kajuKatli)
	c.Add(mysorePak)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.SubTotal())

	// identity index must reset too
	c.Add(kajuKatli)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
