package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000/warehouse/internal/domain/models"
)

func supply(id int, name string, quantity int) models.ArticleSupply {
	return models.ArticleSupply{
		Article:  models.Article{ID: id, Name: name},
		Quantity: quantity,
	}
}

func TestStockLedgerUpsertReadYourWrite(t *testing.T) {
	ledger := NewStockLedger(nil)

	require.NoError(t, ledger.Upsert([]models.ArticleSupply{
		supply(1, "leg", 4),
		supply(2, "screw", 10),
	}))

	got, ok := ledger.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, supply(1, "leg", 4), got)

	got, ok = ledger.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 10, got.Quantity)
}

func TestStockLedgerUpsertReplacesNameAndQuantity(t *testing.T) {
	ledger := NewStockLedger(nil)

	require.NoError(t, ledger.Upsert([]models.ArticleSupply{supply(1, "leg", 4)}))
	require.NoError(t, ledger.Upsert([]models.ArticleSupply{supply(1, "table leg", 7)}))

	got, ok := ledger.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "table leg", got.Article.Name)
	assert.Equal(t, 7, got.Quantity)
}

func TestStockLedgerUpsertRejectsWholeBatchOnInvalidQuantity(t *testing.T) {
	ledger := NewStockLedger(nil)

	for _, bad := range []int{0, -3} {
		err := ledger.Upsert([]models.ArticleSupply{
			supply(1, "leg", 4),
			supply(2, "screw", bad),
		})
		require.ErrorIs(t, err, models.ErrInvalidQuantity)

		_, ok := ledger.Lookup(1)
		assert.False(t, ok, "valid entry of a rejected batch must not be applied")
	}
}

func TestStockLedgerWithdrawDecrementsEveryArticle(t *testing.T) {
	ledger := NewStockLedger(nil)
	require.NoError(t, ledger.Upsert([]models.ArticleSupply{
		supply(1, "leg", 4),
		supply(2, "screw", 10),
	}))

	ok := ledger.Withdraw([]models.ArticleDemand{
		{ArticleID: 1, Quantity: 4},
		{ArticleID: 2, Quantity: 8},
	})
	require.True(t, ok)

	legs, _ := ledger.Lookup(1)
	screws, _ := ledger.Lookup(2)
	assert.Equal(t, 0, legs.Quantity)
	assert.Equal(t, 2, screws.Quantity)
}

func TestStockLedgerWithdrawAllOrNothing(t *testing.T) {
	ledger := NewStockLedger(nil)
	require.NoError(t, ledger.Upsert([]models.ArticleSupply{
		supply(1, "leg", 4),
		supply(2, "screw", 1),
	}))

	ok := ledger.Withdraw([]models.ArticleDemand{
		{ArticleID: 1, Quantity: 2},
		{ArticleID: 2, Quantity: 5},
	})
	require.False(t, ok)

	legs, _ := ledger.Lookup(1)
	screws, _ := ledger.Lookup(2)
	assert.Equal(t, 4, legs.Quantity, "failed withdrawal must not touch any article")
	assert.Equal(t, 1, screws.Quantity)
}

func TestStockLedgerWithdrawMissingArticleCountsAsZero(t *testing.T) {
	ledger := NewStockLedger(nil)
	require.NoError(t, ledger.Upsert([]models.ArticleSupply{supply(1, "leg", 4)}))

	ok := ledger.Withdraw([]models.ArticleDemand{
		{ArticleID: 1, Quantity: 1},
		{ArticleID: 99, Quantity: 1},
	})
	require.False(t, ok)

	legs, _ := ledger.Lookup(1)
	assert.Equal(t, 4, legs.Quantity)
}

func TestStockLedgerWithdrawSumsDuplicateArticleIDs(t *testing.T) {
	ledger := NewStockLedger(nil)
	require.NoError(t, ledger.Upsert([]models.ArticleSupply{supply(1, "leg", 3)}))

	// 2+2 exceeds stock of 3 even though each line alone would pass.
	ok := ledger.Withdraw([]models.ArticleDemand{
		{ArticleID: 1, Quantity: 2},
		{ArticleID: 1, Quantity: 2},
	})
	require.False(t, ok)

	legs, _ := ledger.Lookup(1)
	assert.Equal(t, 3, legs.Quantity)

	ok = ledger.Withdraw([]models.ArticleDemand{
		{ArticleID: 1, Quantity: 1},
		{ArticleID: 1, Quantity: 2},
	})
	require.True(t, ok)

	legs, _ = ledger.Lookup(1)
	assert.Equal(t, 0, legs.Quantity)
}

func TestStockLedgerConcurrentWithdrawalsNeverOversell(t *testing.T) {
	const attempts = 64

	ledger := NewStockLedger(nil)
	require.NoError(t, ledger.Upsert([]models.ArticleSupply{supply(1, "leg", attempts - 1)}))

	var wg sync.WaitGroup
	results := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- ledger.Withdraw([]models.ArticleDemand{{ArticleID: 1, Quantity: 1}})
		}()
	}
	wg.Wait()
	close(results)

	var sold int
	for ok := range results {
		if ok {
			sold++
		}
	}

	assert.Equal(t, attempts-1, sold, "stock covers exactly attempts-1 withdrawals")

	legs, _ := ledger.Lookup(1)
	assert.Equal(t, 0, legs.Quantity)
}
