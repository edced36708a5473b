package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/biblioteca/internal/database/reports"
)

func TestInventory(t *testing.T) {
	t.Run("renders header and rows", func(t *testing.T) {
		rows := []reports.InventoryRow{
			{Title: "Dom Casmurro", Author: "Machado de Assis", Category: "Romance"},
			{Title: "Vidas Secas", Author: "Graciliano Ramos", Category: "Romance"},
		}

		out, err := Inventory(rows)
		require.NoError(t, err)
		assert.Equal(t, "inventory", out.Name)
		assert.Equal(t,
			"title,author,category\n"+
				"Dom Casmurro,Machado de Assis,Romance\n"+
				"Vidas Secas,Graciliano Ramos,Romance\n",
			string(out.Data))
	})

	t.Run("quotes fields containing commas", func(t *testing.T) {
		rows := []reports.InventoryRow{
			{Title: "Poesia, Completa", Author: "Autor", Category: "Poesia"},
		}

		out, err := Inventory(rows)
		require.NoError(t, err)
		assert.Contains(t, string(out.Data), `"Poesia, Completa"`)
	})

	t.Run("empty input yields header only", func(t *testing.T) {
		out, err := Inventory(nil)
		require.NoError(t, err)
		assert.Equal(t, "title,author,category\n", string(out.Data))
	})
}

func TestCategories(t *testing.T) {
	rows := []reports.CategoryCount{
		{Category: "Romance", Count: 4},
		{Category: "Poesia", Count: 1},
	}

	out, err := Categories(rows)
	require.NoError(t, err)
	assert.Equal(t, "categories", out.Name)
	assert.Equal(t,
		"category,count\n"+
			"Romance,4\n"+
			"Poesia,1\n",
		string(out.Data))
}
