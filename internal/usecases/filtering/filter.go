// Package filtering restringe as linhas da tabela às seleções do usuário
package filtering

import (
	"sort"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
)

// Filter mantém as linhas que satisfazem todas as seleções ativas, na ordem
// original. Sem seleções ativas a própria tabela é devolvida; seleções em
// colunas inexistentes não restringem nada.
func Filter(t *table.Table, selections domain.Selections) (*table.Table, error) {
	active := selections.Active()
	if len(active) == 0 {
		return t, nil
	}

	columns := make([]string, 0, len(active))
	for column := range active {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	current := t
	for _, column := range columns {
		next, err := current.Where(column, active[column])
		if err != nil {
			return nil, err
		}
		current = next
	}

	return current, nil
}
