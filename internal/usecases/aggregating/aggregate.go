// Package aggregating reúne as funções de agregação sobre a tabela filtrada.
// Células ausentes são sempre ignoradas, nunca tratadas como zero.
package aggregating

import (
	"sort"

	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/table"
)

// Sum soma os valores válidos da coluna; 0 quando ausente ou vazia
func Sum(t *table.Table, column string) float64 {
	total := 0.0
	for _, value := range numbers(t, column) {
		total += value
	}
	return total
}

// Mean calcula a média dos valores válidos; ok é falso quando não há nenhum
func Mean(t *table.Table, column string) (float64, bool) {
	values := numbers(t, column)
	if len(values) == 0 {
		return 0, false
	}

	total := 0.0
	for _, value := range values {
		total += value
	}
	return total / float64(len(values)), true
}

// Count conta as células não ausentes da coluna
func Count(t *table.Table, column string) int {
	count := 0
	for _, value := range t.Column(column) {
		if !value.Missing {
			count++
		}
	}
	return count
}

// GroupSum soma value por chave de group. Linhas sem chave são ignoradas e
// grupos sem nenhum valor válido totalizam 0.
func GroupSum(t *table.Table, group, value string) map[string]float64 {
	totals := make(map[string]float64)

	keys := t.Column(group)
	if keys == nil {
		return totals
	}
	values := t.Column(value)

	for i, key := range keys {
		if key.Missing {
			continue
		}

		name := key.Key()
		if _, ok := totals[name]; !ok {
			totals[name] = 0
		}

		if values == nil || values[i].Missing || values[i].Kind != domain.KindNumber {
			continue
		}
		totals[name] += values[i].Number
	}

	return totals
}

// SortedGroups ordena os totais de forma decrescente, desempatando pela chave
func SortedGroups(totals map[string]float64) []domain.GroupTotal {
	groups := toGroups(totals)
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// GroupsByKey ordena os totais pela chave; chaves de data ficam em ordem cronológica
func GroupsByKey(totals map[string]float64) []domain.GroupTotal {
	groups := toGroups(totals)
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// ValueCounts conta as ocorrências de cada valor, da maior para a menor
// contagem, desempatando pela ordem de primeira aparição
func ValueCounts(t *table.Table, column string) []domain.ValueCount {
	index := make(map[string]int)
	counts := make([]domain.ValueCount, 0)

	for _, value := range t.Column(column) {
		if value.Missing {
			continue
		}

		key := value.Key()
		if position, ok := index[key]; ok {
			counts[position].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, domain.ValueCount{Value: key, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Unique lista os valores distintos não ausentes na ordem de primeira aparição
func Unique(t *table.Table, column string) []string {
	seen := make(map[string]struct{})
	unique := make([]string, 0)

	for _, value := range t.Column(column) {
		if value.Missing {
			continue
		}

		key := value.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}

	return unique
}

func numbers(t *table.Table, column string) []float64 {
	if t.Kind(column) != domain.KindNumber {
		return nil
	}

	cells := t.Column(column)
	values := make([]float64, 0, len(cells))
	for _, value := range cells {
		if !value.Missing {
			values = append(values, value.Number)
		}
	}
	return values
}

func toGroups(totals map[string]float64) []domain.GroupTotal {
	groups := make([]domain.GroupTotal, 0, len(totals))
	for key, total := range totals {
		groups = append(groups, domain.GroupTotal{Key: key, Total: total})
	}
	return groups
}
