package domain

// Selections mapeia o nome da coluna para o conjunto de valores escolhidos pelo usuário.
// Uma coluna ausente ou com conjunto vazio não restringe o resultado.
type Selections map[string][]string

// Active retorna apenas as seleções com pelo menos um valor
func (s Selections) Active() Selections {
	active := make(Selections, len(s))
	for column, values := range s {
		if len(values) > 0 {
			active[column] = values
		}
	}
	return active
}

// IsEmpty indica que nenhuma seleção restringe a tabela
func (s Selections) IsEmpty() bool {
	return len(s.Active()) == 0
}

// Merge combina duas seleções. Em colunas repetidas prevalece a de other.
func (s Selections) Merge(other Selections) Selections {
	merged := make(Selections, len(s)+len(other))
	for column, values := range s {
		merged[column] = values
	}
	for column, values := range other {
		merged[column] = values
	}
	return merged
}
