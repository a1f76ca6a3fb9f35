package domain

// Variant identifica qual planilha e qual layout de dashboard usar
type Variant string

const (
	VariantCampaign Variant = "campaign"
	VariantCredit   Variant = "credit"
)

// ColumnFormat define como um valor numérico é exibido
type ColumnFormat int

const (
	FormatPlain ColumnFormat = iota
	FormatCurrency
	FormatPercent
)

// Colunas da planilha de campanhas
const (
	ColumnCampaign    = "Campanha"
	ColumnLeads       = "Leads"
	ColumnReach       = "Alcance"
	ColumnImpressions = "Impressões"
	ColumnCPM         = "CPM"
	ColumnCPL         = "CPL"
	ColumnCPC         = "CPC"
	ColumnCTR         = "CTR"
	ColumnClicks      = "Cliques"
	ColumnSpend       = "Valor usado"
)

// Colunas da planilha de solicitações de crédito
const (
	ColumnBroker        = "Corretor Responsável"
	ColumnPurpose       = "Finalidade do Crédito"
	ColumnBrokerageUnit = "Unidade da Corretora"
	ColumnStatus        = "Status da Negociação"
	ColumnCreditAmount  = "Crédito Desejado (R$)"
	ColumnRequestDate   = "Data da Solicitação"
)

// ColumnSpec descreve o tipo esperado de uma coluna e como exibi-la
type ColumnSpec struct {
	Name        string
	Kind        Kind
	Format      ColumnFormat
	Categorical bool
}

// Schema é o descritor consultado uma única vez na carga da planilha.
// Colunas fora do schema permanecem como texto.
type Schema struct {
	Name    string
	Variant Variant
	Entity  string
	Columns []ColumnSpec
}

var CampaignSchema = Schema{
	Name:    "campanhas",
	Variant: VariantCampaign,
	Entity:  "campanha",
	Columns: []ColumnSpec{
		{Name: ColumnCampaign, Kind: KindString, Categorical: true},
		{Name: ColumnLeads, Kind: KindNumber},
		{Name: ColumnReach, Kind: KindNumber},
		{Name: ColumnImpressions, Kind: KindNumber},
		{Name: ColumnCPM, Kind: KindNumber, Format: FormatCurrency},
		{Name: ColumnCPL, Kind: KindNumber, Format: FormatCurrency},
		{Name: ColumnCPC, Kind: KindNumber, Format: FormatCurrency},
		{Name: ColumnCTR, Kind: KindNumber, Format: FormatPercent},
		{Name: ColumnClicks, Kind: KindNumber},
		{Name: ColumnSpend, Kind: KindNumber, Format: FormatCurrency},
	},
}

var CreditRequestSchema = Schema{
	Name:    "solicitacoes_credito",
	Variant: VariantCredit,
	Entity:  "solicitação de crédito",
	Columns: []ColumnSpec{
		{Name: ColumnBroker, Kind: KindString, Categorical: true},
		{Name: ColumnPurpose, Kind: KindString, Categorical: true},
		{Name: ColumnBrokerageUnit, Kind: KindString, Categorical: true},
		{Name: ColumnStatus, Kind: KindString, Categorical: true},
		{Name: ColumnCreditAmount, Kind: KindNumber, Format: FormatCurrency},
		{Name: ColumnRequestDate, Kind: KindDate},
	},
}

// SchemaFor retorna o schema da variante informada
func SchemaFor(variant Variant) (Schema, bool) {
	switch variant {
	case VariantCampaign:
		return CampaignSchema, true
	case VariantCredit:
		return CreditRequestSchema, true
	default:
		return Schema{}, false
	}
}

// Column busca a especificação de uma coluna pelo nome
func (s Schema) Column(name string) (ColumnSpec, bool) {
	for _, column := range s.Columns {
		if column.Name == name {
			return column, true
		}
	}
	return ColumnSpec{}, false
}

// Categorical lista as colunas usadas como filtro, na ordem do schema
func (s Schema) Categorical() []string {
	names := make([]string, 0, len(s.Columns))
	for _, column := range s.Columns {
		if column.Categorical {
			names = append(names, column.Name)
		}
	}
	return names
}

// ColumnsOfKind lista as colunas de um tipo, na ordem do schema
func (s Schema) ColumnsOfKind(kind Kind) []string {
	names := make([]string, 0, len(s.Columns))
	for _, column := range s.Columns {
		if column.Kind == kind {
			names = append(names, column.Name)
		}
	}
	return names
}

// FormatOf retorna o formato de exibição da coluna (FormatPlain quando desconhecida)
func (s Schema) FormatOf(name string) ColumnFormat {
	if column, ok := s.Column(name); ok {
		return column.Format
	}
	return FormatPlain
}
