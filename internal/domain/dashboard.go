package domain

import "time"

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartPie  ChartKind = "pie"
	ChartLine ChartKind = "line"
)

// ChartPoint é um ponto já pronto para o gráfico. Y nulo indica valor ausente.
type ChartPoint struct {
	X     string   `json:"x"`
	Y     *float64 `json:"y"`
	Color string   `json:"color,omitempty"`
	Hover string   `json:"hover"`
}

// ChartSpec descreve um gráfico para a camada de UI.
// Gráficos de barra e linha usam X/Y; pizza usa Names/Values.
type ChartSpec struct {
	Kind          ChartKind         `json:"kind"`
	Title         string            `json:"title"`
	X             string            `json:"x,omitempty"`
	Y             string            `json:"y,omitempty"`
	Color         string            `json:"color,omitempty"`
	Names         string            `json:"names,omitempty"`
	Values        string            `json:"values,omitempty"`
	Labels        map[string]string `json:"labels,omitempty"`
	HoverTemplate string            `json:"hover_template"`
	Points        []ChartPoint      `json:"points"`
}

type Metric struct {
	Icon    string   `json:"icon,omitempty"`
	Label   string   `json:"label"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

// DetailTable é a tabela detalhada com todas as células já formatadas
type DetailTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type FilterOption struct {
	Column string   `json:"column"`
	Values []string `json:"values"`
}

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type GroupTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

type Dashboard struct {
	Variant       Variant        `json:"variant"`
	Title         string         `json:"title"`
	SnapshotID    string         `json:"snapshot_id"`
	LoadedAt      time.Time      `json:"loaded_at"`
	TotalRows     int            `json:"total_rows"`
	FilteredRows  int            `json:"filtered_rows"`
	Selections    Selections     `json:"selections"`
	FilterOptions []FilterOption `json:"filter_options"`
	Metrics       []Metric       `json:"metrics"`
	Charts        []ChartSpec    `json:"charts"`
	Table         DetailTable    `json:"table"`
}

// DashboardInfo resume uma variante configurada
type DashboardInfo struct {
	Variant    Variant  `json:"variant"`
	Title      string   `json:"title"`
	Configured bool     `json:"configured"`
	Filters    []string `json:"filters"`
}
