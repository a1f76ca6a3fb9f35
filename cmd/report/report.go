package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/traffic-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/traffic-dashboard-api/infrastructure/export"
	"github.com/vfg2006/traffic-dashboard-api/infrastructure/feed/feedclient"
	"github.com/vfg2006/traffic-dashboard-api/internal/config"
	"github.com/vfg2006/traffic-dashboard-api/internal/domain"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/traffic-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/traffic-dashboard-api/pkg/utils"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputXLSX  = "xlsx"
)

type reportOptions struct {
	source    string
	filters   []string
	output    string
	out       string
	delimiter string
	encoding  string
	verbose   bool
}

var (
	accent      = lipgloss.Color("#c9a0ff")
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(accent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report <campaign|credit>",
		Short: "Gera o relatório de um dashboard a partir da planilha",
		Long: `Carrega a planilha da variante, aplica os filtros e imprime métricas,
gráficos resumidos e a tabela detalhada. A origem padrão vem de
CAMPAIGN_FEED_URL / CREDIT_FEED_URL e pode ser trocada com --source.`,
		Example: `  report campaign --source ./campanhas.csv
  report credit --filter "Status da Negociação=Aprovado" --output json
  report campaign --filter Campanha=A --filter Campanha=B --output xlsx --out campanhas.xlsx`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			return runReport(cmd.Context(), cfg, domain.Variant(args[0]), opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.source, "source", "s", "", "URL ou caminho da planilha (substitui a configuração)")
	flags.StringArrayVarP(&opts.filters, "filter", "f", nil, `filtro no formato "Coluna=valor"; pode se repetir`)
	flags.StringVarP(&opts.output, "output", "o", outputTable, "formato de saída: table, json ou xlsx")
	flags.StringVar(&opts.out, "out", "", "arquivo de saída (padrão: stdout; xlsx usa <schema>.xlsx)")
	flags.StringVar(&opts.delimiter, "delimiter", "", "separador de campos da planilha")
	flags.StringVar(&opts.encoding, "encoding", "", "codificação da planilha: utf-8, windows-1252 ou iso-8859-1")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "exibe logs de depuração")

	return cmd
}

// runReport executa o pipeline completo para uma variante e escreve o resultado
func runReport(ctx context.Context, cfg *config.Config, variant domain.Variant, opts *reportOptions, stdout io.Writer) error {
	schema, ok := domain.SchemaFor(variant)
	if !ok {
		return errors.Errorf("variante desconhecida %q (use campaign ou credit)", variant)
	}

	selections, err := parseFilters(opts.filters)
	if err != nil {
		return err
	}

	applyOverrides(cfg, variant, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	loader := loading.NewService(cfg, feedclient.NewClient(cfg))
	service := dashboarding.NewService(cfg, cache.NewFeedCache(loader, 0))

	dashboard, err := service.Render(ctx, variant, selections)
	if err != nil {
		var fetchErr *loading.FetchError
		if errors.As(err, &fetchErr) {
			return errors.Wrapf(err, "[%s] falha ao carregar planilha", fetchErr.Code)
		}
		return err
	}

	switch opts.output {
	case outputXLSX:
		path := opts.out
		if path == "" {
			path = schema.Name + ".xlsx"
		}
		return writeFile(path, func(w io.Writer) error {
			return export.WriteDetailTable(w, schema.Name, dashboard.Table)
		})
	case outputJSON:
		return writeOutput(opts.out, stdout, func(w io.Writer) error {
			pretty, err := utils.PrettyJSON(dashboard)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, pretty)
			return err
		})
	case outputTable:
		return writeOutput(opts.out, stdout, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, renderDashboard(dashboard))
			return err
		})
	default:
		return errors.Errorf("formato de saída inválido %q (use table, json ou xlsx)", opts.output)
	}
}

func applyOverrides(cfg *config.Config, variant domain.Variant, opts *reportOptions) {
	if opts.source != "" {
		switch variant {
		case domain.VariantCampaign:
			cfg.Feed.CampaignURL = opts.source
		case domain.VariantCredit:
			cfg.Feed.CreditURL = opts.source
		}
	}
	if opts.delimiter != "" {
		cfg.Feed.Delimiter = opts.delimiter
	}
	if opts.encoding != "" {
		cfg.Feed.Encoding = opts.encoding
	}
}

// parseFilters converte flags "Coluna=valor" em seleções. Colunas repetidas acumulam valores.
func parseFilters(filters []string) (domain.Selections, error) {
	selections := domain.Selections{}
	for _, filter := range filters {
		column, value, found := strings.Cut(filter, "=")
		column = strings.TrimSpace(column)
		value = strings.TrimSpace(value)
		if !found || column == "" {
			return nil, errors.Errorf("filtro inválido %q, use Coluna=valor", filter)
		}
		if value == "" {
			continue
		}
		selections[column] = append(selections[column], value)
	}
	return selections, nil
}

// renderDashboard monta a visão de terminal: título, métricas, resumo dos gráficos e tabela detalhada
func renderDashboard(dashboard *domain.Dashboard) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(dashboard.Title))
	b.WriteString("\n")

	for _, metric := range dashboard.Metrics {
		display := metric.Display
		if display == "" {
			display = "-"
		}
		fmt.Fprintf(&b, "%s %s %s\n", metric.Icon, labelStyle.Render(metric.Label+":"), display)
	}

	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(fmt.Sprintf(
		"%d de %d linhas · snapshot %s", dashboard.FilteredRows, dashboard.TotalRows, dashboard.SnapshotID,
	)))

	for _, chart := range dashboard.Charts {
		b.WriteString(labelStyle.Render(chart.Title))
		b.WriteString("\n")
		b.WriteString(renderTable([]string{chartAxis(chart), "Valor"}, chartRows(chart)))
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("🗂️ Dados detalhados"))
	b.WriteString("\n")
	b.WriteString(renderTable(dashboard.Table.Columns, dashboard.Table.Rows))

	return b.String()
}

func chartAxis(chart domain.ChartSpec) string {
	if chart.Kind == domain.ChartPie {
		return chart.Names
	}
	return chart.X
}

// chartRows usa o texto do hover, que já traz o valor formatado
func chartRows(chart domain.ChartSpec) [][]string {
	rows := make([][]string, 0, len(chart.Points))
	for _, point := range chart.Points {
		value := "-"
		if i := strings.LastIndex(point.Hover, ": "); i >= 0 && point.Y != nil {
			value = point.Hover[i+2:]
		}
		rows = append(rows, []string{point.X, value})
	}
	return rows
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	return writeFile(path, write)
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar %s", path)
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
