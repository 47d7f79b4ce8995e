package spreadsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/metrics"
	"oficina_facil/internal/usecase/interfaces"
)

// Gateway persists the workshop domain into one spreadsheet laid out per the
// conventions in layout.go.
//
// Every append determines its target row by reading the current extent of
// the table's first column and computing start+len. Two concurrent writers
// can compute the same row and overwrite each other; the deployment is
// single-user and the race is accepted, not worked around.
type Gateway struct {
	client interfaces.IRangeClient
	now    func() time.Time
}

var _ interfaces.ISheetsGateway = (*Gateway)(nil)

func New(client interfaces.IRangeClient) *Gateway {
	return &Gateway{client: client, now: time.Now}
}

func (g *Gateway) Reconfigure(spreadsheetID string) {
	g.client.Reconfigure(spreadsheetID)
}

func (g *Gateway) AddCliente(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	title, err := g.createClienteSheet(ctx, c.Nome)
	if err != nil {
		return entities.Cliente{}, g.observe("addCliente", err)
	}

	c.ID = g.genID("CL")
	c.SheetTitle = title
	c.DataCadastro = g.today()
	c.Pendente = false

	identity := fmt.Sprintf("A%d:E%d", clienteIdentityRow, clienteIdentityRow)
	err = g.client.UpdateRange(ctx, rangeOf(quoted(title), identity), [][]string{
		{c.ID, c.Nome, c.Telefone, c.PlacaPrincipal, c.DataCadastro},
	})
	if err != nil {
		return entities.Cliente{}, g.observe("addCliente", err)
	}

	log.Printf("[sheets] cliente added id=%s sheet=%q", c.ID, title)
	return c, g.observe("addCliente", nil)
}

func (g *Gateway) GetClientes(ctx context.Context) ([]entities.Cliente, error) {
	sheets, err := g.client.ListSheets(ctx)
	if err != nil {
		return nil, g.observe("getClientes", err)
	}

	identity := fmt.Sprintf("A%d:E%d", clienteIdentityRow, clienteIdentityRow)
	clientes := make([]entities.Cliente, 0)
	for _, sh := range sheets {
		if !isClienteSheet(sh.Title) {
			continue
		}
		rows, err := g.client.ReadRange(ctx, rangeOf(quoted(sh.Title), identity))
		if err != nil {
			return nil, g.observe("getClientes", err)
		}
		if len(rows) == 0 || len(rows[0]) == 0 || rows[0][0] == "" {
			// Sheet without a populated identity record; skip.
			continue
		}
		row := rows[0]
		clientes = append(clientes, entities.Cliente{
			ID:             cell(row, 0),
			Nome:           cell(row, 1),
			Telefone:       cell(row, 2),
			PlacaPrincipal: cell(row, 3),
			DataCadastro:   cell(row, 4),
			SheetTitle:     sh.Title,
		})
	}
	return clientes, g.observe("getClientes", nil)
}

func (g *Gateway) AddVeiculo(ctx context.Context, v entities.Veiculo, clienteSheetTitle string) (entities.Veiculo, error) {
	v.ID = g.genID("VE")
	v.DataCadastro = g.today()
	v.Pendente = false

	// Owner sheet first: next free row of the vehicle sub-table.
	next, err := g.nextRow(ctx, rangeOf(quoted(clienteSheetTitle), fmt.Sprintf("A%d:A", clienteVeiculoStart)), clienteVeiculoStart)
	if err != nil {
		return entities.Veiculo{}, g.observe("addVeiculo", err)
	}
	err = g.client.UpdateRange(ctx, rangeOf(quoted(clienteSheetTitle), fmt.Sprintf("A%d:F%d", next, next)), [][]string{
		{v.ID, v.Marca, v.Modelo, v.Ano, v.Placa, v.DataCadastro},
	})
	if err != nil {
		return entities.Veiculo{}, g.observe("addVeiculo", err)
	}

	// Denormalized copy in the shared Veículos sheet, tagged with the owner's
	// name. No rollback of the first write if this part fails.
	identity := fmt.Sprintf("A%d:B%d", clienteIdentityRow, clienteIdentityRow)
	rows, err := g.client.ReadRange(ctx, rangeOf(quoted(clienteSheetTitle), identity))
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = fmt.Errorf("aba %q sem registro de cliente", clienteSheetTitle)
		}
		return entities.Veiculo{}, g.observe("addVeiculo", err)
	}
	clienteID, clienteNome := cell(rows[0], 0), cell(rows[0], 1)

	next, err = g.nextRow(ctx, rangeOf(sheetVeiculos, "A:A"), 1)
	if err != nil {
		return entities.Veiculo{}, g.observe("addVeiculo", err)
	}
	err = g.client.UpdateRange(ctx, rangeOf(sheetVeiculos, fmt.Sprintf("A%d:G%d", next, next)), [][]string{
		{v.ID, clienteNome, v.Marca, v.Modelo, v.Ano, v.Placa, v.DataCadastro},
	})
	if err != nil {
		return entities.Veiculo{}, g.observe("addVeiculo", err)
	}

	v.ClienteID = clienteID
	log.Printf("[sheets] veiculo added id=%s cliente=%s", v.ID, clienteID)
	return v, g.observe("addVeiculo", nil)
}

func (g *Gateway) GetVeiculosCliente(ctx context.Context, clienteSheetTitle string) ([]entities.Veiculo, error) {
	idRange := fmt.Sprintf("A%d:A%d", clienteIdentityRow, clienteIdentityRow)
	idRows, err := g.client.ReadRange(ctx, rangeOf(quoted(clienteSheetTitle), idRange))
	if err != nil {
		return nil, g.observe("getVeiculosCliente", err)
	}
	clienteID := ""
	if len(idRows) > 0 {
		clienteID = cell(idRows[0], 0)
	}

	rows, err := g.client.ReadRange(ctx, rangeOf(quoted(clienteSheetTitle), fmt.Sprintf("A%d:F", clienteVeiculoStart)))
	if err != nil {
		return nil, g.observe("getVeiculosCliente", err)
	}

	veiculos := make([]entities.Veiculo, 0, len(rows))
	for _, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		veiculos = append(veiculos, entities.Veiculo{
			ID:           cell(row, 0),
			ClienteID:    clienteID,
			Marca:        cell(row, 1),
			Modelo:       cell(row, 2),
			Ano:          cell(row, 3),
			Placa:        cell(row, 4),
			DataCadastro: cell(row, 5),
		})
	}
	return veiculos, g.observe("getVeiculosCliente", nil)
}

func (g *Gateway) AddOrdemServico(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	clienteSheet, err := g.findClienteSheet(ctx, os.Cliente)
	if err != nil {
		return entities.OrdemServico{}, g.observe("addOrdemServico", err)
	}

	os.ID = g.genID("OS")
	os.UltimaAtualizacao = g.today()
	os.Pendente = false

	pecas, err := json.Marshal(os.PecasUtilizadas)
	if err != nil {
		return entities.OrdemServico{}, g.observe("addOrdemServico", err)
	}

	// Shared orders sheet.
	next, err := g.nextRow(ctx, rangeOf(sheetOrdens, "A:A"), 1)
	if err != nil {
		return entities.OrdemServico{}, g.observe("addOrdemServico", err)
	}
	err = g.client.UpdateRange(ctx, rangeOf(sheetOrdens, fmt.Sprintf("A%d:K%d", next, next)), [][]string{{
		os.ID,
		os.Cliente,
		os.Veiculo,
		os.DataEntrada,
		os.DescricaoProblema,
		os.ServicosRealizados,
		string(pecas),
		formatValor(os.ValorMaoObra),
		formatValor(os.ValorTotal),
		string(os.Status),
		os.UltimaAtualizacao,
	}})
	if err != nil {
		return entities.OrdemServico{}, g.observe("addOrdemServico", err)
	}

	// Owner history sub-table.
	next, err = g.nextRow(ctx, rangeOf(quoted(clienteSheet), fmt.Sprintf("A%d:A", clienteHistoricoStart)), clienteHistoricoStart)
	if err != nil {
		return entities.OrdemServico{}, g.observe("addOrdemServico", err)
	}
	err = g.client.UpdateRange(ctx, rangeOf(quoted(clienteSheet), fmt.Sprintf("A%d:F%d", next, next)), [][]string{
		{os.ID, os.DataEntrada, os.DescricaoProblema, string(os.Status), formatValor(os.ValorTotal), os.UltimaAtualizacao},
	})
	if err != nil {
		return entities.OrdemServico{}, g.observe("addOrdemServico", err)
	}

	if os.Status == entities.OSStatusFinalizada {
		if err := g.appendPendentePagamento(ctx, os.ID, os.Cliente, os.DataEntrada, os.ValorTotal); err != nil {
			return entities.OrdemServico{}, g.observe("addOrdemServico", err)
		}
	}

	log.Printf("[sheets] ordem added id=%s cliente=%q status=%s", os.ID, os.Cliente, os.Status)
	return os, g.observe("addOrdemServico", nil)
}

func (g *Gateway) AtualizarStatusOS(ctx context.Context, osID string, status entities.OSStatus) (entities.OrdemServico, error) {
	rows, err := g.client.ReadRange(ctx, rangeOf(sheetOrdens, "A:K"))
	if err != nil {
		return entities.OrdemServico{}, g.observe("atualizarStatusOS", err)
	}

	rowIndex := -1
	var os entities.OrdemServico
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], 0) != osID {
			continue
		}
		rowIndex = i + 1 // sheet rows are 1-based
		os = rowToOrdem(rows[i])
		break
	}
	if rowIndex == -1 {
		return entities.OrdemServico{}, g.observe("atualizarStatusOS", interfaces.ErrOSNaoEncontrada)
	}

	hoje := g.today()
	err = g.client.UpdateRange(ctx, rangeOf(sheetOrdens, fmt.Sprintf("J%d:K%d", rowIndex, rowIndex)), [][]string{
		{string(status), hoje},
	})
	if err != nil {
		return entities.OrdemServico{}, g.observe("atualizarStatusOS", err)
	}

	// Mirror into the owner's history sub-table, best-effort: an absent row
	// (or an unlocatable owner sheet) is not an error.
	g.mirrorStatusHistorico(ctx, os, osID, status, hoje)

	// Side effects fire on the transition *into* Finalizada and on Paga.
	if status == entities.OSStatusFinalizada && os.Status != entities.OSStatusFinalizada {
		if err := g.appendPendentePagamento(ctx, osID, os.Cliente, os.DataEntrada, os.ValorTotal); err != nil {
			return entities.OrdemServico{}, g.observe("atualizarStatusOS", err)
		}
	}
	if status == entities.OSStatusPaga {
		if err := g.removePendentePagamento(ctx, osID); err != nil {
			return entities.OrdemServico{}, g.observe("atualizarStatusOS", err)
		}
	}

	os.Status = status
	os.UltimaAtualizacao = hoje
	log.Printf("[sheets] ordem status updated id=%s status=%s", osID, status)
	return os, g.observe("atualizarStatusOS", nil)
}

func (g *Gateway) GetOrdensServico(ctx context.Context, filtroStatus entities.OSStatus) ([]entities.OrdemServico, error) {
	rows, err := g.client.ReadRange(ctx, rangeOf(sheetOrdens, "A:K"))
	if err != nil {
		return nil, g.observe("getOrdensServico", err)
	}

	ordens := make([]entities.OrdemServico, 0)
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], 0) == "" {
			continue
		}
		os := rowToOrdem(rows[i])
		if filtroStatus != "" && os.Status != filtroStatus {
			continue
		}
		ordens = append(ordens, os)
	}
	return ordens, g.observe("getOrdensServico", nil)
}

func (g *Gateway) GetResumoFinanceiro(ctx context.Context) (entities.Financeiro, error) {
	rows, err := g.client.ReadRange(ctx, rangeOf(sheetFinanceiro, "A3:B6"))
	if err != nil {
		return entities.Financeiro{}, g.observe("getResumoFinanceiro", err)
	}

	summary := func(i int) float64 {
		if i < len(rows) {
			return parseValor(cell(rows[i], 1))
		}
		return 0
	}
	fin := entities.Financeiro{
		Resumo: entities.ResumoFinanceiro{
			TotalOSAberto:          summary(0),
			TotalOSFinalizada:      summary(1),
			FaturamentoMesAtual:    summary(2),
			FaturamentoMesAnterior: summary(3),
		},
		OSPendentes: make([]entities.OSPendente, 0),
	}

	pendentes, err := g.client.ReadRange(ctx, rangeOf(sheetFinanceiro, fmt.Sprintf("A%d:D", financeiroPendentesStart)))
	if err != nil {
		return entities.Financeiro{}, g.observe("getResumoFinanceiro", err)
	}
	for _, row := range pendentes {
		if cell(row, 0) == "" {
			continue
		}
		fin.OSPendentes = append(fin.OSPendentes, entities.OSPendente{
			ID:      cell(row, 0),
			Cliente: cell(row, 1),
			Data:    cell(row, 2),
			Valor:   parseValor(cell(row, 3)),
		})
	}
	return fin, g.observe("getResumoFinanceiro", nil)
}

func (g *Gateway) VerificarPermissao(ctx context.Context) bool {
	err := g.client.UpdateRange(ctx, "A1", [][]string{{"Teste de permissão"}})
	if err != nil {
		log.Printf("[sheets] permission probe failed err=%v", err)
	}
	g.observe("verificarPermissao", err)
	return err == nil
}

func (g *Gateway) CriarPlanilha(ctx context.Context, nome string) (string, error) {
	id, err := g.client.CreateSpreadsheet(ctx, "OficinaFácil - "+nome)
	if err != nil {
		return "", g.observe("criarPlanilha", err)
	}
	g.client.Reconfigure(id)

	if err := g.bootstrap(ctx); err != nil {
		return "", g.observe("criarPlanilha", err)
	}
	log.Printf("[sheets] planilha created id=%s", id)
	return id, g.observe("criarPlanilha", nil)
}

// --- internals ---

func (g *Gateway) createClienteSheet(ctx context.Context, nome string) (string, error) {
	info, err := g.client.AddSheet(ctx, clienteSheetTitle(nome), 1000, 20)
	if err != nil {
		return "", err
	}
	title := info.Title

	err = g.client.BatchUpdateValues(ctx, []interfaces.ValueData{
		{Range: rangeOf(quoted(title), "A1:E1"), Values: [][]string{{"ID Cliente", "Nome", "Telefone", "Placa Principal", "Data Cadastro"}}},
		{Range: rangeOf(quoted(title), "A3"), Values: [][]string{{"Informações do Cliente"}}},
		{Range: rangeOf(quoted(title), "A7:F7"), Values: [][]string{{"Veículos", "Marca", "Modelo", "Ano", "Placa", "Data Cadastro"}}},
		{Range: rangeOf(quoted(title), "A15:F15"), Values: [][]string{{"Histórico de OS", "Data", "Descrição", "Status", "Valor", "Data Atualização"}}},
	})
	if err != nil {
		return "", err
	}

	// The index is cosmetic navigation; failing to update it must not fail
	// the customer creation.
	if err := g.updateIndice(ctx, nome, info); err != nil {
		log.Printf("[sheets] índice update failed cliente=%q err=%v", nome, err)
	}
	return title, nil
}

func (g *Gateway) updateIndice(ctx context.Context, nome string, cliente interfaces.SheetInfo) error {
	sheets, err := g.client.ListSheets(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, sh := range sheets {
		if sh.Title == sheetIndice {
			found = true
			break
		}
	}
	if !found {
		if err := g.bootstrap(ctx); err != nil {
			return err
		}
	}

	next, err := g.nextRow(ctx, rangeOf(sheetIndice, "A:B"), 1)
	if err != nil {
		return err
	}
	link := fmt.Sprintf(`=HYPERLINK("#gid=%d","Abrir ficha")`, cliente.ID)
	return g.client.UpdateRange(ctx, rangeOf(sheetIndice, fmt.Sprintf("A%d:B%d", next, next)), [][]string{{nome, link}})
}

func (g *Gateway) findClienteSheet(ctx context.Context, nome string) (string, error) {
	sheets, err := g.client.ListSheets(ctx)
	if err != nil {
		return "", err
	}
	// First match wins; duplicated customer names stay ambiguous.
	for _, sh := range sheets {
		if isClienteSheet(sh.Title) && nome != "" && strings.Contains(sh.Title, nome) {
			return sh.Title, nil
		}
	}
	return "", interfaces.ErrClienteNaoEncontrado
}

func (g *Gateway) mirrorStatusHistorico(ctx context.Context, os entities.OrdemServico, osID string, status entities.OSStatus, hoje string) {
	clienteSheet, err := g.findClienteSheet(ctx, os.Cliente)
	if err != nil {
		return
	}
	rows, err := g.client.ReadRange(ctx, rangeOf(quoted(clienteSheet), fmt.Sprintf("A%d:F", clienteHistoricoStart)))
	if err != nil {
		return
	}
	for i, row := range rows {
		if cell(row, 0) != osID {
			continue
		}
		r := clienteHistoricoStart + i
		rng := rangeOf(quoted(clienteSheet), fmt.Sprintf("D%d:F%d", r, r))
		if err := g.client.UpdateRange(ctx, rng, [][]string{{string(status), formatValor(os.ValorTotal), hoje}}); err != nil {
			log.Printf("[sheets] histórico mirror failed id=%s err=%v", osID, err)
		}
		return
	}
}

func (g *Gateway) appendPendentePagamento(ctx context.Context, osID, cliente, data string, valor float64) error {
	next, err := g.nextRow(ctx, rangeOf(sheetFinanceiro, fmt.Sprintf("A%d:A", financeiroPendentesStart)), financeiroPendentesStart)
	if err != nil {
		return err
	}
	return g.client.UpdateRange(ctx, rangeOf(sheetFinanceiro, fmt.Sprintf("A%d:E%d", next, next)), [][]string{
		{osID, cliente, data, formatValor(valor), pendentePagamentoAcao},
	})
}

func (g *Gateway) removePendentePagamento(ctx context.Context, osID string) error {
	rows, err := g.client.ReadRange(ctx, rangeOf(sheetFinanceiro, fmt.Sprintf("A%d:A", financeiroPendentesStart)))
	if err != nil {
		return err
	}
	for i, row := range rows {
		if cell(row, 0) != osID {
			continue
		}
		r := financeiroPendentesStart + i
		return g.client.ClearRange(ctx, rangeOf(sheetFinanceiro, fmt.Sprintf("A%d:E%d", r, r)))
	}
	// Not on the pending list: no-op.
	return nil
}

// nextRow computes the next free row of a table whose first data row is
// start, from the current number of occupied rows in the read range.
func (g *Gateway) nextRow(ctx context.Context, rng string, start int) (int, error) {
	rows, err := g.client.ReadRange(ctx, rng)
	if err != nil {
		return 0, err
	}
	return start + len(rows), nil
}

func (g *Gateway) genID(prefix string) string {
	return prefix + strconv.FormatInt(g.now().UnixMilli(), 10)
}

func (g *Gateway) today() string {
	return g.now().UTC().Format("2006-01-02")
}

func (g *Gateway) observe(operation string, err error) error {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.GatewayCallsTotal.WithLabelValues(operation, result).Inc()
	return err
}

func rowToOrdem(row []string) entities.OrdemServico {
	var pecas []entities.Peca
	if raw := cell(row, 6); raw != "" {
		if err := json.Unmarshal([]byte(raw), &pecas); err != nil {
			// Malformed parts cell: tolerate with an empty list.
			log.Printf("[sheets] pecas decode failed id=%s err=%v", cell(row, 0), err)
			pecas = nil
		}
	}
	if pecas == nil {
		pecas = []entities.Peca{}
	}
	return entities.OrdemServico{
		ID:                 cell(row, 0),
		Cliente:            cell(row, 1),
		Veiculo:            cell(row, 2),
		DataEntrada:        cell(row, 3),
		DescricaoProblema:  cell(row, 4),
		ServicosRealizados: cell(row, 5),
		PecasUtilizadas:    pecas,
		ValorMaoObra:       parseValor(cell(row, 7)),
		ValorTotal:         parseValor(cell(row, 8)),
		Status:             entities.OSStatus(cell(row, 9)),
		UltimaAtualizacao:  cell(row, 10),
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseValor(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatValor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
