package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/usecase/interfaces"
)

type recordedUpdate struct {
	rng    string
	values [][]string
}

// fakeRangeClient is a scripted IRangeClient: reads are served from a
// range-keyed map, writes are recorded for assertions.
type fakeRangeClient struct {
	reads   map[string][][]string
	readErr map[string]error

	updates   []recordedUpdate
	updateErr map[string]error
	batches   [][]interfaces.ValueData
	cleared   []string

	sheets      []interfaces.SheetInfo
	added       []string
	nextSheetID int64

	createdID     string
	spreadsheetID string
}

func newFakeRangeClient() *fakeRangeClient {
	return &fakeRangeClient{
		reads:       map[string][][]string{},
		readErr:     map[string]error{},
		updateErr:   map[string]error{},
		nextSheetID: 100,
	}
}

func (f *fakeRangeClient) ReadRange(_ context.Context, rng string) ([][]string, error) {
	if err := f.readErr[rng]; err != nil {
		return nil, err
	}
	return f.reads[rng], nil
}

func (f *fakeRangeClient) UpdateRange(_ context.Context, rng string, values [][]string) error {
	if err := f.updateErr[rng]; err != nil {
		return err
	}
	f.updates = append(f.updates, recordedUpdate{rng: rng, values: values})
	return nil
}

func (f *fakeRangeClient) BatchUpdateValues(_ context.Context, data []interfaces.ValueData) error {
	f.batches = append(f.batches, data)
	return nil
}

func (f *fakeRangeClient) ClearRange(_ context.Context, rng string) error {
	f.cleared = append(f.cleared, rng)
	return nil
}

func (f *fakeRangeClient) AddSheet(_ context.Context, title string, _, _ int64) (interfaces.SheetInfo, error) {
	f.nextSheetID++
	info := interfaces.SheetInfo{ID: f.nextSheetID, Title: title, Index: int64(len(f.sheets))}
	f.sheets = append(f.sheets, info)
	f.added = append(f.added, title)
	return info, nil
}

func (f *fakeRangeClient) ListSheets(_ context.Context) ([]interfaces.SheetInfo, error) {
	return f.sheets, nil
}

func (f *fakeRangeClient) CreateSpreadsheet(_ context.Context, _ string) (string, error) {
	return f.createdID, nil
}

func (f *fakeRangeClient) Reconfigure(id string) { f.spreadsheetID = id }
func (f *fakeRangeClient) SpreadsheetID() string { return f.spreadsheetID }

func (f *fakeRangeClient) lastUpdate(t *testing.T) recordedUpdate {
	t.Helper()
	if len(f.updates) == 0 {
		t.Fatalf("expected at least one update")
	}
	return f.updates[len(f.updates)-1]
}

func (f *fakeRangeClient) updateFor(t *testing.T, rng string) recordedUpdate {
	t.Helper()
	for _, u := range f.updates {
		if u.rng == rng {
			return u
		}
	}
	t.Fatalf("no update recorded for range %q (got %+v)", rng, f.updates)
	return recordedUpdate{}
}

var fixedNow = time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

func newTestGateway(f *fakeRangeClient) *Gateway {
	g := New(f)
	g.now = func() time.Time { return fixedNow }
	return g
}

func fixedID(prefix string) string {
	return prefix + strconv.FormatInt(fixedNow.UnixMilli(), 10)
}

func TestGateway_AddCliente(t *testing.T) {
	f := newFakeRangeClient()
	f.sheets = []interfaces.SheetInfo{{ID: 1, Title: sheetIndice}}
	f.reads["Índice!A:B"] = [][]string{{"OficinaFácil Gratuito - Versão 2.0"}, {}, {"Lista de Clientes", "Ação"}}
	g := newTestGateway(f)

	c, err := g.AddCliente(context.Background(), entities.Cliente{Nome: "Ana", Telefone: "11 9999-0000", PlacaPrincipal: "ABC1D23"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != fixedID("CL") {
		t.Fatalf("unexpected id: %s", c.ID)
	}
	if c.SheetTitle != "Cliente: Ana" {
		t.Fatalf("unexpected sheet title: %s", c.SheetTitle)
	}
	if c.DataCadastro != "2025-04-02" {
		t.Fatalf("unexpected data cadastro: %s", c.DataCadastro)
	}
	if c.Pendente {
		t.Fatalf("gateway result must not be pendente")
	}

	if len(f.added) != 1 || f.added[0] != "Cliente: Ana" {
		t.Fatalf("expected customer sheet to be added, got %v", f.added)
	}

	identity := f.updateFor(t, "'Cliente: Ana'!A4:E4")
	want := []string{c.ID, "Ana", "11 9999-0000", "ABC1D23", "2025-04-02"}
	if len(identity.values) != 1 || len(identity.values[0]) != 5 {
		t.Fatalf("unexpected identity shape: %+v", identity.values)
	}
	for i, v := range want {
		if identity.values[0][i] != v {
			t.Fatalf("identity[%d]: want %q got %q", i, v, identity.values[0][i])
		}
	}

	// Índice gets a navigation row below the current extent.
	idx := f.updateFor(t, "Índice!A4:B4")
	if idx.values[0][0] != "Ana" {
		t.Fatalf("unexpected índice row: %+v", idx.values)
	}
}

func TestGateway_GetClientes(t *testing.T) {
	f := newFakeRangeClient()
	f.sheets = []interfaces.SheetInfo{
		{Title: sheetIndice},
		{Title: sheetVeiculos},
		{Title: "Cliente: Ana"},
		{Title: "Cliente: Vazio"},
	}
	f.reads["'Cliente: Ana'!A4:E4"] = [][]string{{"CL1", "Ana", "111", "ABC1D23", "2025-01-01"}}
	// "Cliente: Vazio" has no identity record and must be skipped.
	g := newTestGateway(f)

	clientes, err := g.GetClientes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clientes) != 1 {
		t.Fatalf("expected 1 cliente, got %d", len(clientes))
	}
	c := clientes[0]
	if c.ID != "CL1" || c.Nome != "Ana" || c.SheetTitle != "Cliente: Ana" {
		t.Fatalf("unexpected cliente: %+v", c)
	}
}

func TestGateway_AddVeiculo(t *testing.T) {
	f := newFakeRangeClient()
	// Two vehicles already registered: next owner row is 8+2.
	f.reads["'Cliente: Ana'!A8:A"] = [][]string{{"VE1"}, {"VE2"}}
	f.reads["'Cliente: Ana'!A4:B4"] = [][]string{{"CL1", "Ana"}}
	// Shared sheet has header plus four rows: next is 6.
	f.reads["Veículos!A:A"] = [][]string{{"ID"}, {"VE1"}, {"VE2"}, {"VE3"}, {"VE4"}}
	g := newTestGateway(f)

	v, err := g.AddVeiculo(context.Background(), entities.Veiculo{Marca: "Fiat", Modelo: "Uno", Ano: "2012", Placa: "XYZ9A88"}, "Cliente: Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != fixedID("VE") || v.ClienteID != "CL1" {
		t.Fatalf("unexpected veiculo: %+v", v)
	}

	owner := f.updateFor(t, "'Cliente: Ana'!A10:F10")
	if owner.values[0][4] != "XYZ9A88" {
		t.Fatalf("unexpected owner row: %+v", owner.values)
	}

	shared := f.updateFor(t, "Veículos!A6:G6")
	if shared.values[0][1] != "Ana" {
		t.Fatalf("shared row must carry the owner's name: %+v", shared.values)
	}
}

func TestGateway_GetVeiculosCliente(t *testing.T) {
	f := newFakeRangeClient()
	f.reads["'Cliente: Ana'!A4:A4"] = [][]string{{"CL1"}}
	f.reads["'Cliente: Ana'!A8:F"] = [][]string{
		{"VE1", "Fiat", "Uno", "2012", "XYZ9A88", "2025-01-01"},
		{},
		{"VE2", "VW", "Gol", "2018", "AAA1B11", "2025-02-01"},
	}
	g := newTestGateway(f)

	veiculos, err := g.GetVeiculosCliente(context.Background(), "Cliente: Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Blank rows are skipped, every populated data row comes back.
	if len(veiculos) != 2 {
		t.Fatalf("expected 2 veiculos, got %d", len(veiculos))
	}
	if veiculos[0].ID != "VE1" || veiculos[1].ID != "VE2" {
		t.Fatalf("unexpected order: %+v", veiculos)
	}
	if veiculos[0].ClienteID != "CL1" {
		t.Fatalf("expected owner id on veiculo, got %+v", veiculos[0])
	}
}

func TestGateway_AddOrdemServico(t *testing.T) {
	f := newFakeRangeClient()
	f.sheets = []interfaces.SheetInfo{{Title: sheetIndice}, {Title: "Cliente: Ana"}}
	f.reads["Ordens de Serviço!A:A"] = [][]string{{"ID"}, {"OS1"}, {"OS2"}}
	// Empty history: first order lands on row 16.
	g := newTestGateway(f)

	os, err := g.AddOrdemServico(context.Background(), entities.OrdemServico{
		Cliente:           "Ana",
		Veiculo:           "Fiat Uno XYZ9A88",
		DataEntrada:       "2025-04-01",
		DescricaoProblema: "Barulho na suspensão",
		PecasUtilizadas:   []entities.Peca{{Nome: "Amortecedor", Valor: 350}},
		ValorMaoObra:      150,
		ValorTotal:        500,
		Status:            entities.OSStatusAberta,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.ID != fixedID("OS") {
		t.Fatalf("unexpected id: %s", os.ID)
	}

	row := f.updateFor(t, "Ordens de Serviço!A4:K4")
	if row.values[0][6] != `[{"nome":"Amortecedor","valor":350}]` {
		t.Fatalf("parts cell must hold JSON, got %q", row.values[0][6])
	}
	if row.values[0][8] != "500" || row.values[0][9] != "Aberta" {
		t.Fatalf("unexpected order row: %+v", row.values)
	}

	hist := f.updateFor(t, "'Cliente: Ana'!A16:F16")
	if hist.values[0][0] != os.ID || hist.values[0][3] != "Aberta" {
		t.Fatalf("unexpected history row: %+v", hist.values)
	}

	// Aberta does not touch the Financeiro pending list.
	for _, u := range f.updates {
		if u.rng == "Financeiro!A10:E10" {
			t.Fatalf("unexpected financeiro append for an open order")
		}
	}
}

func TestGateway_AddOrdemServicoClienteNaoEncontrado(t *testing.T) {
	f := newFakeRangeClient()
	f.sheets = []interfaces.SheetInfo{{Title: sheetIndice}}
	g := newTestGateway(f)

	_, err := g.AddOrdemServico(context.Background(), entities.OrdemServico{Cliente: "Ana"})
	if !errors.Is(err, interfaces.ErrClienteNaoEncontrado) {
		t.Fatalf("expected ErrClienteNaoEncontrado, got %v", err)
	}
}

func TestGateway_AtualizarStatusOS(t *testing.T) {
	ordensHeader := []string{"ID", "Cliente", "Veículo", "Data", "Problema", "Serviços", "Peças", "Mão de Obra", "Total", "Status", "Atualização"}

	t.Run("into finalizada appends pendente", func(t *testing.T) {
		f := newFakeRangeClient()
		f.sheets = []interfaces.SheetInfo{{Title: "Cliente: Ana"}}
		f.reads["Ordens de Serviço!A:K"] = [][]string{
			ordensHeader,
			{"OS1", "Ana", "Fiat Uno", "2025-04-01", "Barulho", "", "[]", "150", "500", "Aberta", "2025-04-01"},
		}
		f.reads["'Cliente: Ana'!A16:F"] = [][]string{
			{"OS1", "2025-04-01", "Barulho", "Aberta", "500", "2025-04-01"},
		}
		g := newTestGateway(f)

		os, err := g.AtualizarStatusOS(context.Background(), "OS1", entities.OSStatusFinalizada)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if os.Status != entities.OSStatusFinalizada || os.UltimaAtualizacao != "2025-04-02" {
			t.Fatalf("unexpected ordem: %+v", os)
		}

		statusCell := f.updateFor(t, "Ordens de Serviço!J2:K2")
		if statusCell.values[0][0] != "Finalizada" {
			t.Fatalf("unexpected status write: %+v", statusCell.values)
		}

		// History mirror tracks the owner sheet row.
		mirror := f.updateFor(t, "'Cliente: Ana'!D16:F16")
		if mirror.values[0][0] != "Finalizada" {
			t.Fatalf("unexpected mirror write: %+v", mirror.values)
		}

		pend := f.updateFor(t, "Financeiro!A10:E10")
		if pend.values[0][0] != "OS1" || pend.values[0][4] != "Marcar como Paga" {
			t.Fatalf("unexpected pendente row: %+v", pend.values)
		}
	})

	t.Run("already finalizada does not append again", func(t *testing.T) {
		f := newFakeRangeClient()
		f.reads["Ordens de Serviço!A:K"] = [][]string{
			ordensHeader,
			{"OS1", "Ana", "Fiat Uno", "2025-04-01", "Barulho", "", "[]", "150", "500", "Finalizada", "2025-04-01"},
		}
		g := newTestGateway(f)

		if _, err := g.AtualizarStatusOS(context.Background(), "OS1", entities.OSStatusFinalizada); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, u := range f.updates {
			if u.rng == "Financeiro!A10:E10" {
				t.Fatalf("pendente must only be appended on the transition into Finalizada")
			}
		}
	})

	t.Run("paga clears the pendente row", func(t *testing.T) {
		f := newFakeRangeClient()
		f.reads["Ordens de Serviço!A:K"] = [][]string{
			ordensHeader,
			{"OS0", "Bia", "Gol", "2025-03-01", "", "", "[]", "0", "100", "Paga", "2025-03-02"},
			{"OS1", "Ana", "Fiat Uno", "2025-04-01", "Barulho", "", "[]", "150", "500", "Finalizada", "2025-04-01"},
		}
		f.reads["Financeiro!A10:A"] = [][]string{{"OS9"}, {"OS1"}}
		g := newTestGateway(f)

		os, err := g.AtualizarStatusOS(context.Background(), "OS1", entities.OSStatusPaga)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if os.Status != entities.OSStatusPaga {
			t.Fatalf("unexpected status: %s", os.Status)
		}

		// OS1 is the second pending row: row 11.
		if len(f.cleared) != 1 || f.cleared[0] != "Financeiro!A11:E11" {
			t.Fatalf("unexpected clears: %v", f.cleared)
		}
		// The status cell write targets the order's sheet row (header + 2).
		f.updateFor(t, "Ordens de Serviço!J3:K3")
	})

	t.Run("aberta straight to paga", func(t *testing.T) {
		f := newFakeRangeClient()
		f.reads["Ordens de Serviço!A:K"] = [][]string{
			ordensHeader,
			{"OS1", "Ana", "Fiat Uno", "2025-04-01", "Barulho", "", "[]", "150", "500", "Aberta", "2025-04-01"},
		}
		f.reads["Financeiro!A10:A"] = [][]string{{"OS9"}}
		g := newTestGateway(f)

		os, err := g.AtualizarStatusOS(context.Background(), "OS1", entities.OSStatusPaga)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if os.Status != entities.OSStatusPaga {
			t.Fatalf("unexpected status: %s", os.Status)
		}

		f.updateFor(t, "Ordens de Serviço!J2:K2")
		// Skipping Finalizada must not create a pendente entry, and removing a
		// payment that was never listed is a no-op.
		for _, u := range f.updates {
			if strings.HasPrefix(u.rng, "Financeiro!") {
				t.Fatalf("unexpected Financeiro write: %s", u.rng)
			}
		}
		if len(f.cleared) != 0 {
			t.Fatalf("unexpected clears: %v", f.cleared)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFakeRangeClient()
		f.reads["Ordens de Serviço!A:K"] = [][]string{ordensHeader}
		g := newTestGateway(f)

		_, err := g.AtualizarStatusOS(context.Background(), "OS404", entities.OSStatusPaga)
		if !errors.Is(err, interfaces.ErrOSNaoEncontrada) {
			t.Fatalf("expected ErrOSNaoEncontrada, got %v", err)
		}
	})
}

func TestGateway_GetOrdensServico(t *testing.T) {
	f := newFakeRangeClient()
	f.reads["Ordens de Serviço!A:K"] = [][]string{
		{"ID"},
		{"OS1", "Ana", "Fiat Uno", "2025-04-01", "Barulho", "", `[{"nome":"Amortecedor","valor":350}]`, "150", "500", "Aberta", "2025-04-01"},
		{""},
		{"OS2", "Bia", "Gol", "2025-04-02", "", "", "not-json", "50", "50", "Finalizada", "2025-04-02"},
	}
	g := newTestGateway(f)

	t.Run("no filter", func(t *testing.T) {
		ordens, err := g.GetOrdensServico(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ordens) != 2 {
			t.Fatalf("expected 2 ordens, got %d", len(ordens))
		}
		if len(ordens[0].PecasUtilizadas) != 1 || ordens[0].PecasUtilizadas[0].Nome != "Amortecedor" {
			t.Fatalf("unexpected pecas: %+v", ordens[0].PecasUtilizadas)
		}
		// A malformed parts cell degrades to an empty list, never an error.
		if ordens[1].PecasUtilizadas == nil || len(ordens[1].PecasUtilizadas) != 0 {
			t.Fatalf("expected empty pecas for malformed cell, got %+v", ordens[1].PecasUtilizadas)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		ordens, err := g.GetOrdensServico(context.Background(), entities.OSStatusFinalizada)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ordens) != 1 || ordens[0].ID != "OS2" {
			t.Fatalf("unexpected filtered result: %+v", ordens)
		}
	})
}

func TestGateway_GetResumoFinanceiro(t *testing.T) {
	f := newFakeRangeClient()
	f.reads["Financeiro!A3:B6"] = [][]string{
		{"Total OS em Aberto", "1200.5"},
		{"Total OS Finalizadas", "800"},
		{"Faturamento Mês Atual", "301.25"},
		{"Faturamento Mês Anterior", "90"},
	}
	f.reads["Financeiro!A10:D"] = [][]string{
		{"OS1", "Ana", "2025-04-01", "500"},
		{"", "", "", ""},
		{"OS2", "Bia", "2025-04-02", "300"},
	}
	g := newTestGateway(f)

	fin, err := g.GetResumoFinanceiro(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fin.Resumo.TotalOSAberto != 1200.5 || fin.Resumo.FaturamentoMesAtual != 301.25 {
		t.Fatalf("unexpected resumo: %+v", fin.Resumo)
	}
	// Cleared rows leave blanks that must be filtered out.
	if len(fin.OSPendentes) != 2 || fin.OSPendentes[1].Valor != 300 {
		t.Fatalf("unexpected pendentes: %+v", fin.OSPendentes)
	}
}

func TestGateway_VerificarPermissao(t *testing.T) {
	f := newFakeRangeClient()
	g := newTestGateway(f)

	if !g.VerificarPermissao(context.Background()) {
		t.Fatalf("expected permission probe to succeed")
	}
	probe := f.lastUpdate(t)
	if probe.rng != "A1" || probe.values[0][0] != "Teste de permissão" {
		t.Fatalf("unexpected probe write: %+v", probe)
	}

	f.updateErr["A1"] = errors.New("forbidden")
	if g.VerificarPermissao(context.Background()) {
		t.Fatalf("expected permission probe to fail")
	}
}

func TestGateway_CriarPlanilha(t *testing.T) {
	f := newFakeRangeClient()
	f.createdID = "spreadsheet-123"
	g := newTestGateway(f)

	id, err := g.CriarPlanilha(context.Background(), "Oficina do Zé")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "spreadsheet-123" {
		t.Fatalf("unexpected id: %s", id)
	}
	if f.spreadsheetID != "spreadsheet-123" {
		t.Fatalf("gateway must repoint the client at the new spreadsheet")
	}

	wantSheets := []string{sheetIndice, sheetVeiculos, sheetOrdens, sheetFinanceiro}
	if len(f.added) != len(wantSheets) {
		t.Fatalf("expected sheets %v, got %v", wantSheets, f.added)
	}
	for i, w := range wantSheets {
		if f.added[i] != w {
			t.Fatalf("sheet[%d]: want %q got %q", i, w, f.added[i])
		}
	}

	// Summary formulas land in the Financeiro sheet at bootstrap.
	var formulas [][]string
	for _, batch := range f.batches {
		for _, data := range batch {
			if data.Range == "Financeiro!A3:B6" {
				formulas = data.Values
			}
		}
	}
	if len(formulas) != 4 {
		t.Fatalf("expected 4 formula rows, got %+v", formulas)
	}
	for i, row := range formulas {
		if row[1] != financeiroFormulas[i][1] {
			t.Fatalf("formula[%d]: want %q got %q", i, financeiroFormulas[i][1], row[1])
		}
	}
}

func TestGateway_ReadFaultPropagates(t *testing.T) {
	f := newFakeRangeClient()
	f.readErr["Ordens de Serviço!A:K"] = interfaces.ErrSemConexao
	g := newTestGateway(f)

	_, err := g.GetOrdensServico(context.Background(), "")
	if !errors.Is(err, interfaces.ErrSemConexao) {
		t.Fatalf("expected ErrSemConexao, got %v", err)
	}
}

func TestNextRowMath(t *testing.T) {
	f := newFakeRangeClient()
	g := newTestGateway(f)

	cases := []struct {
		rows  int
		start int
		want  int
	}{
		{0, 8, 8},
		{3, 8, 11},
		{0, 1, 1},
		{5, 10, 15},
	}
	for _, tc := range cases {
		rng := fmt.Sprintf("X!A%d:A", tc.start)
		f.reads[rng] = make([][]string, tc.rows)
		got, err := g.nextRow(context.Background(), rng, tc.start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Fatalf("nextRow(%d rows, start %d): want %d got %d", tc.rows, tc.start, tc.want, got)
		}
	}
}
