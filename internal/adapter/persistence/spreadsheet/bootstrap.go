package spreadsheet

import (
	"context"
	"fmt"

	"oficina_facil/internal/usecase/interfaces"
)

// The four summary cells are formula-maintained by the spreadsheet itself;
// this system only writes them once at bootstrap and reads computed values
// back afterwards.
var financeiroFormulas = [][]string{
	{"Total OS em Aberto", `=SUMIF('Ordens de Serviço'!J:J,"Aberta",'Ordens de Serviço'!I:I)`},
	{"Total OS Finalizadas", `=SUMIF('Ordens de Serviço'!J:J,"Finalizada",'Ordens de Serviço'!I:I)`},
	{"Faturamento Mês Atual", `=SUMIFS('Ordens de Serviço'!I:I,'Ordens de Serviço'!J:J,"Paga",'Ordens de Serviço'!D:D,">="&TEXT(DATE(YEAR(TODAY()),MONTH(TODAY()),1),"yyyy-mm-dd"))`},
	{"Faturamento Mês Anterior", `=SUMIFS('Ordens de Serviço'!I:I,'Ordens de Serviço'!J:J,"Paga",'Ordens de Serviço'!D:D,">="&TEXT(DATE(YEAR(TODAY()),MONTH(TODAY())-1,1),"yyyy-mm-dd"),'Ordens de Serviço'!D:D,"<"&TEXT(DATE(YEAR(TODAY()),MONTH(TODAY()),1),"yyyy-mm-dd"))`},
}

// bootstrap provisions the Índice sheet and the three functional sheets on
// a fresh spreadsheet, with headers and the Financeiro summary formulas.
func (g *Gateway) bootstrap(ctx context.Context) error {
	if _, err := g.client.AddSheet(ctx, sheetIndice, 1000, 10); err != nil {
		return err
	}
	err := g.client.BatchUpdateValues(ctx, []interfaces.ValueData{
		{Range: rangeOf(sheetIndice, "A1:B1"), Values: [][]string{{"OficinaFácil Gratuito - Versão 2.0"}}},
		{Range: rangeOf(sheetIndice, "A3:B3"), Values: [][]string{{"Lista de Clientes", "Ação"}}},
		{Range: rangeOf(sheetIndice, "A6:B6"), Values: [][]string{{"Funções do Sistema", "Ação"}}},
		{Range: rangeOf(sheetIndice, "A7:A9"), Values: [][]string{{"Veículos"}, {"Ordens de Serviço"}, {"Financeiro"}}},
	})
	if err != nil {
		return err
	}

	veiculos, err := g.client.AddSheet(ctx, sheetVeiculos, 1000, 10)
	if err != nil {
		return err
	}
	err = g.client.UpdateRange(ctx, rangeOf(sheetVeiculos, "A1:G1"), [][]string{
		{"ID", "Cliente", "Marca", "Modelo", "Ano", "Placa", "Data Cadastro"},
	})
	if err != nil {
		return err
	}

	ordens, err := g.client.AddSheet(ctx, sheetOrdens, 1000, 15)
	if err != nil {
		return err
	}
	err = g.client.UpdateRange(ctx, rangeOf(sheetOrdens, "A1:K1"), [][]string{
		{"ID", "Cliente", "Veículo", "Data Entrada", "Descrição", "Serviços", "Peças", "Mão de Obra", "Valor Total", "Status", "Última Atualização"},
	})
	if err != nil {
		return err
	}

	financeiro, err := g.client.AddSheet(ctx, sheetFinanceiro, 1000, 10)
	if err != nil {
		return err
	}
	err = g.client.BatchUpdateValues(ctx, []interfaces.ValueData{
		{Range: rangeOf(sheetFinanceiro, "A1:B1"), Values: [][]string{{"Resumo Financeiro"}}},
		{Range: rangeOf(sheetFinanceiro, "A3:B6"), Values: financeiroFormulas},
		{Range: rangeOf(sheetFinanceiro, "A8:B8"), Values: [][]string{{"OS Pendentes de Pagamento"}}},
		{Range: rangeOf(sheetFinanceiro, "A9:E9"), Values: [][]string{{"ID", "Cliente", "Data", "Valor", "Ação"}}},
	})
	if err != nil {
		return err
	}

	// Navigation links back in the index.
	links := [][]string{
		{fmt.Sprintf(`=HYPERLINK("#gid=%d","Abrir")`, veiculos.ID)},
		{fmt.Sprintf(`=HYPERLINK("#gid=%d","Abrir")`, ordens.ID)},
		{fmt.Sprintf(`=HYPERLINK("#gid=%d","Abrir")`, financeiro.ID)},
	}
	return g.client.UpdateRange(ctx, rangeOf(sheetIndice, "B7:B9"), links)
}
