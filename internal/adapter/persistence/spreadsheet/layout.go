package spreadsheet

import (
	"fmt"
	"strings"
)

// Fixed layout convention of the backing spreadsheet. Every offset below is
// part of the storage contract: appends compute their target row from the
// current extent of the column listed here (read-then-write, no locking).
const (
	sheetIndice     = "Índice"
	sheetVeiculos   = "Veículos"
	sheetOrdens     = "Ordens de Serviço"
	sheetFinanceiro = "Financeiro"

	clienteSheetPrefix = "Cliente: "

	// Customer sheet: identity record row, first vehicle row, first
	// service-order history row.
	clienteIdentityRow    = 4
	clienteVeiculoStart   = 8
	clienteHistoricoStart = 16

	// Financeiro sheet: first pending-payment row.
	financeiroPendentesStart = 10

	pendentePagamentoAcao = "Marcar como Paga"
)

func clienteSheetTitle(nome string) string {
	return clienteSheetPrefix + nome
}

func isClienteSheet(title string) bool {
	return strings.HasPrefix(title, clienteSheetPrefix)
}

// quoted wraps a sheet title for A1 notation; customer titles carry spaces
// and a colon.
func quoted(title string) string {
	return "'" + title + "'"
}

func rangeOf(sheet string, cells string) string {
	return fmt.Sprintf("%s!%s", sheet, cells)
}
