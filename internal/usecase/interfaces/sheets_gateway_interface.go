package interfaces

import (
	"context"
	"errors"

	"oficina_facil/internal/domain/entities"
)

// Contract errors shared by gateway implementations. Anything else coming
// out of the gateway is a generic remote-storage fault.
var (
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrOSNaoEncontrada      = errors.New("ordem de serviço não encontrada")
	ErrSemConexao           = errors.New("sem conexão com o armazenamento remoto")
	ErrNaoAutenticado       = errors.New("sessão google inválida ou expirada")
)

// ISheetsGateway maps domain operations onto fixed cell ranges of one
// spreadsheet. Multi-range operations are applied strictly in order with no
// transactional guarantee: a failure mid-sequence leaves earlier writes in
// place (accepted, documented inconsistency risk).
type ISheetsGateway interface {
	// AddCliente creates the customer's sheet and writes the identity
	// record. Creation is not idempotent: two calls with the same name
	// create two sheets.
	AddCliente(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	// GetClientes discovers customer sheets by title convention; sheets
	// without a populated identity record are skipped.
	GetClientes(ctx context.Context) ([]entities.Cliente, error)

	AddVeiculo(ctx context.Context, v entities.Veiculo, clienteSheetTitle string) (entities.Veiculo, error)
	GetVeiculosCliente(ctx context.Context, clienteSheetTitle string) ([]entities.Veiculo, error)

	AddOrdemServico(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	AtualizarStatusOS(ctx context.Context, osID string, status entities.OSStatus) (entities.OrdemServico, error)
	// GetOrdensServico reads the whole orders sheet; filtroStatus "" means
	// no filter.
	GetOrdensServico(ctx context.Context, filtroStatus entities.OSStatus) ([]entities.OrdemServico, error)

	GetResumoFinanceiro(ctx context.Context) (entities.Financeiro, error)

	// VerificarPermissao probes write access with a harmless single-cell
	// write; any failure reads as "no permission".
	VerificarPermissao(ctx context.Context) bool

	// CriarPlanilha creates and bootstraps a new spreadsheet and repoints
	// the gateway at it.
	CriarPlanilha(ctx context.Context, nome string) (string, error)
	Reconfigure(spreadsheetID string)
}
