package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/usecase/interfaces"
)

var (
	ErrClienteInvalido  = errors.New("dados de cliente inválidos")
	ErrVeiculoInvalido  = errors.New("dados de veículo inválidos")
	ErrOrdemInvalida    = errors.New("dados de ordem de serviço inválidos")
	ErrStatusInvalido   = errors.New("status de ordem de serviço inválido")
	ErrPlanilhaInvalida = errors.New("id de planilha inválido")
)

const (
	cacheKeyClientes       = "clientes"
	cacheKeyOrdens         = "ordensServico"
	cacheKeyResumo         = "resumoFinanceiro"
	cacheKeyVeiculosPrefix = "veiculos_"

	spreadsheetIDKey = "oficinafacil_spreadsheet_id"
)

// SyncStatus is the state the UI polls-free host pushes/reads: connectivity,
// drain-in-progress, queued count and the last dismissible soft error.
type SyncStatus struct {
	Online    bool   `json:"online"`
	Syncing   bool   `json:"syncing"`
	Pendentes int    `json:"pendentes"`
	Erro      string `json:"erro,omitempty"`
}

// IOficinaUseCase is the operation surface consumed by the HTTP layer.
//
// Write operations return the authoritative record when online and an
// optimistic pending record when offline. Read operations never fail: on a
// remote fault they fall back to whatever the cache holds (possibly stale or
// empty) and record a soft error retrievable via Status.
type IOficinaUseCase interface {
	SetConnectivity(ctx context.Context, online bool)
	SyncNow(ctx context.Context) entities.ResultadoSync
	Status() SyncStatus
	LimparErro()

	CriarPlanilha(ctx context.Context, nome string) (string, error)
	DefinirPlanilha(id string) error
	VerificarPermissao(ctx context.Context) bool

	AdicionarCliente(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	ObterClientes(ctx context.Context) []entities.Cliente
	AdicionarVeiculo(ctx context.Context, v entities.Veiculo, clienteSheetTitle string) (entities.Veiculo, error)
	ObterVeiculosCliente(ctx context.Context, clienteSheetTitle string) []entities.Veiculo
	AdicionarOrdemServico(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	AtualizarStatusOS(ctx context.Context, osID string, status entities.OSStatus) (entities.OrdemServico, error)
	ObterOrdensServico(ctx context.Context, filtro entities.OSStatus) []entities.OrdemServico
	ObterResumoFinanceiro(ctx context.Context) entities.Financeiro
}

// OficinaUseCase decides, per operation, between applying it against the
// gateway (online) and queueing it with an optimistic cache write (offline),
// and drains the queue when connectivity returns.
type OficinaUseCase struct {
	gateway interfaces.ISheetsGateway
	cache   interfaces.ICacheStore
	queue   interfaces.IPendingQueue
	store   interfaces.ILocalStore
	auth    interfaces.IAuthService
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	online  bool
	syncing bool
	lastErr string
}

var _ IOficinaUseCase = (*OficinaUseCase)(nil)

func NewOficinaUseCase(
	gateway interfaces.ISheetsGateway,
	cache interfaces.ICacheStore,
	queue interfaces.IPendingQueue,
	store interfaces.ILocalStore,
	auth interfaces.IAuthService,
	ttl time.Duration,
) *OficinaUseCase {
	u := &OficinaUseCase{
		gateway: gateway,
		cache:   cache,
		queue:   queue,
		store:   store,
		auth:    auth,
		ttl:     ttl,
		now:     time.Now,
		online:  true,
	}
	if store != nil {
		if b, ok := store.Get(spreadsheetIDKey); ok && len(b) > 0 {
			gateway.Reconfigure(string(b))
		}
	}
	return u
}

// --- connectivity and sync ---

// SetConnectivity is the push notification from the host environment. The
// transition offline -> online triggers a drain when anything is queued.
func (u *OficinaUseCase) SetConnectivity(ctx context.Context, online bool) {
	u.mu.Lock()
	wasOnline := u.online
	u.online = online
	u.mu.Unlock()

	log.Printf("[sync] connectivity changed online=%v", online)
	if online && !wasOnline && u.queue.Count() > 0 {
		u.SyncNow(ctx)
	}
}

// SyncNow drains the pending queue once. A drain already in progress, an
// offline state or a signed-out session make it a no-op.
func (u *OficinaUseCase) SyncNow(ctx context.Context) entities.ResultadoSync {
	u.mu.Lock()
	if u.syncing {
		u.mu.Unlock()
		return entities.ResultadoSync{Success: false, Message: "Sincronização já em andamento"}
	}
	if !u.online {
		u.mu.Unlock()
		return entities.ResultadoSync{Success: false, Message: "Sem conexão com a internet", Pendentes: u.queue.Count()}
	}
	u.syncing = true
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		u.syncing = false
		u.mu.Unlock()
	}()

	if u.auth != nil && !u.auth.SignedIn() {
		return entities.ResultadoSync{Success: false, Message: "Sessão expirada; faça login novamente", Pendentes: u.queue.Count()}
	}
	if u.queue.Count() == 0 {
		return entities.ResultadoSync{Success: true, Message: "Nenhuma operação pendente"}
	}

	res := u.queue.Drain(ctx, u.applyOperacao)
	msg := fmt.Sprintf("%d operações sincronizadas, %d pendentes", res.Succeeded, res.Remaining)
	log.Printf("[sync] drain done %s", msg)
	return entities.ResultadoSync{
		Success:       true,
		Message:       msg,
		Sincronizadas: res.Succeeded,
		Pendentes:     res.Remaining,
	}
}

// applyOperacao replays one queued intent against the gateway.
func (u *OficinaUseCase) applyOperacao(ctx context.Context, op entities.OperacaoPendente) error {
	switch op.Tipo {
	case entities.TipoAddCliente:
		var c entities.Cliente
		if err := decode(op.Dados, &c); err != nil {
			return err
		}
		_, err := u.gateway.AddCliente(ctx, c)
		return err
	case entities.TipoAddVeiculo:
		var p addVeiculoPayload
		if err := decode(op.Dados, &p); err != nil {
			return err
		}
		_, err := u.gateway.AddVeiculo(ctx, p.Dados, p.ClienteSheetTitle)
		return err
	case entities.TipoAddOrdemServico:
		var os entities.OrdemServico
		if err := decode(op.Dados, &os); err != nil {
			return err
		}
		_, err := u.gateway.AddOrdemServico(ctx, os)
		return err
	case entities.TipoAtualizarStatusOS:
		var p atualizarStatusPayload
		if err := decode(op.Dados, &p); err != nil {
			return err
		}
		_, err := u.gateway.AtualizarStatusOS(ctx, p.OSID, p.NovoStatus)
		return err
	default:
		return fmt.Errorf("tipo de operação desconhecido: %s", op.Tipo)
	}
}

func (u *OficinaUseCase) Status() SyncStatus {
	u.mu.Lock()
	defer u.mu.Unlock()
	return SyncStatus{
		Online:    u.online,
		Syncing:   u.syncing,
		Pendentes: u.queue.Count(),
		Erro:      u.lastErr,
	}
}

func (u *OficinaUseCase) LimparErro() {
	u.mu.Lock()
	u.lastErr = ""
	u.mu.Unlock()
}

// --- spreadsheet setup ---

func (u *OficinaUseCase) CriarPlanilha(ctx context.Context, nome string) (string, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return "", ErrPlanilhaInvalida
	}
	id, err := u.gateway.CriarPlanilha(ctx, nome)
	if err != nil {
		u.fail("Falha ao criar planilha. Verifique suas permissões e tente novamente.", err)
		return "", err
	}
	u.persistSpreadsheetID(id)
	return id, nil
}

func (u *OficinaUseCase) DefinirPlanilha(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrPlanilhaInvalida
	}
	u.gateway.Reconfigure(id)
	u.persistSpreadsheetID(id)
	return nil
}

func (u *OficinaUseCase) VerificarPermissao(ctx context.Context) bool {
	ok := u.gateway.VerificarPermissao(ctx)
	if !ok {
		u.fail("Você não tem permissão para editar esta planilha.", nil)
	}
	return ok
}

func (u *OficinaUseCase) persistSpreadsheetID(id string) {
	if u.store == nil {
		return
	}
	if err := u.store.Put(spreadsheetIDKey, []byte(id)); err != nil {
		log.Printf("[sync] spreadsheet id persist failed err=%v", err)
	}
}

// --- clientes ---

func (u *OficinaUseCase) AdicionarCliente(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	c.Nome = strings.TrimSpace(c.Nome)
	if c.Nome == "" {
		return entities.Cliente{}, ErrClienteInvalido
	}

	if !u.isOnline() {
		u.queue.Enqueue(entities.TipoAddCliente, c)
		c.ID = u.genID("CL")
		c.SheetTitle = "Cliente: " + c.Nome
		c.DataCadastro = u.today()
		c.Pendente = true
		u.appendClienteCache(c)
		return c, nil
	}

	res, err := u.gateway.AddCliente(ctx, c)
	if err != nil {
		u.fail("Falha ao adicionar cliente. Tente novamente.", err)
		return entities.Cliente{}, err
	}
	u.appendClienteCache(res)
	return res, nil
}

func (u *OficinaUseCase) ObterClientes(ctx context.Context) []entities.Cliente {
	var clientes []entities.Cliente
	if u.cache.IsFresh(cacheKeyClientes, u.ttl) && u.cache.Get(cacheKeyClientes, &clientes) {
		return clientes
	}
	if !u.isOnline() {
		u.cache.Get(cacheKeyClientes, &clientes)
		return nonNil(clientes)
	}

	res, err := u.gateway.GetClientes(ctx)
	if err != nil {
		u.fail("Falha ao obter clientes. Usando dados em cache, se disponíveis.", err)
		u.cache.Get(cacheKeyClientes, &clientes)
		return nonNil(clientes)
	}
	u.cache.Put(cacheKeyClientes, res)
	return res
}

// --- veículos ---

func (u *OficinaUseCase) AdicionarVeiculo(ctx context.Context, v entities.Veiculo, clienteSheetTitle string) (entities.Veiculo, error) {
	if strings.TrimSpace(v.Placa) == "" || strings.TrimSpace(clienteSheetTitle) == "" {
		return entities.Veiculo{}, ErrVeiculoInvalido
	}

	if !u.isOnline() {
		u.queue.Enqueue(entities.TipoAddVeiculo, addVeiculoPayload{Dados: v, ClienteSheetTitle: clienteSheetTitle})
		v.ID = u.genID("VE")
		v.DataCadastro = u.today()
		v.Pendente = true
		u.appendVeiculoCache(clienteSheetTitle, v)
		return v, nil
	}

	res, err := u.gateway.AddVeiculo(ctx, v, clienteSheetTitle)
	if err != nil {
		u.fail("Falha ao adicionar veículo. Tente novamente.", err)
		return entities.Veiculo{}, err
	}
	u.appendVeiculoCache(clienteSheetTitle, res)
	return res, nil
}

func (u *OficinaUseCase) ObterVeiculosCliente(ctx context.Context, clienteSheetTitle string) []entities.Veiculo {
	key := cacheKeyVeiculosPrefix + clienteSheetTitle
	var veiculos []entities.Veiculo
	if u.cache.IsFresh(key, u.ttl) && u.cache.Get(key, &veiculos) {
		return veiculos
	}
	if !u.isOnline() {
		u.cache.Get(key, &veiculos)
		return nonNil(veiculos)
	}

	res, err := u.gateway.GetVeiculosCliente(ctx, clienteSheetTitle)
	if err != nil {
		u.fail("Falha ao obter veículos. Usando dados em cache, se disponíveis.", err)
		u.cache.Get(key, &veiculos)
		return nonNil(veiculos)
	}
	u.cache.Put(key, res)
	return res
}

// --- ordens de serviço ---

func (u *OficinaUseCase) AdicionarOrdemServico(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	os.Cliente = strings.TrimSpace(os.Cliente)
	if os.Cliente == "" {
		return entities.OrdemServico{}, ErrOrdemInvalida
	}
	if os.Status == "" {
		os.Status = entities.OSStatusAberta
	}
	if os.DataEntrada == "" {
		os.DataEntrada = u.today()
	}
	// The total is an invariant, not caller input.
	os.ValorTotal = entities.CalcularValorTotal(os.PecasUtilizadas, os.ValorMaoObra)

	if !u.isOnline() {
		u.queue.Enqueue(entities.TipoAddOrdemServico, os)
		os.ID = u.genID("OS")
		os.UltimaAtualizacao = u.today()
		os.Pendente = true
		u.appendOrdemCache(os)
		return os, nil
	}

	res, err := u.gateway.AddOrdemServico(ctx, os)
	if err != nil {
		u.fail("Falha ao adicionar ordem de serviço. Tente novamente.", err)
		return entities.OrdemServico{}, err
	}
	u.appendOrdemCache(res)
	return res, nil
}

func (u *OficinaUseCase) AtualizarStatusOS(ctx context.Context, osID string, status entities.OSStatus) (entities.OrdemServico, error) {
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.OrdemServico{}, ErrOrdemInvalida
	}
	switch status {
	case entities.OSStatusAberta, entities.OSStatusFinalizada, entities.OSStatusPaga:
	default:
		return entities.OrdemServico{}, ErrStatusInvalido
	}

	if !u.isOnline() {
		// The intent is queued regardless; the optimistic cache update only
		// succeeds when the order is locally known.
		u.queue.Enqueue(entities.TipoAtualizarStatusOS, atualizarStatusPayload{OSID: osID, NovoStatus: status})

		var ordens []entities.OrdemServico
		u.cache.Get(cacheKeyOrdens, &ordens)
		for i := range ordens {
			if ordens[i].ID != osID {
				continue
			}
			ordens[i].Status = status
			ordens[i].UltimaAtualizacao = u.today()
			ordens[i].Pendente = true
			u.cache.Put(cacheKeyOrdens, ordens)
			return ordens[i], nil
		}
		return entities.OrdemServico{}, interfaces.ErrOSNaoEncontrada
	}

	res, err := u.gateway.AtualizarStatusOS(ctx, osID, status)
	if err != nil {
		u.fail("Falha ao atualizar status da ordem de serviço. Tente novamente.", err)
		return entities.OrdemServico{}, err
	}

	var ordens []entities.OrdemServico
	if u.cache.Get(cacheKeyOrdens, &ordens) {
		for i := range ordens {
			if ordens[i].ID == osID {
				ordens[i] = res
				u.cache.Put(cacheKeyOrdens, ordens)
				break
			}
		}
	}
	return res, nil
}

func (u *OficinaUseCase) ObterOrdensServico(ctx context.Context, filtro entities.OSStatus) []entities.OrdemServico {
	var ordens []entities.OrdemServico
	if u.cache.IsFresh(cacheKeyOrdens, u.ttl) && u.cache.Get(cacheKeyOrdens, &ordens) {
		return filtrarOrdens(ordens, filtro)
	}
	if !u.isOnline() {
		u.cache.Get(cacheKeyOrdens, &ordens)
		return filtrarOrdens(nonNil(ordens), filtro)
	}

	res, err := u.gateway.GetOrdensServico(ctx, filtro)
	if err != nil {
		u.fail("Falha ao obter ordens de serviço. Usando dados em cache, se disponíveis.", err)
		u.cache.Get(cacheKeyOrdens, &ordens)
		return filtrarOrdens(nonNil(ordens), filtro)
	}
	u.cache.Put(cacheKeyOrdens, res)
	return res
}

// --- financeiro ---

func (u *OficinaUseCase) ObterResumoFinanceiro(ctx context.Context) entities.Financeiro {
	var fin entities.Financeiro
	if u.cache.IsFresh(cacheKeyResumo, u.ttl) && u.cache.Get(cacheKeyResumo, &fin) {
		return fin
	}
	if !u.isOnline() {
		u.cache.Get(cacheKeyResumo, &fin)
		return finNonNil(fin)
	}

	res, err := u.gateway.GetResumoFinanceiro(ctx)
	if err != nil {
		u.fail("Falha ao obter resumo financeiro. Usando dados em cache, se disponíveis.", err)
		u.cache.Get(cacheKeyResumo, &fin)
		return finNonNil(fin)
	}
	u.cache.Put(cacheKeyResumo, res)
	return res
}

// --- helpers ---

type addVeiculoPayload struct {
	Dados             entities.Veiculo `json:"dados"`
	ClienteSheetTitle string           `json:"clienteSheetTitle"`
}

type atualizarStatusPayload struct {
	OSID       string            `json:"osId"`
	NovoStatus entities.OSStatus `json:"novoStatus"`
}

func (u *OficinaUseCase) isOnline() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.online
}

func (u *OficinaUseCase) fail(msg string, err error) {
	log.Printf("[sync] %s err=%v", msg, err)
	u.mu.Lock()
	u.lastErr = msg
	u.mu.Unlock()
}

func (u *OficinaUseCase) genID(prefix string) string {
	return prefix + strconv.FormatInt(u.now().UnixMilli(), 10)
}

func (u *OficinaUseCase) today() string {
	return u.now().UTC().Format("2006-01-02")
}

func (u *OficinaUseCase) appendClienteCache(c entities.Cliente) {
	var clientes []entities.Cliente
	u.cache.Get(cacheKeyClientes, &clientes)
	u.cache.Put(cacheKeyClientes, append(clientes, c))
}

func (u *OficinaUseCase) appendVeiculoCache(clienteSheetTitle string, v entities.Veiculo) {
	key := cacheKeyVeiculosPrefix + clienteSheetTitle
	var veiculos []entities.Veiculo
	u.cache.Get(key, &veiculos)
	u.cache.Put(key, append(veiculos, v))
}

func (u *OficinaUseCase) appendOrdemCache(os entities.OrdemServico) {
	var ordens []entities.OrdemServico
	u.cache.Get(cacheKeyOrdens, &ordens)
	u.cache.Put(cacheKeyOrdens, append(ordens, os))
}

func filtrarOrdens(ordens []entities.OrdemServico, filtro entities.OSStatus) []entities.OrdemServico {
	if filtro == "" {
		return ordens
	}
	out := make([]entities.OrdemServico, 0, len(ordens))
	for _, os := range ordens {
		if os.Status == filtro {
			out = append(out, os)
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func finNonNil(fin entities.Financeiro) entities.Financeiro {
	if fin.OSPendentes == nil {
		fin.OSPendentes = []entities.OSPendente{}
	}
	return fin
}

func decode(raw []byte, out any) error {
	return json.Unmarshal(raw, out)
}
