package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/internal/domain/entity"
	stockcalc "github.com/wsuarezb/toolstock-api/internal/domain/inventory"
	"github.com/wsuarezb/toolstock-api/internal/domain/repository"
)

// --- fakes en memoria ---

// memStore estado compartido de los fakes: registro de herramientas + libro.
type memStore struct {
	tools     map[string]*entity.Tool
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{tools: map[string]*entity.Tool{}}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, t := range s.tools {
		cp := *t
		c.tools[id] = &cp
	}
	c.movements = append([]*entity.Movement(nil), s.movements...)
	return c
}

type fakeToolRepo struct{ s *memStore }

func (r *fakeToolRepo) Create(tool *entity.Tool) error {
	for _, t := range r.s.tools {
		if t.PartNumber == tool.PartNumber && eqPtr(t.SerialNumber, tool.SerialNumber) {
			return domain.ErrDuplicate
		}
	}
	cp := *tool
	cp.IsActive = true
	r.s.tools[tool.ID] = &cp
	return nil
}

func (r *fakeToolRepo) GetByID(id string) (*entity.Tool, error) {
	t, ok := r.s.tools[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeToolRepo) GetByIdentity(partNumber string, serialNumber *string) (*entity.Tool, error) {
	for _, t := range r.s.tools {
		if t.PartNumber == partNumber && eqPtr(t.SerialNumber, serialNumber) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeToolRepo) List() ([]*entity.Tool, error) {
	var out []*entity.Tool
	for _, t := range r.s.tools {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeToolRepo) Deactivate(id string) error {
	if t, ok := r.s.tools[id]; ok {
		t.IsActive = false
	}
	return nil
}

func (r *fakeToolRepo) Delete(id string) error {
	delete(r.s.tools, id)
	return nil
}

func (r *fakeToolRepo) DeleteAll() error {
	r.s.tools = map[string]*entity.Tool{}
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Append(m *entity.Movement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByTool(toolID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.ToolID == toolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ExistsImportation(toolID, salesOrder string) (bool, error) {
	for _, m := range r.s.movements {
		if m.ToolID == toolID && m.Type == entity.MovementImportation &&
			m.SalesOrder != nil && *m.SalesOrder == salesOrder {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovementRepo) History(from, to time.Time) ([]*repository.HistoryRow, error) {
	return nil, nil
}

func (r *fakeMovementRepo) Search(f repository.SearchFilter) ([]*repository.SearchRow, error) {
	return nil, nil
}

func (r *fakeMovementRepo) DeleteByTool(toolID string) error {
	var kept []*entity.Movement
	for _, m := range r.s.movements {
		if m.ToolID != toolID {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

func (r *fakeMovementRepo) DeleteAll() error {
	r.s.movements = nil
	return nil
}

// fakeStockRepo deriva con el motor en memoria sobre el libro del fake.
type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) StockInLocation(ctx context.Context, loc entity.Location, f repository.StockFilter) ([]*entity.StockLine, error) {
	return nil, nil
}

func (r *fakeStockRepo) Derived(ctx context.Context, toolID string, well *string) (int, int, int, error) {
	st := stockcalc.Derive(r.s.movements, toolID, well)
	return st.Warehouse, st.Field, st.Installed, nil
}

func (r *fakeStockRepo) FullStockReport(ctx context.Context) ([]*entity.StockReportRow, error) {
	return nil, nil
}

func (r *fakeStockRepo) WarehouseStockReport(ctx context.Context) ([]*entity.StockReportRow, error) {
	return nil, nil
}

// fakeTxRunner simula la semántica todo-o-nada: fn corre sobre una copia del
// estado y la copia solo se publica si fn devuelve nil.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	toolRepo repository.ToolRepository,
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	work := r.s.clone()
	err := fn(&fakeToolRepo{s: work}, &fakeMovementRepo{s: work}, &fakeStockRepo{s: work})
	if err != nil {
		return err
	}
	*r.s = *work
	return nil
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ptr(s string) *string { return &s }

func newTestUseCase() (*UseCase, *memStore) {
	store := newMemStore()
	return NewUseCase(&fakeTxRunner{s: store}), store
}

func seedImportation(t *testing.T, uc *UseCase, items ...ImportationItemInput) {
	t.Helper()
	err := uc.AddImportation(context.Background(), ImportationInput{
		SalesOrder:  "SO-1001",
		Responsible: "C. Rojas",
		Date:        "2025-03-10",
		Items:       items,
	})
	require.NoError(t, err)
}

func serializedItem(pn, sn string) ImportationItemInput {
	return ImportationItemInput{
		PartNumber:   pn,
		SerialNumber: ptr(sn),
		Description:  "Liner Hanger",
		Quantity:     1,
		Application:  entity.ApplicationOpenHole,
		SpecificType: "Hanger",
	}
}

func bulkItem(pn string, qty int) ImportationItemInput {
	return ImportationItemInput{
		PartNumber:   pn,
		Description:  "O-Ring Kit",
		Quantity:     qty,
		Application:  entity.ApplicationMiscellaneous,
		SpecificType: "Kit",
	}
}

// --- importaciones ---

func TestAddImportation_CreaHerramientaYMovimiento(t *testing.T) {
	uc, store := newTestUseCase()

	seedImportation(t, uc, serializedItem("PN-100", "SN-001"), bulkItem("PN-200", 10))

	require.Len(t, store.tools, 2)
	require.Len(t, store.movements, 2)

	repo := &fakeToolRepo{s: store}
	tool, err := repo.GetByIdentity("PN-100", ptr("SN-001"))
	require.NoError(t, err)
	require.NotNil(t, tool)
	assert.Equal(t, entity.CategoryUnique, tool.Category)

	bulk, err := repo.GetByIdentity("PN-200", nil)
	require.NoError(t, err)
	require.NotNil(t, bulk)
	assert.Equal(t, entity.CategoryMiscellaneous, bulk.Category)

	st := stockcalc.Derive(store.movements, bulk.ID, nil)
	assert.Equal(t, 10, st.Warehouse)
}

func TestAddImportation_ReusaHerramientaExistente(t *testing.T) {
	uc, store := newTestUseCase()

	seedImportation(t, uc, bulkItem("PN-200", 10))
	err := uc.AddImportation(context.Background(), ImportationInput{
		SalesOrder:  "SO-1002",
		Responsible: "C. Rojas",
		Date:        "2025-03-11",
		Items:       []ImportationItemInput{bulkItem("PN-200", 5)},
	})
	require.NoError(t, err)

	require.Len(t, store.tools, 1, "el fungible se agrupa por part number")
	repo := &fakeToolRepo{s: store}
	tool, _ := repo.GetByIdentity("PN-200", nil)
	st := stockcalc.Derive(store.movements, tool.ID, nil)
	assert.Equal(t, 15, st.Warehouse)
}

func TestAddImportation_DuplicadaPorOrdenDeVenta(t *testing.T) {
	uc, store := newTestUseCase()

	seedImportation(t, uc, serializedItem("PN-100", "SN-001"))
	err := uc.AddImportation(context.Background(), ImportationInput{
		SalesOrder:  "SO-1001",
		Responsible: "C. Rojas",
		Date:        "2025-03-12",
		Items:       []ImportationItemInput{serializedItem("PN-100", "SN-001")},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateImportation)
	assert.Len(t, store.movements, 1, "la operación fallida no deja rastro")
}

func TestAddImportation_ValidaAntesDeEscribir(t *testing.T) {
	uc, store := newTestUseCase()

	bad := serializedItem("PN-100", "SN-001")
	bad.Quantity = 3 // serializada con cantidad != 1
	err := uc.AddImportation(context.Background(), ImportationInput{
		SalesOrder:  "SO-1001",
		Responsible: "C. Rojas",
		Date:        "2025-03-10",
		Items:       []ImportationItemInput{bulkItem("PN-200", 10), bad},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.movements)
	assert.Empty(t, store.tools)
}

// --- despachos ---

func TestDispatchTools_DescuentaBodega(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, bulkItem("PN-200", 10))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-200", nil)

	err := uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez",
		Date:        "2025-03-15",
		Well:        "Well-A",
		Items:       []DispatchItemInput{{ToolID: tool.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	st := stockcalc.Derive(store.movements, tool.ID, nil)
	assert.Equal(t, 6, st.Warehouse)
	assert.Equal(t, 4, st.Field)
	atWell := stockcalc.Derive(store.movements, tool.ID, ptr("Well-A"))
	assert.Equal(t, 4, atWell.Field)
}

func TestDispatchTools_StockInsuficiente(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, bulkItem("PN-200", 3))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-200", nil)

	err := uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez",
		Date:        "2025-03-15",
		Well:        "Well-A",
		Items: []DispatchItemInput{
			{ToolID: tool.ID, Quantity: 2},
			{ToolID: tool.ID, Quantity: 2}, // segunda línea excede lo disponible
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	st := stockcalc.Derive(store.movements, tool.ID, nil)
	assert.Equal(t, 3, st.Warehouse, "rollback: ninguna línea del despacho quedó en el libro")
	assert.Zero(t, st.Field)
}

func TestDispatchTools_HerramientaInexistente(t *testing.T) {
	uc, _ := newTestUseCase()
	err := uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez",
		Date:        "2025-03-15",
		Well:        "Well-A",
		Items:       []DispatchItemInput{{ToolID: "no-existe", Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// --- retornos ---

func TestReturnTools_ArrastraPozo(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, bulkItem("PN-200", 10))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-200", nil)

	require.NoError(t, uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez", Date: "2025-03-15", Well: "Well-A",
		Items: []DispatchItemInput{{ToolID: tool.ID, Quantity: 6}},
	}))
	require.NoError(t, uc.ReturnTools(context.Background(), ReturnInput{
		Responsible: "M. Pérez", Date: "2025-03-20",
		Items: []ReturnItemInput{{ToolID: tool.ID, Quantity: 4, Well: ptr("Well-A")}},
	}))

	st := stockcalc.Derive(store.movements, tool.ID, nil)
	assert.Equal(t, 8, st.Warehouse)
	assert.Equal(t, 2, st.Field)
	atWell := stockcalc.Derive(store.movements, tool.ID, ptr("Well-A"))
	assert.Equal(t, 2, atWell.Field, "el retorno descuenta del pozo de origen")
}

func TestReturnTools_ExcedeStockEnPozo(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, bulkItem("PN-200", 10))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-200", nil)

	require.NoError(t, uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez", Date: "2025-03-15", Well: "Well-A",
		Items: []DispatchItemInput{{ToolID: tool.ID, Quantity: 3}},
	}))
	err := uc.ReturnTools(context.Background(), ReturnInput{
		Responsible: "M. Pérez", Date: "2025-03-20",
		Items: []ReturnItemInput{{ToolID: tool.ID, Quantity: 5, Well: ptr("Well-A")}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// --- estado en campo ---

func TestUpdateFieldToolStatus_InstalarYRevertir(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, serializedItem("PN-100", "SN-001"))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-100", ptr("SN-001"))

	require.NoError(t, uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez", Date: "2025-03-15", Well: "Well-A",
		Items: []DispatchItemInput{{ToolID: tool.ID, Quantity: 1}},
	}))
	require.NoError(t, uc.UpdateFieldToolStatus(context.Background(), FieldStatusInput{
		ToolID: tool.ID, Status: StatusInstalled,
		Responsible: "M. Pérez", Date: "2025-03-16", Quantity: 1, Well: "Well-A",
	}))

	atWell := stockcalc.Derive(store.movements, tool.ID, ptr("Well-A"))
	assert.Zero(t, atWell.Field)
	assert.Equal(t, 1, atWell.Installed)

	require.NoError(t, uc.UpdateFieldToolStatus(context.Background(), FieldStatusInput{
		ToolID: tool.ID, Status: StatusRevertInstallation,
		Responsible: "M. Pérez", Date: "2025-03-17", Quantity: 1, Well: "Well-A",
	}))
	atWell = stockcalc.Derive(store.movements, tool.ID, ptr("Well-A"))
	assert.Equal(t, 1, atWell.Field)
	assert.Zero(t, atWell.Installed)
}

func TestUpdateFieldToolStatus_InstalarSinStockEnPozo(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, serializedItem("PN-100", "SN-001"))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-100", ptr("SN-001"))

	require.NoError(t, uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez", Date: "2025-03-15", Well: "Well-A",
		Items: []DispatchItemInput{{ToolID: tool.ID, Quantity: 1}},
	}))
	// La herramienta está en Well-A, no en Well-B.
	err := uc.UpdateFieldToolStatus(context.Background(), FieldStatusInput{
		ToolID: tool.ID, Status: StatusInstalled,
		Responsible: "M. Pérez", Date: "2025-03-16", Quantity: 1, Well: "Well-B",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestUpdateFieldToolStatus_DevolverABodega(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, serializedItem("PN-100", "SN-001"))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-100", ptr("SN-001"))

	require.NoError(t, uc.DispatchTools(context.Background(), DispatchInput{
		Responsible: "M. Pérez", Date: "2025-03-15", Well: "Well-A",
		Items: []DispatchItemInput{{ToolID: tool.ID, Quantity: 1}},
	}))
	require.NoError(t, uc.UpdateFieldToolStatus(context.Background(), FieldStatusInput{
		ToolID: tool.ID, Status: StatusReturned,
		Responsible: "M. Pérez", Date: "2025-03-18", Quantity: 1, Well: "Well-A",
	}))

	st := stockcalc.Derive(store.movements, tool.ID, nil)
	assert.Equal(t, 1, st.Warehouse)
	assert.Zero(t, st.Field)
}

// --- administración ---

func TestDeleteTool_Cascada(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, serializedItem("PN-100", "SN-001"), bulkItem("PN-200", 10))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-100", ptr("SN-001"))

	require.NoError(t, uc.DeleteTool(context.Background(), tool.ID))

	assert.Len(t, store.tools, 1)
	for _, m := range store.movements {
		assert.NotEqual(t, tool.ID, m.ToolID, "los movimientos de la herramienta borrada no sobreviven")
	}
}

func TestResetAllData(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, serializedItem("PN-100", "SN-001"), bulkItem("PN-200", 10))

	require.NoError(t, uc.ResetAllData(context.Background()))
	assert.Empty(t, store.tools)
	assert.Empty(t, store.movements)
}

func TestDeactivateTool(t *testing.T) {
	uc, store := newTestUseCase()
	seedImportation(t, uc, serializedItem("PN-100", "SN-001"))
	tool, _ := (&fakeToolRepo{s: store}).GetByIdentity("PN-100", ptr("SN-001"))

	require.NoError(t, uc.DeactivateTool(context.Background(), tool.ID))
	got, _ := (&fakeToolRepo{s: store}).GetByID(tool.ID)
	assert.False(t, got.IsActive)
	assert.Len(t, store.movements, 1, "la baja lógica no toca el historial")
}
