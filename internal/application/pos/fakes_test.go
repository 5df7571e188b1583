package pos_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// fakeStore simula la base de datos en memoria. Su mutex protege todo
// acceso a los mapas (lecturas incluidas), de modo que las pruebas
// concurrentes pasan bajo -race; el snapshot permite rollback cuando la
// función de la tx falla.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	patients map[string]*entity.Patient
	users    map[string]*entity.User
	sales    map[string]*entity.Sale
	lines    map[string][]*entity.SaleLine
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		patients: make(map[string]*entity.Patient),
		users:    make(map[string]*entity.User),
		sales:    make(map[string]*entity.Sale),
		lines:    make(map[string][]*entity.SaleLine),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := newFakeStore()
	for k, v := range s.products {
		c := *v
		snap.products[k] = &c
	}
	for k, v := range s.sales {
		c := *v
		snap.sales[k] = &c
	}
	for k, v := range s.lines {
		cp := make([]*entity.SaleLine, len(v))
		for i, l := range v {
			c := *l
			cp[i] = &c
		}
		snap.lines[k] = cp
	}
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snap.products
	s.sales = snap.sales
	s.lines = snap.lines
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *p
	r.store.products[p.ID] = &c
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *p
	r.store.products[p.ID] = &c
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stockLevel int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if p, ok := r.store.products[productID]; ok {
		p.StockLevel = stockLevel
	}
	return nil
}

func (r *fakeProductRepo) List(_ repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	list := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		c := *p
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.products, id)
	return nil
}

// ── PatientRepository ─────────────────────────────────────────────────────────

type fakePatientRepo struct{ store *fakeStore }

var _ repository.PatientRepository = (*fakePatientRepo)(nil)

func (r *fakePatientRepo) Create(p *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *p
	r.store.patients[p.ID] = &c
	return nil
}

func (r *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.patients[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakePatientRepo) Update(p *entity.Patient) error { return r.Create(p) }

func (r *fakePatientRepo) List(_, _ int) ([]*entity.Patient, error) { return nil, nil }

func (r *fakePatientRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.patients, id)
	return nil
}

// ── UserRepository ────────────────────────────────────────────────────────────

type fakeUserRepo struct{ store *fakeStore }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *u
	r.store.users[u.ID] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) GetByEmail(_ string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error               { return r.Create(u) }
func (r *fakeUserRepo) List(_, _ int) ([]*entity.User, error)     { return nil, nil }
func (r *fakeUserRepo) Delete(_ string) error                     { return nil }

// ── SaleRepository ────────────────────────────────────────────────────────────

type fakeSaleRepo struct{ store *fakeStore }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *sale
	r.store.sales[sale.ID] = &c
	return nil
}

func (r *fakeSaleRepo) CreateLine(line *entity.SaleLine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *line
	r.store.lines[line.SaleID] = append(r.store.lines[line.SaleID], &c)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *fakeSaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	src := r.store.lines[saleID]
	out := make([]*entity.SaleLine, len(src))
	for i, l := range src {
		c := *l
		out[i] = &c
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNo < out[j].LineNo })
	return out, nil
}

func (r *fakeSaleRepo) List(_, _ int) ([]*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	list := make([]*entity.Sale, 0, len(r.store.sales))
	for _, s := range r.store.sales {
		c := *s
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeSaleRepo) UpdateStatus(saleID, status, paymentMethod string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if s, ok := r.store.sales[saleID]; ok {
		s.Status = status
		s.PaymentMethod = paymentMethod
	}
	return nil
}

// ── SaleTxRunner ──────────────────────────────────────────────────────────────

// fakeTxRunner serializa las transacciones con su propio mutex (los repos
// toman store.mu por operación) y restaura el snapshot si fn falla,
// reproduciendo el commit/rollback de la transacción real.
type fakeTxRunner struct {
	txMu  sync.Mutex
	store *fakeStore
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(&fakeProductRepo{store: r.store}, &fakeSaleRepo{store: r.store}); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
