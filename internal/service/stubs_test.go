package service

import (
	"context"
	"errors"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. Tx-variant methods ignore the tx handle: runTx
// passes nil when no database is wired, so services exercise the same code
// path as production.

type stubMaterialRepo struct {
	materials map[uuid.UUID]*model.RawMaterial
	listErr   error
}

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

func newStubMaterialRepo() *stubMaterialRepo {
	return &stubMaterialRepo{materials: make(map[uuid.UUID]*model.RawMaterial)}
}

func (s *stubMaterialRepo) add(name string, unitPrice decimal.Decimal) uuid.UUID {
	id := uuid.New()
	s.materials[id] = &model.RawMaterial{ID: id, Name: name, UnitPrice: unitPrice, Warehouse: "main"}
	return id
}

func (s *stubMaterialRepo) Create(ctx context.Context, m *model.RawMaterial) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	s.materials[m.ID] = m
	return nil
}

func (s *stubMaterialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RawMaterial, error) {
	m, ok := s.materials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (s *stubMaterialRepo) List(ctx context.Context, filter dto.MaterialFilter) ([]model.RawMaterial, int64, error) {
	var out []model.RawMaterial
	for _, m := range s.materials {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (s *stubMaterialRepo) ListAll(ctx context.Context) ([]model.RawMaterial, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.RawMaterial
	for _, m := range s.materials {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubMaterialRepo) Update(ctx context.Context, m *model.RawMaterial) error {
	s.materials[m.ID] = m
	return nil
}

func (s *stubMaterialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.materials, id)
	return nil
}

func (s *stubMaterialRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.materials)), nil
}

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (s *stubProductRepo) add(name string) uuid.UUID {
	id := uuid.New()
	s.products[id] = &model.Product{ID: id, Name: name, Unit: "unit"}
	return id
}

func (s *stubProductRepo) Create(ctx context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	s.products[p.ID] = p
	return nil
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubProductRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *stubProductRepo) Update(ctx context.Context, p *model.Product) error {
	s.products[p.ID] = p
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.products, id)
	return nil
}

func (s *stubProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

type stubRecipeRepo struct {
	recipes map[uuid.UUID]*model.Recipe
}

var _ repository.RecipeRepository = (*stubRecipeRepo)(nil)

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[uuid.UUID]*model.Recipe)}
}

func (s *stubRecipeRepo) Create(ctx context.Context, rec *model.Recipe) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	s.recipes[rec.ID] = rec
	return nil
}

func (s *stubRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	rec, ok := s.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (s *stubRecipeRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Recipe, error) {
	for _, rec := range s.recipes {
		if rec.ProductID == productID {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRecipeRepo) List(ctx context.Context) ([]model.Recipe, int64, error) {
	var out []model.Recipe
	for _, rec := range s.recipes {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (s *stubRecipeRepo) Replace(ctx context.Context, rec *model.Recipe) error {
	rec.UpdatedAt = time.Now()
	s.recipes[rec.ID] = rec
	return nil
}

func (s *stubRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.recipes, id)
	return nil
}

type stubProductionRepo struct {
	plans map[uuid.UUID]*model.ProductionPlan
}

var _ repository.ProductionRepository = (*stubProductionRepo)(nil)

func newStubProductionRepo() *stubProductionRepo {
	return &stubProductionRepo{plans: make(map[uuid.UUID]*model.ProductionPlan)}
}

func (s *stubProductionRepo) Create(ctx context.Context, p *model.ProductionPlan) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	s.plans[p.ID] = p
	return nil
}

func (s *stubProductionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductionPlan, error) {
	p, ok := s.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubProductionRepo) List(ctx context.Context, filter dto.ProductionPlanFilter) ([]model.ProductionPlan, int64, error) {
	var out []model.ProductionPlan
	for _, p := range s.plans {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *stubProductionRepo) Update(ctx context.Context, p *model.ProductionPlan) error {
	s.plans[p.ID] = p
	return nil
}

func (s *stubProductionRepo) SumBatchCostByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range s.plans {
		if p.Status == status {
			sum = sum.Add(p.BatchCost)
		}
	}
	return sum, nil
}

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.SaleInvoice
	next     int64
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.SaleInvoice)}
}

func (s *stubInvoiceRepo) CreateTx(tx *gorm.DB, inv *model.SaleInvoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now()
	s.invoices[inv.ID] = inv
	return nil
}

func (s *stubInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SaleInvoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (s *stubInvoiceRepo) List(ctx context.Context, filter dto.InvoiceFilter) ([]model.SaleInvoice, int64, error) {
	var out []model.SaleInvoice
	for _, inv := range s.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (s *stubInvoiceRepo) UpdatePaymentStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	inv, ok := s.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.PaymentStatus = status
	return nil
}

func (s *stubInvoiceRepo) NextInvoiceNumber(ctx context.Context, tx *gorm.DB) (int64, error) {
	s.next++
	return s.next, nil
}

func (s *stubInvoiceRepo) SumTotalByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, inv := range s.invoices {
		if inv.PaymentStatus == status {
			sum = sum.Add(inv.TotalAmount)
		}
	}
	return sum, nil
}

func (s *stubInvoiceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.invoices)), nil
}

func (s *stubInvoiceRepo) DB() *gorm.DB { return nil }

type stubReceivableRepo struct {
	receivables map[uuid.UUID]*model.Receivable // keyed by invoice ID
}

var _ repository.ReceivableRepository = (*stubReceivableRepo)(nil)

func newStubReceivableRepo() *stubReceivableRepo {
	return &stubReceivableRepo{receivables: make(map[uuid.UUID]*model.Receivable)}
}

func (s *stubReceivableRepo) CreateTx(tx *gorm.DB, rec *model.Receivable) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	s.receivables[rec.InvoiceID] = rec
	return nil
}

func (s *stubReceivableRepo) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*model.Receivable, error) {
	rec, ok := s.receivables[invoiceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (s *stubReceivableRepo) List(ctx context.Context, status string) ([]model.Receivable, error) {
	var out []model.Receivable
	for _, rec := range s.receivables {
		if status == "" || status == "all" || rec.Status == status {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *stubReceivableRepo) UpdateStatusTx(tx *gorm.DB, invoiceID uuid.UUID, status string) error {
	if rec, ok := s.receivables[invoiceID]; ok {
		rec.Status = status
	}
	return nil
}

func (s *stubReceivableRepo) SumPending(ctx context.Context) (decimal.Decimal, int64, error) {
	sum := decimal.Zero
	var count int64
	for _, rec := range s.receivables {
		if rec.Status == model.PaymentPending {
			sum = sum.Add(rec.Amount)
			count++
		}
	}
	return sum, count, nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (s *stubUserRepo) Create(ctx context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, u *model.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) SetActiveTx(tx *gorm.DB, id uuid.UUID, active bool) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = active
	return nil
}

func (s *stubUserRepo) DB() *gorm.DB { return nil }

type stubStaffRepo struct {
	requests map[uuid.UUID]*model.StaffRequest
}

var _ repository.StaffRequestRepository = (*stubStaffRepo)(nil)

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{requests: make(map[uuid.UUID]*model.StaffRequest)}
}

func (s *stubStaffRepo) Create(ctx context.Context, sr *model.StaffRequest) error {
	if sr.ID == uuid.Nil {
		sr.ID = uuid.New()
	}
	sr.CreatedAt = time.Now()
	s.requests[sr.ID] = sr
	return nil
}

func (s *stubStaffRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StaffRequest, error) {
	sr, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sr, nil
}

func (s *stubStaffRepo) List(ctx context.Context, status string) ([]model.StaffRequest, int64, error) {
	var out []model.StaffRequest
	for _, sr := range s.requests {
		if status == "" || status == "all" || sr.Status == status {
			out = append(out, *sr)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubStaffRepo) UpdateTx(tx *gorm.DB, sr *model.StaffRequest) error {
	s.requests[sr.ID] = sr
	return nil
}

func (s *stubStaffRepo) DB() *gorm.DB { return nil }

// recordingNotifier captures emitted events; failingNotifier always errors,
// proving mutations survive a dead notification channel.

type recordingNotifier struct {
	events []dto.NotificationEvent
}

func (n *recordingNotifier) Notify(ctx context.Context, ev dto.NotificationEvent) error {
	n.events = append(n.events, ev)
	return nil
}

type failingNotifier struct{}

func (failingNotifier) Notify(ctx context.Context, ev dto.NotificationEvent) error {
	return errors.New("notification channel down")
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
