package usecase_test

import (
	"context"
	"sort"

	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/domain/entity"
	"github.com/jnasution/hris-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repositori in-memory untuk unit test use case
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo(employees ...*entity.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	for _, existing := range r.employees {
		if existing.NIK == e.NIK {
			return domain.ErrNIKAlreadyExists
		}
	}
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) ListByOwnerOrCreator(callerID string, limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		if (e.UserID != nil && *e.UserID == callerID) || e.CreatedByID == callerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

type fakePendidikanRepo struct {
	items map[string]*entity.Pendidikan
}

func newFakePendidikanRepo(items ...*entity.Pendidikan) *fakePendidikanRepo {
	r := &fakePendidikanRepo{items: map[string]*entity.Pendidikan{}}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePendidikanRepo) Create(p *entity.Pendidikan) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePendidikanRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Pendidikan, error) {
	p, ok := r.items[id]
	if !ok || p.EmployeeID != employeeID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePendidikanRepo) ListByEmployee(employeeID string) ([]*entity.Pendidikan, error) {
	var out []*entity.Pendidikan
	for _, p := range r.items {
		if p.EmployeeID == employeeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePendidikanRepo) Update(p *entity.Pendidikan) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePendidikanRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePendidikanRepo) DeleteByEmployee(employeeID string) error {
	for id, p := range r.items {
		if p.EmployeeID == employeeID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakePekerjaanRepo struct {
	items map[string]*entity.Pekerjaan
}

func newFakePekerjaanRepo(items ...*entity.Pekerjaan) *fakePekerjaanRepo {
	r := &fakePekerjaanRepo{items: map[string]*entity.Pekerjaan{}}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePekerjaanRepo) Create(p *entity.Pekerjaan) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePekerjaanRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Pekerjaan, error) {
	p, ok := r.items[id]
	if !ok || p.EmployeeID != employeeID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePekerjaanRepo) ListByEmployee(employeeID string) ([]*entity.Pekerjaan, error) {
	var out []*entity.Pekerjaan
	for _, p := range r.items {
		if p.EmployeeID == employeeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePekerjaanRepo) Update(p *entity.Pekerjaan) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePekerjaanRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePekerjaanRepo) DeleteByEmployee(employeeID string) error {
	for id, p := range r.items {
		if p.EmployeeID == employeeID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeKeluargaRepo struct {
	items map[string]*entity.Keluarga
}

func newFakeKeluargaRepo(items ...*entity.Keluarga) *fakeKeluargaRepo {
	r := &fakeKeluargaRepo{items: map[string]*entity.Keluarga{}}
	for _, k := range items {
		r.items[k.ID] = k
	}
	return r
}

func (r *fakeKeluargaRepo) Create(k *entity.Keluarga) error {
	cp := *k
	r.items[k.ID] = &cp
	return nil
}

func (r *fakeKeluargaRepo) GetByIDAndEmployee(id, employeeID string) (*entity.Keluarga, error) {
	k, ok := r.items[id]
	if !ok || k.EmployeeID != employeeID {
		return nil, nil
	}
	cp := *k
	return &cp, nil
}

func (r *fakeKeluargaRepo) ListByEmployee(employeeID string) ([]*entity.Keluarga, error) {
	var out []*entity.Keluarga
	for _, k := range r.items {
		if k.EmployeeID == employeeID {
			cp := *k
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeKeluargaRepo) Update(k *entity.Keluarga) error {
	cp := *k
	r.items[k.ID] = &cp
	return nil
}

func (r *fakeKeluargaRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeKeluargaRepo) DeleteByEmployee(employeeID string) error {
	for id, k := range r.items {
		if k.EmployeeID == employeeID {
			delete(r.items, id)
		}
	}
	return nil
}

// fakeTxRunner menjalankan callback langsung di atas fake repo yang sama,
// tanpa transaksi sungguhan.
type fakeTxRunner struct {
	empRepo  repository.EmployeeRepository
	pendRepo repository.PendidikanRepository
	pekRepo  repository.PekerjaanRepository
	kelRepo  repository.KeluargaRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	empRepo repository.EmployeeRepository,
	pendRepo repository.PendidikanRepository,
	pekRepo repository.PekerjaanRepository,
	kelRepo repository.KeluargaRepository,
) error) error {
	return fn(f.empRepo, f.pendRepo, f.pekRepo, f.kelRepo)
}

// fakeRemover mencatat path yang dihapus.
type fakeRemover struct {
	removed []string
}

func (f *fakeRemover) Remove(publicPath string) error {
	f.removed = append(f.removed, publicPath)
	return nil
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)
var _ usecase.FileRemover = (*fakeRemover)(nil)
