package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"dentalflow-backend/models"
	"dentalflow-backend/repositories"
)

// memStore is an in-memory primary-key store shared by the fakes below.
type memStore[T any] struct {
	rows map[uint]T
	next uint
	id   func(*T) *uint
}

func newMem[T any](id func(*T) *uint) *memStore[T] {
	return &memStore[T]{rows: map[uint]T{}, id: id}
}

func (m *memStore[T]) Get(_ context.Context, id uint) (*T, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &r, nil
}

func (m *memStore[T]) Create(_ context.Context, v *T) error {
	m.next++
	*m.id(v) = m.next
	m.rows[m.next] = *v
	return nil
}

func (m *memStore[T]) Update(_ context.Context, v *T) error {
	id := *m.id(v)
	if _, ok := m.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	m.rows[id] = *v
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id uint) error {
	if _, ok := m.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memStore[T]) all() []T {
	ids := make([]uint, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out
}

type fakePatients struct{ *memStore[models.Patient] }

func newFakePatients() fakePatients {
	return fakePatients{newMem(func(p *models.Patient) *uint { return &p.ID })}
}

func (f fakePatients) List(_ context.Context, flt repositories.PatientFilter) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range f.all() {
		if flt.DentistID != nil && (p.DentistID == nil || *p.DentistID != *flt.DentistID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeDentists struct{ *memStore[models.Dentist] }

func newFakeDentists() fakeDentists {
	return fakeDentists{newMem(func(d *models.Dentist) *uint { return &d.ID })}
}

func (f fakeDentists) List(context.Context) ([]models.Dentist, error) { return f.all(), nil }

type fakeCases struct{ *memStore[models.Case] }

func newFakeCases() fakeCases {
	return fakeCases{newMem(func(c *models.Case) *uint { return &c.ID })}
}

func (f fakeCases) List(_ context.Context, flt repositories.CaseFilter) ([]models.Case, error) {
	var out []models.Case
	for _, c := range f.all() {
		if flt.Status != "" && c.Status != flt.Status {
			continue
		}
		if flt.DentistID != nil && c.DentistID != *flt.DentistID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f fakeCases) NumberExists(_ context.Context, number string) (bool, error) {
	for _, c := range f.rows {
		if c.CaseNumber == number {
			return true, nil
		}
	}
	return false, nil
}

type fakeInvoices struct {
	*memStore[models.Invoice]
	itemSeq uint
}

func newFakeInvoices() *fakeInvoices {
	return &fakeInvoices{memStore: newMem(func(i *models.Invoice) *uint { return &i.ID })}
}

func (f *fakeInvoices) List(_ context.Context, flt repositories.InvoiceFilter) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.all() {
		if flt.Status != "" && inv.Status != flt.Status {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoices) Save(ctx context.Context, inv *models.Invoice) error {
	if inv.ID == 0 {
		inv.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		if err := f.Create(ctx, inv); err != nil {
			return err
		}
	}
	items := make([]models.InvoiceItem, len(inv.Items))
	for i, it := range inv.Items {
		f.itemSeq++
		it.ID = f.itemSeq
		it.InvoiceID = inv.ID
		items[i] = it
	}
	inv.Items = items
	return f.Update(ctx, inv)
}

func (f *fakeInvoices) NumberExists(_ context.Context, number string) (bool, error) {
	for _, inv := range f.rows {
		if inv.InvoiceNumber == number {
			return true, nil
		}
	}
	return false, nil
}

type fakeUsers struct{ *memStore[models.User] }

func newFakeUsers() fakeUsers {
	return fakeUsers{newMem(func(u *models.User) *uint { return &u.ID })}
}

func (f fakeUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.rows {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeMessages struct{ *memStore[models.Message] }

func newFakeMessages() fakeMessages {
	return fakeMessages{newMem(func(m *models.Message) *uint { return &m.ID })}
}

func (f fakeMessages) ListByCase(_ context.Context, caseID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.all() {
		if m.CaseID == caseID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f fakeMessages) ListByReceiver(_ context.Context, receiverID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.all() {
		if m.ReceiverID == receiverID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeContacts struct{ *memStore[models.Contact] }

func newFakeContacts() fakeContacts {
	return fakeContacts{newMem(func(c *models.Contact) *uint { return &c.ID })}
}

func (f fakeContacts) List(context.Context) ([]models.Contact, error) { return f.all(), nil }

type fakeTokens struct{}

func (fakeTokens) Issue(username, role string) (string, error) {
	return "token-" + username + "-" + role, nil
}

// fakeReports returns canned rows and records the windows it was asked for.
type fakeReports struct {
	summary   repositories.InvoiceSummaryRow
	revenue   []repositories.MonthTotal
	top       []repositories.DentistTotals
	byStatus  []repositories.StatusCount
	today     time.Time
	since     time.Time
	lastLimit int
}

func (f *fakeReports) InvoiceSummary(_ context.Context, today time.Time) (repositories.InvoiceSummaryRow, error) {
	f.today = today
	return f.summary, nil
}

func (f *fakeReports) MonthlyRevenue(_ context.Context, since time.Time) ([]repositories.MonthTotal, error) {
	f.since = since
	var out []repositories.MonthTotal
	for _, r := range f.revenue {
		if r.Year > since.Year() || (r.Year == since.Year() && r.Month >= int(since.Month())) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReports) TopDentistsByInvoiceCount(_ context.Context, limit int) ([]repositories.DentistTotals, error) {
	f.lastLimit = limit
	return f.top, nil
}

func (f *fakeReports) TopDentistsByRevenue(_ context.Context, since time.Time, limit int) ([]repositories.DentistTotals, error) {
	f.since, f.lastLimit = since, limit
	return f.top, nil
}

func (f *fakeReports) TopDentistsByCaseCount(_ context.Context, since time.Time, limit int) ([]repositories.DentistTotals, error) {
	f.since, f.lastLimit = since, limit
	return f.top, nil
}

func (f *fakeReports) CaseCountsByStatus(_ context.Context, since time.Time) ([]repositories.StatusCount, error) {
	f.since = since
	return f.byStatus, nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func uintPtr(v uint) *uint { return &v }

type fakeAppointments struct{ *memStore[models.Appointment] }

func (f fakeAppointments) List(_ context.Context, flt repositories.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.all() {
		if flt.DentistID != nil && a.DentistID != *flt.DentistID {
			continue
		}
		if flt.PatientID != nil && a.PatientID != *flt.PatientID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
