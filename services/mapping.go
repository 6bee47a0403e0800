package services

import (
	"strconv"
	"strings"
	"time"

	"dentalflow-backend/dtos"
	"dentalflow-backend/models"

	"gorm.io/datatypes"
)

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dtos.DateLayout)
}

func formatOptionalDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return formatDate(*d)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dtos.TimestampLayout)
}

func parseDate(field, s string) (datatypes.Date, error) {
	t, err := time.Parse(dtos.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return datatypes.Date(t), nil
}

func parseOptionalDate(field, s string) (*datatypes.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseTimeOfDay accepts HH:MM:SS and HH:MM.
func parseTimeOfDay(field, s string) (datatypes.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{dtos.TimeLayout, dtos.ShortTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, invalid(field, "must be a time in HH:MM:SS format")
}

// Patients and dentists

func toPatientDTO(p *models.Patient) dtos.Patient {
	out := dtos.Patient{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		DentistID: p.DentistID,
		CreatedAt: formatTimestamp(p.CreatedAt),
		UpdatedAt: formatTimestamp(p.UpdatedAt),
	}
	if p.Dentist != nil {
		out.DentistName = p.Dentist.FullName()
	}
	return out
}

func applyPatient(in dtos.Patient, p *models.Patient) {
	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.Email = strings.TrimSpace(in.Email)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Address = strings.TrimSpace(in.Address)
	p.DentistID = in.DentistID
}

func toDentistDTO(d *models.Dentist) dtos.Dentist {
	return dtos.Dentist{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		CreatedAt: formatTimestamp(d.CreatedAt),
		UpdatedAt: formatTimestamp(d.UpdatedAt),
	}
}

func applyDentist(in dtos.Dentist, d *models.Dentist) {
	d.FirstName = strings.TrimSpace(in.FirstName)
	d.LastName = strings.TrimSpace(in.LastName)
	d.Email = strings.TrimSpace(in.Email)
	d.Phone = strings.TrimSpace(in.Phone)
	d.Address = strings.TrimSpace(in.Address)
}

// Appointments

func toAppointmentDTO(a *models.Appointment) dtos.Appointment {
	out := dtos.Appointment{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DentistID:       a.DentistID,
		AppointmentDate: formatDate(a.AppointmentDate),
		AppointmentTime: a.AppointmentTime.String(),
		AppointmentType: a.AppointmentType,
		Notes:           a.Notes,
		Status:          a.Status,
		CaseID:          a.CaseID,
		CreatedAt:       formatTimestamp(a.CreatedAt),
		UpdatedAt:       formatTimestamp(a.UpdatedAt),
	}
	if a.Patient != nil {
		out.PatientName = a.Patient.FullName()
	}
	if a.Dentist != nil {
		out.DentistName = a.Dentist.FullName()
	}
	if a.Case != nil {
		out.CaseName = a.Case.Title
	}
	return out
}

func applyAppointment(in dtos.Appointment, a *models.Appointment) error {
	date, err := parseDate("appointmentDate", in.AppointmentDate)
	if err != nil {
		return err
	}
	at, err := parseTimeOfDay("appointmentTime", in.AppointmentTime)
	if err != nil {
		return err
	}
	a.PatientID = in.PatientID
	a.DentistID = in.DentistID
	a.AppointmentDate = date
	a.AppointmentTime = at
	a.AppointmentType = strings.TrimSpace(in.AppointmentType)
	a.Notes = in.Notes
	a.Status = strings.TrimSpace(in.Status)
	a.CaseID = in.CaseID
	return nil
}

// Cases

func toCaseDTO(c *models.Case) dtos.Case {
	out := dtos.Case{
		ID:          c.ID,
		CaseNumber:  c.CaseNumber,
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
		Priority:    c.Priority,
		PatientID:   c.PatientID,
		DentistID:   c.DentistID,
		DueDate:     formatOptionalDate(c.DueDate),
		CreatedAt:   formatTimestamp(c.CreatedAt),
		UpdatedAt:   formatTimestamp(c.UpdatedAt),
	}
	if c.Patient != nil {
		out.PatientName = c.Patient.FullName()
	}
	if c.Dentist != nil {
		out.DentistName = c.Dentist.FullName()
	}
	return out
}

func applyCase(in dtos.Case, c *models.Case) error {
	due, err := parseOptionalDate("dueDate", in.DueDate)
	if err != nil {
		return err
	}
	c.Title = strings.TrimSpace(in.Title)
	c.Description = in.Description
	c.Status = strings.TrimSpace(in.Status)
	c.Priority = strings.TrimSpace(in.Priority)
	c.PatientID = in.PatientID
	c.DentistID = in.DentistID
	c.DueDate = due
	return nil
}

// Invoices

func toInvoiceDTO(inv *models.Invoice) dtos.Invoice {
	tax := inv.Tax
	out := dtos.Invoice{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		PatientID:     inv.PatientID,
		DentistID:     inv.DentistID,
		CaseID:        inv.CaseID,
		Amount:        inv.Amount,
		Tax:           &tax,
		Total:         inv.Total,
		Notes:         inv.Notes,
		IssueDate:     formatDate(inv.IssueDate),
		DueDate:       formatDate(inv.DueDate),
		PaidDate:      formatOptionalDate(inv.PaidDate),
		Items:         make([]dtos.InvoiceItem, 0, len(inv.Items)),
		CreatedAt:     formatTimestamp(inv.CreatedAt),
		UpdatedAt:     formatTimestamp(inv.UpdatedAt),
	}
	if inv.Patient != nil {
		out.PatientName = inv.Patient.FullName()
	}
	if inv.Dentist != nil {
		out.DentistName = inv.Dentist.FullName()
	}
	for _, it := range inv.Items {
		out.Items = append(out.Items, dtos.InvoiceItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	return out
}

// applyInvoice copies header fields; items and totals go through ApplyItems.
func applyInvoice(in dtos.Invoice, inv *models.Invoice) error {
	issue, err := parseDate("issueDate", in.IssueDate)
	if err != nil {
		return err
	}
	due, err := parseDate("dueDate", in.DueDate)
	if err != nil {
		return err
	}
	paid, err := parseOptionalDate("paidDate", in.PaidDate)
	if err != nil {
		return err
	}
	inv.Status = strings.TrimSpace(in.Status)
	inv.PatientID = in.PatientID
	inv.DentistID = in.DentistID
	inv.CaseID = in.CaseID
	inv.Notes = in.Notes
	inv.IssueDate = issue
	inv.DueDate = due
	inv.PaidDate = paid
	return nil
}

func itemInputs(items []dtos.InvoiceItem) []ItemInput {
	out := make([]ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, ItemInput{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

// Inventory

func toInventoryItemDTO(i *models.InventoryItem) dtos.InventoryItem {
	qty, reorder := i.Quantity, i.ReorderLevel
	out := dtos.InventoryItem{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		Quantity:     &qty,
		UnitPrice:    i.UnitPrice,
		ReorderLevel: &reorder,
		Unit:         i.Unit,
		CategoryID:   i.CategoryID,
		SupplierID:   i.SupplierID,
		LastOrdered:  formatOptionalDate(i.LastOrdered),
		LowStock:     i.LowStock(),
		CreatedAt:    formatTimestamp(i.CreatedAt),
		UpdatedAt:    formatTimestamp(i.UpdatedAt),
	}
	if i.Category != nil {
		out.CategoryName = i.Category.Name
	}
	if i.Supplier != nil {
		out.SupplierName = i.Supplier.Name
	}
	return out
}

func applyInventoryItem(in dtos.InventoryItem, i *models.InventoryItem) error {
	if in.Quantity == nil || *in.Quantity < 0 {
		return invalid("quantity", "must be zero or more")
	}
	if in.ReorderLevel == nil || *in.ReorderLevel < 0 {
		return invalid("reorderLevel", "must be zero or more")
	}
	if in.UnitPrice.IsNegative() {
		return invalid("unitPrice", "must not be negative")
	}
	last, err := parseOptionalDate("lastOrdered", in.LastOrdered)
	if err != nil {
		return err
	}
	i.Name = strings.TrimSpace(in.Name)
	i.Description = in.Description
	i.Quantity = *in.Quantity
	i.UnitPrice = in.UnitPrice.Round(2)
	i.ReorderLevel = *in.ReorderLevel
	i.Unit = strings.TrimSpace(in.Unit)
	i.CategoryID = in.CategoryID
	i.SupplierID = in.SupplierID
	i.LastOrdered = last
	return nil
}

func toCategoryDTO(c *models.InventoryCategory) dtos.InventoryCategory {
	return dtos.InventoryCategory{ID: c.ID, Name: c.Name, Description: c.Description}
}

func applyCategory(in dtos.InventoryCategory, c *models.InventoryCategory) {
	c.Name = strings.TrimSpace(in.Name)
	c.Description = in.Description
}

func toSupplierDTO(s *models.Supplier) dtos.Supplier {
	return dtos.Supplier{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
	}
}

func applySupplier(in dtos.Supplier, s *models.Supplier) {
	s.Name = strings.TrimSpace(in.Name)
	s.ContactPerson = strings.TrimSpace(in.ContactPerson)
	s.Email = strings.TrimSpace(in.Email)
	s.Phone = strings.TrimSpace(in.Phone)
	s.Address = strings.TrimSpace(in.Address)
}

// Messaging

func toMessageDTO(m *models.Message) dtos.Message {
	return dtos.Message{
		ID:         strconv.FormatUint(uint64(m.ID), 10),
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CaseID:     m.CaseID,
		Timestamp:  formatTimestamp(m.Timestamp),
		IsRead:     m.IsRead,
	}
}

func toContactDTO(c *models.Contact) dtos.Contact {
	return dtos.Contact{
		ID:          strconv.FormatUint(uint64(c.ID), 10),
		Name:        c.Name,
		Role:        c.Role,
		Avatar:      c.Avatar,
		Initials:    c.Initials,
		Online:      c.Online,
		LastMessage: c.LastMessage,
		Timestamp:   c.Timestamp,
		Unread:      c.Unread,
	}
}

func applyContact(in dtos.Contact, c *models.Contact) {
	c.Name = strings.TrimSpace(in.Name)
	c.Role = strings.TrimSpace(in.Role)
	c.Avatar = in.Avatar
	c.Initials = strings.TrimSpace(in.Initials)
	if c.Initials == "" {
		c.Initials = initials(c.Name)
	}
	c.Online = in.Online
	c.LastMessage = in.LastMessage
	c.Timestamp = in.Timestamp
	c.Unread = in.Unread
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// Users

func toUserDTO(u *models.User) dtos.User {
	return dtos.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
