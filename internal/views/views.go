// Package views renders the employee bill pages. Elements carry stable
// data-testid hooks that external tooling locates them by.
package views

import (
	"html/template"
	"sort"
	"strings"

	"expense-bills-backend/internal/models"
)

var billsTpl = template.Must(template.New("bills").Parse(`<div id="layout">
  <div data-testid="icon-window" class="active-icon"></div>
  <div class="content">
    <div class="content-header">
      <div class="content-title">Mes notes de frais</div>
      <button type="button" data-testid="btn-new-bill" class="btn btn-primary">Nouvelle note de frais</button>
    </div>
    {{if .Error}}<div data-testid="error-message" class="error-message">{{.Error}}</div>{{else}}
    <table id="data-table" class="table">
      <thead>
        <tr>
          <th>Type</th><th>Nom</th><th>Date</th><th>Montant</th><th>Statut</th><th>Actions</th>
        </tr>
      </thead>
      <tbody data-testid="tbody">
        {{range .Bills}}<tr>
          <td>{{.Type}}</td>
          <td>{{.Name}}</td>
          <td>{{.Date}}</td>
          <td>{{.Amount}} €</td>
          <td>{{.Status}}</td>
          <td><div data-testid="icon-eye" data-bill-url="{{.FileURL}}"></div></td>
        </tr>{{end}}
      </tbody>
    </table>
    {{end}}
  </div>
  <div class="modal fade" id="modaleFile" data-testid="modaleFile">
    <div class="modal-body"></div>
  </div>
</div>`))

var newBillTpl = template.Must(template.New("new-bill").Parse(`<div id="layout">
  <div data-testid="icon-window"></div>
  <div class="content">
    <div class="content-title">Envoyer une note de frais</div>
    <form data-testid="form-new-bill">
      <select data-testid="expense-type" required>
        <option>Transports</option>
        <option>Restaurants et bars</option>
        <option>Hôtel et logement</option>
        <option>Services en ligne</option>
        <option>IT et électronique</option>
        <option>Equipement et matériel</option>
        <option>Fournitures de bureau</option>
      </select>
      <input data-testid="expense-name" type="text" placeholder="Vol Paris Londres" />
      <input data-testid="datepicker" type="date" required />
      <input data-testid="amount" type="number" placeholder="348" required />
      <input data-testid="vat" type="number" placeholder="70" />
      <input data-testid="pct" type="number" placeholder="20" required />
      <textarea data-testid="commentary" rows="3"></textarea>
      <input data-testid="file" type="file" required />
      <button type="submit" id="btn-send-bill" class="btn btn-primary">Envoyer</button>
    </form>
  </div>
</div>`))

type billsPage struct {
	Bills []models.Bill
	Error string
}

// BillsUI renders the bills list, most recent first. When err is
// non-nil the store's message is rendered in place of the table.
func BillsUI(bills []models.Bill, err error) string {
	page := billsPage{}
	if err != nil {
		page.Error = err.Error()
	} else {
		page.Bills = make([]models.Bill, len(bills))
		copy(page.Bills, bills)
		sort.SliceStable(page.Bills, func(i, j int) bool {
			return page.Bills[i].Date > page.Bills[j].Date
		})
	}

	var sb strings.Builder
	if err := billsTpl.Execute(&sb, page); err != nil {
		return ""
	}
	return sb.String()
}

// NewBillUI renders the new-bill form.
func NewBillUI() string {
	var sb strings.Builder
	if err := newBillTpl.Execute(&sb, nil); err != nil {
		return ""
	}
	return sb.String()
}
