// Package containers holds the employee-facing bill components: the
// bills listing and the new-bill submission workflow. Collaborators
// (store, navigation, modal, alerts) are injected; the containers own
// no transport or rendering themselves.
package containers

// Route paths the containers navigate between.
const (
	RouteBills   = "#employee/bills"
	RouteNewBill = "#employee/bill/new"
)

// NavigateFunc switches the app to another route.
type NavigateFunc func(route string)

// ModalPresenter displays the proof image attached to a bill.
type ModalPresenter interface {
	Show(url string)
}

// Alerter raises a user-visible alert.
type Alerter interface {
	Alert(message string)
}
