// Package event provides definitions for global DOM
// events that are dispatched by the `HX-Trigger`
// header in HTMX requests.
package event

import (
	"github.com/angelofallars/htmx-go"
)

// Event is a client-side event that can be triggered
// on the server.
type Event string

// Event satisfies [fmt.Stringer]
func (e Event) String() string { return string(e) }

// TotalsChanged fires after any mutation to the ledger or the billing
// inputs; the totals panel and line-total cells listen for it and
// re-fetch themselves.
const TotalsChanged Event = "totals-changed"

var TriggerTotalsChanged = htmx.Trigger(TotalsChanged.String())

const SetErrMessage Event = "set-err-message"

func TriggerSetErrMessage(message string) htmx.EventTrigger {
	return htmx.TriggerDetail(SetErrMessage.String(), message)
}
