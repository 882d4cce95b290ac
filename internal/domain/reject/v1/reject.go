// Package v1 defines the reject-code taxonomy used by the New, Amend and
// Cancel handlers when a command cannot be applied to the book.
package v1

// Code is a reject code as it appears on the wire, verbatim.
type Code string

const (
	// InvalidOrderDetails is returned by the New handler for any
	// validation failure, including a duplicate order id.
	InvalidOrderDetails Code = "303"
	// InvalidCancelOrAmendDetails is returned by the Cancel and Amend
	// handlers for a structurally invalid request.
	InvalidCancelOrAmendDetails Code = "101"
	// OrderNotFound is returned by the Cancel and Amend handlers when the
	// referenced order id is not live.
	OrderNotFound Code = "404"
)

// Message pairs a reject code with its fixed wire message. The Amend
// message intentionally keeps the "amendement" spelling.
func Message(code Code, forAmend bool) string {
	switch code {
	case InvalidOrderDetails:
		return "Invalid order details"
	case InvalidCancelOrAmendDetails:
		if forAmend {
			return "Invalid amendement details"
		}
		return "Invalid cancel details"
	case OrderNotFound:
		return "Order does not exist"
	default:
		return ""
	}
}
