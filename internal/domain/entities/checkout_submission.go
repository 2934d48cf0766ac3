package entities

// CheckoutSubmission is the body posted by the checkout page to
// /process_payment. It only lives for the duration of one request.
//
// Amount, installments and issuer are LooseValue because the card form sends
// them either as JSON strings or as numbers depending on the browser flow.
type CheckoutSubmission struct {
	TransactionAmount LooseValue `json:"transactionAmount"`
	Token             string     `json:"token"`
	Description       string     `json:"description"`
	Installments      LooseValue `json:"installments"`
	PaymentMethodID   string     `json:"paymentMethodId"`
	IssuerID          LooseValue `json:"issuerId"`
	Payer             *Payer     `json:"payer"`
}

type Payer struct {
	Email          string          `json:"email"`
	Identification *Identification `json:"identification"`
}

type Identification struct {
	DocType   string `json:"docType"`
	DocNumber string `json:"docNumber"`
}
