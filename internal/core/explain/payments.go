package explain

import (
	"golang.org/x/text/message"

	"github.com/LeJamon/goXRPLwallet/internal/core/meta"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/check"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/escrow"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/paychan"
	"github.com/LeJamon/goXRPLwallet/internal/core/tx/payment"
	"github.com/LeJamon/goXRPLwallet/internal/core/types"
)

func init() {
	register(tx.TypePayment, handler{
		label:        directional("Payment Sent", "Payment Received", "Payment", paymentDestination),
		describe:     describePayment,
		participants: withEnd(paymentDestination),
		value: func(t tx.Transaction, m *meta.Metadata) (types.Amount, bool) {
			return t.(*payment.Payment).DeliveredAmount(m)
		},
		validate: validatePayment,
	})

	register(tx.TypeCheckCreate, handler{
		label: directional("Check Created", "Check Received", "Check Created", func(t tx.Transaction) string {
			return t.(*check.CheckCreate).Destination
		}),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*check.CheckCreate)
			out := []string{p.Sprintf("%s writes a check to %s for up to %s.", c.Account, c.Destination, c.SendMax.String())}
			if c.DestinationTag != nil {
				out = append(out, p.Sprintf("The destination tag is %s.", tag(c.DestinationTag)))
			}
			if c.InvoiceID != "" {
				out = append(out, p.Sprintf("The invoice ID is %s.", c.InvoiceID))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*check.CheckCreate).Destination }),
		value:        func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountOf(t.(*check.CheckCreate).SendMax) },
		validate:     validateCheckCreate,
	})
	register(tx.TypeCheckCash, handler{
		label: fixedLabel("Check Cashed"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*check.CheckCash)
			out := []string{p.Sprintf("%s cashes check %s.", c.Account, c.CheckID)}
			if a, ok := amountPtr(c.Amount); ok {
				out = append(out, p.Sprintf("It was instructed to deliver %s.", a.String()))
			}
			if a, ok := amountPtr(c.DeliverMin); ok {
				out = append(out, p.Sprintf("It was instructed to deliver at least %s.", a.String()))
			}
			return out
		},
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			c := t.(*check.CheckCash)
			if a, ok := amountPtr(c.Amount); ok {
				return a, true
			}
			return amountPtr(c.DeliverMin)
		},
	})
	register(tx.TypeCheckCancel, handler{
		label: fixedLabel("Check Cancelled"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*check.CheckCancel)
			return []string{p.Sprintf("%s cancels check %s.", c.Account, c.CheckID)}
		},
	})

	register(tx.TypeEscrowCreate, handler{
		label: directional("Escrow Created", "Escrow Incoming", "Escrow Created", func(t tx.Transaction) string {
			return t.(*escrow.EscrowCreate).Destination
		}),
		describe:     describeEscrowCreate,
		participants: withEnd(func(t tx.Transaction) string { return t.(*escrow.EscrowCreate).Destination }),
		value:        func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) { return amountOf(t.(*escrow.EscrowCreate).Amount) },
		validate:     validateEscrowCreate,
	})
	register(tx.TypeEscrowFinish, handler{
		label: fixedLabel("Escrow Finished"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			e := t.(*escrow.EscrowFinish)
			return []string{p.Sprintf("%s completes escrow %s created by %s.", e.Account, tag(&e.OfferSequence), e.Owner)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*escrow.EscrowFinish).Owner }),
		value: func(t tx.Transaction, m *meta.Metadata) (types.Amount, bool) {
			return t.(*escrow.EscrowFinish).EscrowAmount(m)
		},
	})
	register(tx.TypeEscrowCancel, handler{
		label: fixedLabel("Escrow Cancelled"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			e := t.(*escrow.EscrowCancel)
			return []string{p.Sprintf("%s cancels escrow %s created by %s.", e.Account, tag(&e.OfferSequence), e.Owner)}
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*escrow.EscrowCancel).Owner }),
		value: func(t tx.Transaction, m *meta.Metadata) (types.Amount, bool) {
			return t.(*escrow.EscrowCancel).EscrowAmount(m)
		},
	})

	register(tx.TypePaymentChannelCreate, handler{
		label: directional("Channel Created", "Channel Incoming", "Channel Created", func(t tx.Transaction) string {
			return t.(*paychan.PaymentChannelCreate).Destination
		}),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*paychan.PaymentChannelCreate)
			out := []string{
				p.Sprintf("%s opens a payment channel to %s with %s.", c.Account, c.Destination, c.Amount.String()),
				p.Sprintf("The settle delay is %s seconds.", tag(&c.SettleDelay)),
			}
			if c.DestinationTag != nil {
				out = append(out, p.Sprintf("The destination tag is %s.", tag(c.DestinationTag)))
			}
			return out
		},
		participants: withEnd(func(t tx.Transaction) string { return t.(*paychan.PaymentChannelCreate).Destination }),
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountOf(t.(*paychan.PaymentChannelCreate).Amount)
		},
		validate: validateChannelCreate,
	})
	register(tx.TypePaymentChannelFund, handler{
		label: fixedLabel("Channel Funded"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*paychan.PaymentChannelFund)
			return []string{p.Sprintf("%s adds %s to payment channel %s.", c.Account, c.Amount.String(), c.Channel)}
		},
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountOf(t.(*paychan.PaymentChannelFund).Amount)
		},
		validate: validateChannelFund,
	})
	register(tx.TypePaymentChannelClaim, handler{
		label: fixedLabel("Channel Claimed"),
		describe: func(t tx.Transaction, p *message.Printer) []string {
			c := t.(*paychan.PaymentChannelClaim)
			out := []string{p.Sprintf("%s claims from payment channel %s.", c.Account, c.Channel)}
			if a, ok := amountPtr(c.Balance); ok {
				out = append(out, p.Sprintf("The channel balance becomes %s.", a.String()))
			}
			if c.IsClose() {
				out = append(out, p.Sprintf("The channel is requested to close."))
			}
			return out
		},
		value: func(t tx.Transaction, _ *meta.Metadata) (types.Amount, bool) {
			return amountPtr(t.(*paychan.PaymentChannelClaim).Balance)
		},
	})
}

func paymentDestination(t tx.Transaction) string {
	return t.(*payment.Payment).Destination
}

func describePayment(t tx.Transaction, p *message.Printer) []string {
	pay := t.(*payment.Payment)
	out := []string{p.Sprintf("The payment is from %s to %s.", pay.Account, pay.Destination)}
	if amount := pay.SendAmount(); amount.IsSet() {
		out = append(out, p.Sprintf("It was instructed to deliver %s.", amount.String()))
	}
	if a, ok := amountPtr(pay.SendMax); ok {
		out = append(out, p.Sprintf("It was instructed to spend up to %s.", a.String()))
	}
	if a, ok := amountPtr(pay.DeliverMin); ok {
		out = append(out, p.Sprintf("It was instructed to deliver at least %s.", a.String()))
	}
	if pay.DestinationTag != nil {
		out = append(out, p.Sprintf("The destination tag is %s.", tag(pay.DestinationTag)))
	}
	if pay.SourceTag != nil {
		out = append(out, p.Sprintf("The source tag is %s.", tag(pay.SourceTag)))
	}
	if pay.IsPartialPayment() {
		out = append(out, p.Sprintf("The payment allows partial delivery."))
	}
	if pay.InvoiceID != "" {
		out = append(out, p.Sprintf("The invoice ID is %s.", pay.InvoiceID))
	}
	return out
}

func describeEscrowCreate(t tx.Transaction, p *message.Printer) []string {
	e := t.(*escrow.EscrowCreate)
	out := []string{p.Sprintf("%s escrows %s for %s.", e.Account, e.Amount.String(), e.Destination)}
	if e.FinishAfter != nil {
		out = append(out, p.Sprintf("It can be finished after %s.", rippleTime(*e.FinishAfter)))
	}
	if e.CancelAfter != nil {
		out = append(out, p.Sprintf("It can be cancelled after %s.", rippleTime(*e.CancelAfter)))
	}
	if e.Condition != "" {
		out = append(out, p.Sprintf("It is locked by a crypto-condition."))
	}
	if e.DestinationTag != nil {
		out = append(out, p.Sprintf("The destination tag is %s.", tag(e.DestinationTag)))
	}
	return out
}
