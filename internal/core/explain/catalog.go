package explain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English texts; other languages translate them.
// Keys missing from a language print in English.
var messages = catalog.NewBuilder(catalog.Fallback(language.English))

// SupportedLanguages lists the languages with a catalog.
var SupportedLanguages = []language.Tag{language.English, language.Dutch}

var dutch = map[string]string{
	// labels
	"Payment Sent":             "Betaling verzonden",
	"Payment Received":         "Betaling ontvangen",
	"Payment":                  "Betaling",
	"Trust Line Updated":       "Trustline bijgewerkt",
	"Trust Line Removed":       "Trustline verwijderd",
	"Offer Created":            "Aanbod geplaatst",
	"Offer Cancelled":          "Aanbod geannuleerd",
	"Escrow Created":           "Escrow aangemaakt",
	"Escrow Finished":          "Escrow voltooid",
	"Escrow Cancelled":         "Escrow geannuleerd",
	"Check Created":            "Cheque aangemaakt",
	"Check Cashed":             "Cheque verzilverd",
	"Check Cancelled":          "Cheque geannuleerd",
	"Channel Created":          "Kanaal geopend",
	"Channel Funded":           "Kanaal aangevuld",
	"Channel Claimed":          "Kanaal geclaimd",
	"Account Settings Updated": "Accountinstellingen bijgewerkt",
	"Account Deleted":          "Account verwijderd",
	"Regular Key Updated":      "Reguliere sleutel bijgewerkt",
	"Signer List Updated":      "Ondertekenaarslijst bijgewerkt",
	"Tickets Created":          "Tickets aangemaakt",
	"Deposit Preauthorized":    "Storting vooraf geautoriseerd",
	"NFT Minted":               "NFT gemunt",
	"NFT Burned":               "NFT verbrand",
	"NFT Offer Created":        "NFT-aanbod geplaatst",
	"NFT Offers Cancelled":     "NFT-aanbiedingen geannuleerd",
	"NFT Offer Accepted":       "NFT-aanbod geaccepteerd",
	"NFT Modified":             "NFT gewijzigd",
	"Tokens Clawed Back":       "Tokens teruggevorderd",
	"Unknown Transaction":      "Onbekende transactie",
	"Check Received":           "Cheque ontvangen",
	"Escrow Incoming":          "Inkomende escrow",
	"Channel Incoming":         "Inkomend kanaal",
	"Credential Issued":        "Referentie uitgegeven",
	"Credential Received":      "Referentie ontvangen",
	"Credential Accepted":      "Referentie geaccepteerd",
	"Credential Deleted":       "Referentie verwijderd",
	"AMM Deposit":              "AMM-storting",
	"AMM Withdrawal":           "AMM-opname",
	"Trust Line":               "Trustline",
	"Account":                  "Account",
	"Offer":                    "Aanbod",
	"Check":                    "Cheque",
	"Payment Channel":          "Betalingskanaal",
	"Signer List":              "Ondertekenaarslijst",

	// sentences
	"The payment is from %s to %s.":                      "De betaling is van %s naar %s.",
	"It was instructed to deliver %s.":                   "De opdracht was %s te leveren.",
	"It was instructed to spend up to %s.":               "De opdracht was maximaal %s uit te geven.",
	"It was instructed to deliver at least %s.":          "De opdracht was minimaal %s te leveren.",
	"The destination tag is %s.":                         "De bestemmingstag is %s.",
	"The source tag is %s.":                              "De brontag is %s.",
	"The payment allows partial delivery.":               "De betaling staat gedeeltelijke levering toe.",
	"The invoice ID is %s.":                              "Het factuurnummer is %s.",
	"The memo reads %s.":                                 "De memo luidt %s.",
	"%s trusts %s for up to %s.":                         "%s vertrouwt %s tot maximaal %s.",
	"%s removes its trust line to %s for %s.":            "%s verwijdert de trustline naar %s voor %s.",
	"%s offers to sell %s in exchange for %s.":           "%s biedt %s aan in ruil voor %s.",
	"%s cancels offer %s.":                               "%s annuleert aanbod %s.",
	"This is a %s transaction.":                          "Dit is een %s-transactie.",
	"It was sent by %s.":                                 "Ze is verzonden door %s.",
	"%s writes a check to %s for up to %s.":              "%s schrijft een cheque uit aan %s voor maximaal %s.",
	"%s cashes check %s.":                                "%s verzilvert cheque %s.",
	"%s escrows %s for %s.":                              "%s zet %s in escrow voor %s.",
	"%s opens a payment channel to %s with %s.":          "%s opent een betalingskanaal naar %s met %s.",
	"%s holds %s issued by %s with a limit of %s.":       "%s heeft %s uitgegeven door %s met een limiet van %s.",
	"%s deletes the account and sends the remaining balance to %s.": "%s verwijdert het account en stuurt het resterende saldo naar %s.",
}

func init() {
	for key, nl := range dutch {
		_ = messages.SetString(language.English, key, key)
		_ = messages.SetString(language.Dutch, key, nl)
	}
}

func printer(v View) *message.Printer {
	return message.NewPrinter(v.Language, message.Catalog(messages))
}
