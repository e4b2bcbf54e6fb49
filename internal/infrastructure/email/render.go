package email

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"truga_booking/internal/domain/entities"
)

// roofLabel resolves the customer-facing roof type line. An "other" choice
// combines the label with the customer's free-text description.
func roofLabel(p entities.InquiryPayload) string {
	if p.RoofType == nil {
		return "Ni izbrano"
	}
	base := entities.RoofType(*p.RoofType).Label()
	if *p.RoofType == string(entities.RoofTypeOther) && p.RoofTypeOtherDescription != nil && *p.RoofTypeOtherDescription != "" {
		return base + ": " + *p.RoofTypeOtherDescription
	}
	return base
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderInquiryHTML builds the HTML inquiry email. Every payload-derived
// string goes through html.EscapeString; the payload arrives raw.
func renderInquiryHTML(p entities.InquiryPayload) string {
	esc := html.EscapeString
	var b strings.Builder

	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h1>Novo Povpraševanje</h1>`)
	b.WriteString(`<p>Truga - Najem Strešnih Kovčkov</p>`)

	b.WriteString(`<h2>Kontakt</h2><table>`)
	b.WriteString(`<tr><td>Ime:</td><td>` + esc(p.ContactName) + `</td></tr>`)
	b.WriteString(`<tr><td>Email:</td><td><a href="mailto:` + esc(p.ContactEmail) + `">` + esc(p.ContactEmail) + `</a></td></tr>`)
	b.WriteString(`<tr><td>Telefon:</td><td><a href="tel:` + esc(p.ContactPhone) + `">` + esc(p.ContactPhone) + `</a></td></tr>`)
	b.WriteString(`<tr><td>Vozilo:</td><td>` + esc(p.VehicleDescription) + `</td></tr>`)
	b.WriteString(`</table>`)

	b.WriteString(`<h2>Rezervacija</h2><table>`)
	if p.BoxTitle != nil {
		line := esc(*p.BoxTitle)
		if p.BoxSize != nil {
			line += ` (` + esc(*p.BoxSize) + `)`
		}
		if p.PricePerDay != nil {
			line += ` — ` + formatAmount(*p.PricePerDay) + `€/dan`
		}
		b.WriteString(`<tr><td>Kovček:</td><td>` + line + `</td></tr>`)
	} else {
		b.WriteString(`<tr><td>Kovček:</td><td><em>Ni izbran — potrebuje svetovanje</em></td></tr>`)
	}
	b.WriteString(`<tr><td>Tip strehe:</td><td>` + esc(roofLabel(p)) + `</td></tr>`)
	b.WriteString(`<tr><td>Prevzem:</td><td>` + esc(p.StartDateFormatted) + `</td></tr>`)
	b.WriteString(`<tr><td>Vrnitev:</td><td>` + esc(p.EndDateFormatted) + `</td></tr>`)
	b.WriteString(`<tr><td>Trajanje:</td><td>` + strconv.Itoa(p.DayCount) + ` dni</td></tr>`)
	b.WriteString(`</table>`)

	if p.EstimatedTotal != nil {
		b.WriteString(`<h2>Ocena cene</h2>`)
		b.WriteString(`<div><strong>` + formatAmount(*p.EstimatedTotal) + `€</strong></div>`)
		if p.DiscountPercent > 0 {
			b.WriteString(`<div>Vključen ` + strconv.Itoa(p.DiscountPercent) + `% popust</div>`)
		}
		if p.DepositAmount != nil && *p.DepositAmount > 0 {
			b.WriteString(`<div>Kavcija: ` + formatAmount(*p.DepositAmount) + `€ (vračljiva)</div>`)
		}
	}

	if strings.TrimSpace(p.Notes) != "" {
		b.WriteString(`<h2>Opombe</h2><div>` + esc(p.Notes) + `</div>`)
	}

	b.WriteString(`<p><small>Poslano preko truga.si rezervacijskega sistema</small></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

// renderInquiryText builds the plain-text alternative body.
func renderInquiryText(p entities.InquiryPayload) string {
	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add("NOVO POVPRAŠEVANJE — Truga")
	add("")
	add("--- Kontakt ---")
	add("Ime: " + p.ContactName)
	add("Email: " + p.ContactEmail)
	add("Telefon: " + p.ContactPhone)
	add("Vozilo: " + p.VehicleDescription)
	add("")
	add("--- Rezervacija ---")
	if p.BoxTitle != nil {
		line := "Kovček: " + *p.BoxTitle
		if p.BoxSize != nil {
			line += " (" + *p.BoxSize + ")"
		}
		add(line)
	} else {
		add("Kovček: Ni izbran")
	}
	add("Tip strehe: " + roofLabel(p))
	add("Prevzem: " + p.StartDateFormatted)
	add("Vrnitev: " + p.EndDateFormatted)
	add(fmt.Sprintf("Trajanje: %d dni", p.DayCount))
	add("")
	if p.EstimatedTotal != nil {
		line := "Ocena cene: " + formatAmount(*p.EstimatedTotal) + "€"
		if p.DiscountPercent > 0 {
			line += fmt.Sprintf(" (%d%% popust)", p.DiscountPercent)
		}
		if p.DepositAmount != nil && *p.DepositAmount > 0 {
			line += " + " + formatAmount(*p.DepositAmount) + "€ kavcija"
		}
		add(line)
	}
	if strings.TrimSpace(p.Notes) != "" {
		add("Opombe: " + p.Notes)
	}

	return strings.Join(lines, "\n")
}
