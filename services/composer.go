package services

import (
	"fmt"
	"html"
	"strings"

	"highrange-backend/models"
	"highrange-backend/utils"
)

// Composer builds the operator notice and submitter acknowledgment for a
// validated submission, each in plain-text and rich-text form. Rich text
// escapes all submitter-provided values so free-text fields cannot inject
// markup. The verification token is never rendered.
type Composer struct {
	siteName string
}

// MessagePair is the two notifications produced per successful submission
type MessagePair struct {
	Operator       models.NotificationMessage
	Acknowledgment models.NotificationMessage
}

// NewComposer creates a message composer
func NewComposer(siteName string) *Composer {
	return &Composer{siteName: siteName}
}

type line struct {
	label     string
	value     string
	multiline bool
}

type section struct {
	title string
	lines []line
}

// add appends a labeled value, skipping empty optional fields so they never
// render as blank rows
func (s *section) add(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	s.lines = append(s.lines, line{label: label, value: value})
}

// addText appends a multi-line free-text value; line breaks are preserved in
// the rich-text rendering
func (s *section) addText(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	s.lines = append(s.lines, line{label: label, value: value, multiline: true})
}

// ComposeGeneral builds the message pair for a general enquiry
func (c *Composer) ComposeGeneral(e *models.GeneralEnquiry, ref, operatorTo string) MessagePair {
	contact := section{title: "Contact"}
	contact.add("Name", e.FirstName+" "+e.LastName)
	contact.add("Email", e.Email)
	contact.add("Phone", e.Phone)
	contact.add("Country", e.Country)
	contact.add("Postal Code", e.PostalCode)
	contact.add("LinkedIn", e.LinkedIn)

	enquiry := section{title: "Enquiry"}
	enquiry.add("Subject", e.Subject)
	enquiry.add("Product", e.Product)
	enquiry.add("Grade", e.Grade)
	enquiry.add("Quantity", e.Quantity)
	enquiry.addText("Message", e.Message)

	operator := c.operatorMessage(
		fmt.Sprintf("[General Enquiry] %s (ref %s)", e.Subject, utils.ShortReference(ref)),
		fmt.Sprintf("New general enquiry from %s %s.", e.FirstName, e.LastName),
		[]section{contact, enquiry},
		operatorTo,
		e.Email,
	)

	ack := c.acknowledgmentMessage(e.Email, e.FirstName, e.Message, ref)

	return MessagePair{Operator: operator, Acknowledgment: ack}
}

// ComposeSupplier builds the message pair for a supplier registration
func (c *Composer) ComposeSupplier(reg *models.SupplierRegistration, ref, operatorTo string) MessagePair {
	applicant := section{title: "Applicant"}
	applicant.add("Name", reg.FullName)
	applicant.add("Category", string(reg.Category))
	applicant.add("Email", reg.Email)
	applicant.add("Phone", reg.Phone)
	applicant.add("Country", reg.Country)
	applicant.add("State", reg.State)
	applicant.add("District", reg.District)

	details := section{title: "Supply Details"}
	details.add("Estate Name", reg.EstateName)
	details.add("Estate Location", reg.EstateLocation)
	details.add("Estate Size (acres)", reg.EstateSizeAcres)
	details.add("Aadhar Card Number", reg.AadharCardNumber)
	details.add("Farm Location", reg.FarmLocation)
	details.add("Annual Production (kg)", reg.AnnualProductionKg)
	details.add("Firm Name", reg.FirmName)
	details.add("GST Number", reg.GSTNumber)
	details.add("Years in Trade", reg.YearsInTrade)
	details.add("Varieties", reg.Varieties)
	details.addText("Message", reg.Message)

	operator := c.operatorMessage(
		fmt.Sprintf("[Supplier Registration] %s (%s)", reg.FullName, reg.Category),
		fmt.Sprintf("New supplier registration from %s (%s).", reg.FullName, reg.Category),
		[]section{applicant, details},
		operatorTo,
		reg.Email,
	)

	ack := c.acknowledgmentMessage(reg.Email, reg.FullName, reg.Message, ref)

	return MessagePair{Operator: operator, Acknowledgment: ack}
}

// ComposeTrade builds the message pair for a trade enquiry
func (c *Composer) ComposeTrade(t *models.TradeEnquiry, ref, operatorTo string) MessagePair {
	company := section{title: "Company Details"}
	company.add("Company", t.CompanyName)
	company.add("Email", t.CompanyEmail)
	company.add("Phone", t.CompanyPhone)
	company.add("Address", t.CompanyAddress)
	company.add("Country", t.Country)
	company.add("Website", t.Website)
	company.add("Fax", t.Fax)

	contact := section{title: "Contact Person"}
	contact.add("Name", t.ContactName)
	contact.add("Designation", t.Designation)
	contact.add("Email", t.ContactEmail)
	contact.add("Phone", t.ContactPhone)
	contact.add("LinkedIn", t.LinkedIn)

	logistics := section{title: "Logistics"}
	logistics.add("Product", t.Product)
	logistics.add("Grade", t.Grade)
	logistics.add("Quantity (MT)", t.QuantityMT)
	logistics.add("Destination Port", t.DestinationPort)
	logistics.add("Incoterm", t.Incoterm)
	logistics.add("Packaging", t.Packaging)
	logistics.add("Pre-shipment Agency", t.PreShipmentAgency)
	logistics.add("Target Shipment Date", t.TargetShipmentDate)
	logistics.addText("Requirements", t.Requirements)

	operator := c.operatorMessage(
		fmt.Sprintf("[Trade Enquiry] %s (ref %s)", t.CompanyName, utils.ShortReference(ref)),
		fmt.Sprintf("New trade enquiry from %s.", t.CompanyName),
		[]section{company, contact, logistics},
		operatorTo,
		t.ContactEmail,
	)

	ack := c.acknowledgmentMessage(t.ContactEmail, t.ContactName, t.Requirements, ref)

	return MessagePair{Operator: operator, Acknowledgment: ack}
}

func (c *Composer) operatorMessage(subject, intro string, sections []section, to, replyTo string) models.NotificationMessage {
	return models.NotificationMessage{
		Recipient: to,
		ReplyTo:   replyTo,
		Subject:   subject,
		PlainText: renderPlain(intro, sections),
		RichText:  renderHTML(intro, sections),
	}
}

func (c *Composer) acknowledgmentMessage(to, name, quoted, ref string) models.NotificationMessage {
	intro := fmt.Sprintf("Dear %s,\n\nThank you for contacting %s. We have received your enquiry and our team will get back to you within two business days.\n\nYour reference: %s", name, c.siteName, utils.ShortReference(ref))

	var sections []section
	if strings.TrimSpace(quoted) != "" {
		quote := section{title: "Your Message"}
		quote.addText("", quoted)
		sections = append(sections, quote)
	}

	return models.NotificationMessage{
		Recipient: to,
		Subject:   fmt.Sprintf("We have received your enquiry — %s", c.siteName),
		PlainText: renderPlain(intro, sections) + "\n\nWarm regards,\n" + c.siteName,
		RichText:  renderHTML(intro, sections) + fmt.Sprintf("<p>Warm regards,<br>%s</p>", html.EscapeString(c.siteName)),
	}
}

func renderPlain(intro string, sections []section) string {
	var b strings.Builder
	b.WriteString(intro)
	for _, sec := range sections {
		if len(sec.lines) == 0 {
			continue
		}
		b.WriteString("\n\n")
		if sec.title != "" {
			b.WriteString(sec.title)
			b.WriteString("\n")
			b.WriteString(strings.Repeat("-", len(sec.title)))
			b.WriteString("\n")
		}
		for _, l := range sec.lines {
			if l.label == "" {
				b.WriteString(l.value)
				b.WriteString("\n")
				continue
			}
			b.WriteString(fmt.Sprintf("%s: %s\n", l.label, l.value))
		}
	}
	return b.String()
}

func renderHTML(intro string, sections []section) string {
	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(escapeMultiline(intro))
	b.WriteString("</p>")
	for _, sec := range sections {
		if len(sec.lines) == 0 {
			continue
		}
		if sec.title != "" {
			b.WriteString(fmt.Sprintf("<h3>%s</h3>", html.EscapeString(sec.title)))
		}
		b.WriteString("<table>")
		for _, l := range sec.lines {
			value := html.EscapeString(l.value)
			if l.multiline {
				value = escapeMultiline(l.value)
			}
			if l.label == "" {
				b.WriteString(fmt.Sprintf("<tr><td>%s</td></tr>", value))
				continue
			}
			b.WriteString(fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>", html.EscapeString(l.label), value))
		}
		b.WriteString("</table>")
	}
	return b.String()
}

// escapeMultiline escapes HTML and preserves line breaks as <br>
func escapeMultiline(s string) string {
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
