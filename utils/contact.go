package utils

// countryCallingCode is prefixed to WhatsApp deep links; the marketplace
// currently serves Brazil only.
const countryCallingCode = "55"

// WhatsAppLink builds a wa.me deep link for the given phone number.
// The number is concatenated as-is, without format validation.
func WhatsAppLink(phoneNumber string) string {
	return "https://wa.me/" + countryCallingCode + phoneNumber
}

// DialLink builds a tel: link for the given phone number.
func DialLink(phoneNumber string) string {
	return "tel:" + phoneNumber
}
