// Package outreach builds personalized first-contact messages and
// WhatsApp links for qualified leads.
package outreach

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// roleIntros maps onboarding roles to the introduction line used in
// the outreach template.
var roleIntros = map[string]string{
	"freelancer": "I'm a freelance web developer",
	"agency":     "I run a web development agency",
	"consultant": "I'm a digital consultant",
	"developer":  "I'm a web developer",
	"marketer":   "I'm a digital marketing specialist",
}

const defaultRoleIntro = "I help businesses get online"

// Message renders the outreach template for one lead using the
// sender's onboarding profile.
func Message(profile *model.Profile, lead *model.Lead) string {
	name := "there"
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}

	intro := defaultRoleIntro
	if profile != nil {
		if r, ok := roleIntros[profile.Role]; ok {
			intro = r
		}
	}

	businessType := lead.BusinessType
	if businessType == "" {
		businessType = "Business"
	}

	return fmt.Sprintf(`Hi %s!

My name is %s and %s. I noticed you don't have a website yet.

I help %s businesses get online and attract more customers through professional websites.

Would you be interested in a quick chat about how a website could help grow your business?

Best regards,
%s`, lead.Name, name, intro, strings.ToLower(businessType), name)
}

// WhatsAppURL builds a wa.me link carrying the rendered message. The
// lead's detected country wins over the sender's profile country when
// normalizing the phone number.
func WhatsAppURL(profile *model.Profile, lead *model.Lead) string {
	dialCode := "1"
	if profile != nil && profile.Country != "" {
		dialCode = DialCode(profile.Country)
	}
	if lead.CountryCode != "" {
		if c := DialCode(lead.CountryCode); c != "1" {
			dialCode = c
		}
	}

	phone := NormalizePhone(lead.Phone, dialCode)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(Message(profile, lead))
}

// NormalizePhone strips formatting and prefixes the dial code when the
// number does not already carry it. A leading zero is replaced by the
// dial code, the usual national-to-international rewrite.
func NormalizePhone(phone, dialCode string) string {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "").Replace(phone)
	switch {
	case strings.HasPrefix(clean, dialCode):
		return clean
	case strings.HasPrefix(clean, "0"):
		return dialCode + clean[1:]
	default:
		return dialCode + clean
	}
}
