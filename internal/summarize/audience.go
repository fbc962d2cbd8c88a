package summarize

import "strings"

// Audience selects the tone and framing of the generated digest without
// changing its structure. The set is closed; anything outside it is treated
// as AudienceGeneral.
type Audience string

const (
	AudienceGeneral Audience = "general"
	AudienceSales   Audience = "sales"
	AudienceOps     Audience = "ops"
	AudienceCX      Audience = "cx"
)

// ParseAudience maps a raw selector to an Audience. Unrecognized or empty
// values fall back to AudienceGeneral; this never fails.
func ParseAudience(s string) Audience {
	switch Audience(strings.ToLower(strings.TrimSpace(s))) {
	case AudienceSales:
		return AudienceSales
	case AudienceOps:
		return AudienceOps
	case AudienceCX:
		return AudienceCX
	default:
		return AudienceGeneral
	}
}

var framings = map[Audience]string{
	AudienceGeneral: "Write for a general audience of users and stakeholders. Plain English, no jargon, no file paths or internal identifiers.",
	AudienceSales:   "Write for a sales team preparing customer conversations. Emphasize customer value and what they can now demo or promise; avoid technical detail entirely.",
	AudienceOps:     "Write for an operations team running this software in production. Call out behavior changes, new configuration, and anything affecting deployment or monitoring.",
	AudienceCX:      "Write for a customer-experience team handling support tickets. Emphasize fixed problems customers may have reported and visible changes they will ask about.",
}

// Framing returns the instruction text for the audience, defaulting to the
// general framing for any value outside the known set.
func (a Audience) Framing() string {
	if f, ok := framings[a]; ok {
		return f
	}
	return framings[AudienceGeneral]
}
