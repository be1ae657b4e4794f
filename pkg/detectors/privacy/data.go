package privacy

import (
	"regexp"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

// Entity represents a type of sensitive data the detector scans for.
type Entity string

const (
	Email              Entity = "email"
	PhoneNumber        Entity = "phone_number"
	SSN                Entity = "ssn"
	CreditCard         Entity = "credit_card"
	PasswordAssignment Entity = "password_assignment"
	PasswordDisclosure Entity = "password_disclosure"
	APIKey             Entity = "api_key"
)

// scanOrder fixes entity evaluation order so results are deterministic.
var scanOrder = []Entity{
	PasswordAssignment,
	PasswordDisclosure,
	APIKey,
	SSN,
	CreditCard,
	Email,
	PhoneNumber,
}

var entityPatterns = map[Entity]*regexp.Regexp{
	Email:              regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	PhoneNumber:        regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	SSN:                regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	CreditCard:         regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`),
	PasswordAssignment: regexp.MustCompile(`(?i)\b(password|passwd|pwd|passphrase|secret)\b\s*(?:is|was|[:=])\s*\S+`),
	PasswordDisclosure: regexp.MustCompile(`(?i)\b(password|passwd|pwd|passcode)\b\s+\S*\d\S*`),
	APIKey:             regexp.MustCompile(`(?i)\b(api[_-]?key|access[_-]?token|bearer)\b\s*[:=]\s*\S+`),
}

// entitySeverity scales each PII shape by its sensitivity: credential
// disclosure is critical, government/financial identifiers high,
// contact details medium.
var entitySeverity = map[Entity]trust.Severity{
	Email:              trust.SeverityMedium,
	PhoneNumber:        trust.SeverityMedium,
	SSN:                trust.SeverityHigh,
	CreditCard:         trust.SeverityHigh,
	PasswordAssignment: trust.SeverityCritical,
	PasswordDisclosure: trust.SeverityCritical,
	APIKey:             trust.SeverityHigh,
}

var entityMessages = map[Entity]string{
	Email:              "email address detected",
	PhoneNumber:        "phone number detected",
	SSN:                "social security number detected",
	CreditCard:         "credit card number detected",
	PasswordAssignment: "password or secret disclosed",
	PasswordDisclosure: "password value disclosed",
	APIKey:             "API key or access token disclosed",
}

// severityPenalty is the score deduction applied per finding. The
// magnitudes are tunable policy; the contract is ordinal (worse
// findings lower the score further).
var severityPenalty = map[trust.Severity]float64{
	trust.SeverityInfo:     0,
	trust.SeverityLow:      5,
	trust.SeverityMedium:   15,
	trust.SeverityHigh:     25,
	trust.SeverityCritical: 40,
}
