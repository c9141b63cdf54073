package core

import (
	"fmt"
	"regexp"
	"strings"
)

// Base recognizers cover the structured entity types a regex can detect
// reliably. LOCATION and NRP are requestable through the port but need an
// NER-backed Analyzer; the pattern registry has no recognizer for them.
func baseRecognizers() []PatternRecognizer {
	return []PatternRecognizer{
		{
			Name:   "email_recognizer",
			Entity: "EMAIL_ADDRESS",
			Patterns: []Pattern{{
				Name:  "email",
				Regex: regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`),
				Score: 0.9,
			}},
			Context: []string{"email", "mail", "contact"},
		},
		{
			Name:   "ssn_recognizer",
			Entity: "US_SSN",
			Patterns: []Pattern{{
				Name:  "ssn_us",
				Regex: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
				Score: 0.85,
			}},
			Context: []string{"ssn", "social security", "social"},
		},
		{
			Name:   "credit_card_recognizer",
			Entity: "CREDIT_CARD",
			Patterns: []Pattern{{
				Name:  "credit_card",
				Regex: regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`),
				Score: 0.8,
			}},
			Context: []string{"card", "credit", "visa", "mastercard", "amex"},
		},
		{
			Name:   "ip_recognizer",
			Entity: "IP_ADDRESS",
			Patterns: []Pattern{{
				Name:  "ipv4",
				Regex: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
				Score: 0.6,
			}},
			Context: []string{"ip", "address", "host"},
		},
		{
			Name:   "iban_recognizer",
			Entity: "IBAN_CODE",
			Patterns: []Pattern{{
				Name:  "iban",
				Regex: regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`),
				Score: 0.7,
			}},
			Context: []string{"iban", "account", "bank"},
		},
		{
			Name:   "date_recognizer",
			Entity: "DATE_TIME",
			Patterns: []Pattern{
				{
					Name:  "date_numeric",
					Regex: regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
					Score: 0.6,
				},
				{
					Name:  "date_iso",
					Regex: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
					Score: 0.6,
				},
				{
					Name:  "date_month_name",
					Regex: regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
					Score: 0.6,
				},
			},
			Context: []string{"date", "dob", "born", "birth", "admitted", "discharged"},
		},
		{
			Name:   "phone_recognizer",
			Entity: "PHONE_NUMBER",
			Patterns: []Pattern{{
				Name:  "phone_us",
				Regex: regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
				Score: 0.7,
			}},
			Context: []string{"phone", "tel", "call", "contact"},
		},
		{
			Name:   "medical_license_recognizer",
			Entity: "MEDICAL_LICENSE",
			Patterns: []Pattern{{
				// DEA-style: two letters then seven digits.
				Name:  "dea_number",
				Regex: regexp.MustCompile(`\b[A-Z]{2}\d{7}\b`),
				Score: 0.5,
			}},
			Context: []string{"dea", "license", "npi", "registration"},
		},
		{
			Name:   "person_pair_recognizer",
			Entity: "PERSON",
			Patterns: []Pattern{{
				// Two adjacent capitalized words. Moderate confidence; the
				// common first-name recognizer or a context word usually
				// raises it, and overlapping spans merge into the full name.
				Name:  "capitalized_pair",
				Regex: regexp.MustCompile(`\b[A-Z][a-z]+(?:-[A-Z][a-z]+)?\s+[A-Z][a-z]+(?:-[A-Z][a-z]+)?\b`),
				Score: 0.55,
			}},
			Context: []string{"patient", "name", "client", "mr", "ms", "mrs"},
		},
	}
}

// commonFirstNames are first names across several cultural origins that
// statistical NER models miss surprisingly often in isolated cell text.
var commonFirstNames = []string{
	"Robert", "Ricardo", "Richard", "Michael", "John", "David", "James", "William",
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
	"Joseph", "Thomas", "Christopher", "Daniel", "Matthew", "Anthony", "Donald",
	"Mark", "Paul", "Steven", "Kenneth", "Andrew", "Joshua", "Kevin", "Brian",
	"George", "Edward", "Ronald", "Timothy", "Jason", "Jeffrey", "Ryan", "Jacob",
	"Gary", "Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott",
	"Brandon", "Benjamin", "Samuel", "Frank", "Gregory", "Raymond", "Alexander",
	"Carlos", "Jose", "Luis", "Juan", "Miguel", "Pedro", "Antonio", "Francisco",
	"Maria", "Ana", "Carmen", "Rosa", "Isabel", "Elena", "Teresa",
	"Ahmed", "Mohammed", "Ali", "Hassan", "Ibrahim", "Fatima", "Aisha", "Omar",
}

// customRecognizers builds the site-specific recognizer set: the configured
// MRN pattern plus the fixed doctor-title, common-name, and enhanced-phone
// recognizers.
func customRecognizers(cfg *Config) ([]PatternRecognizer, error) {
	var recognizers []PatternRecognizer

	if cfg.CustomRecognizers.MRNPattern != "" {
		re, err := regexp.Compile(cfg.CustomRecognizers.MRNPattern)
		if err != nil {
			return nil, newEngineError(CategoryConfig, "invalid mrn_pattern: %w", err)
		}
		recognizers = append(recognizers, PatternRecognizer{
			Name:   "mrn_recognizer",
			Entity: "MEDICAL_RECORD_NUMBER",
			Patterns: []Pattern{{
				Name:  "mrn_pattern",
				Regex: re,
				Score: 0.8,
			}},
			Context: []string{
				"mrn", "medical record", "patient id", "record number",
				"mr#", "medical record number", "patient number",
			},
		})
	}

	// Catches "Dr. Name" and "Doctor Name", including surnames no name list
	// would carry.
	recognizers = append(recognizers, PatternRecognizer{
		Name:   "doctor_recognizer",
		Entity: "PERSON",
		Patterns: []Pattern{{
			Name:  "doctor_pattern",
			Regex: regexp.MustCompile(`(?i)\b(dr\.?|doctor)\s+([a-z]+(?:-[a-z]+)?)\b`),
			Score: 0.9,
		}},
		Context: []string{"physician", "surgeon", "md", "do", "provider"},
	})

	namePatterns := make([]Pattern, 0, len(commonFirstNames))
	for _, name := range commonFirstNames {
		namePatterns = append(namePatterns, Pattern{
			Name:  fmt.Sprintf("%s_pattern", strings.ToLower(name)),
			Regex: regexp.MustCompile(`(?i)\b` + name + `\b`),
			Score: 0.65,
		})
	}
	recognizers = append(recognizers, PatternRecognizer{
		Name:     "common_names_recognizer",
		Entity:   "PERSON",
		Patterns: namePatterns,
		Context:  []string{"patient", "name", "client", "person", "individual", "mr", "ms", "mrs", "dr"},
	})

	recognizers = append(recognizers, PatternRecognizer{
		Name:   "enhanced_phone_recognizer",
		Entity: "PHONE_NUMBER",
		Patterns: []Pattern{
			{
				Name:  "phone_with_parentheses",
				Regex: regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
				Score: 0.75,
			},
			{
				Name:  "phone_with_separators",
				Regex: regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
				Score: 0.75,
			},
			{
				Name:  "phone_with_country",
				Regex: regexp.MustCompile(`\+1[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
				Score: 0.85,
			},
			{
				// Local seven-digit form; ambiguous, so low confidence.
				Name:  "phone_local",
				Regex: regexp.MustCompile(`\b\d{3}[-.\s]\d{4}\b`),
				Score: 0.5,
			},
			{
				Name:  "phone_with_label",
				Regex: regexp.MustCompile(`(?i)(?:phone|tel|cell|mobile|fax|contact)[\s:-]*\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`),
				Score: 0.9,
			},
		},
		Context: []string{"phone", "tel", "telephone", "cell", "mobile", "fax", "contact", "call", "text", "sms"},
	})

	return recognizers, nil
}
