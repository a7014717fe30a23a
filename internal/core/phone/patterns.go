package phone

import "regexp"

// Area codes accepted by the normalizer. Operator codes follow the published
// list of Ukrainian mobile and regional codes.
var (
	operatorCode = regexp.MustCompile(`^(?:3[1-7]|4[1-8]|5[1-7]|6[1-4]|50|66|67|68|73|75|9[1-9]|89)$`)
	specialCode  = regexp.MustCompile(`^(?:800|900)$`)
)

// regularPatterns capture a two digit area code followed by seven subscriber digits.
var regularPatterns = compile(
	// AA XXX XX XX
	`\+?380\s?\(?(\d{2})\)?[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,  // +380 (99) 123 45 67
	`\+?38\s?\(?0(\d{2})\)?[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,  // +38 (099) 123 45 67
	`0[\s-]?(\d{2})[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,          // 0 99 123 45 67
	`\(0(\d{2})\)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,            // (099) 123 45 67
	`0[\s-]?\((\d{2})\)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,      // 0 (99) 123 45 67

	// AA XX XX XXX
	`\+?380\s?\(?(\d{2})\)?[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)`, // +380 (99) 12 34 567
	`\+?38\s?\(?0(\d{2})\)?[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)`, // +38 (099) 12 34 567
	`0[\s-]?(\d{2})[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)`,         // 0 99 12 34 567
	`\(0(\d{2})\)[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)`,           // (099) 12 34 567
	`0[\s-]?\((\d{2})\)[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)`,     // 0 (99) 12 34 567

	// AA XX XXX XX
	`\+?380\s?\(?(\d{2})\)?[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)`, // +380 (99) 12 345 67
	`\+?38\s?\(?0(\d{2})\)?[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)`, // +38 (099) 12 345 67
	`0[\s-]?(\d{2})[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)`,         // 0 99 12 345 67
	`\(0(\d{2})\)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)`,           // (099) 12 345 67
	`0[\s-]?\((\d{2})\)[\s-]?(\d)(\d)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)`,     // 0 (99) 12 345 67

	// AAX XX XX XX
	`\+38[\s-]?\(0(\d{2})(\d)\)[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`, // +38 (0991) 23 45 67
	`\(0(\d{2})(\d)\)[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,           // (0991) 23 45 67

	// AAXX X XX XX
	`\+?38[\s-]?\(0(\d{2})(\d)(\d)\)[\s-]?(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`, // +38 (09912) 3 45 67
	`\(0(\d{2})(\d)(\d)\)[\s-]?(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,            // (09912) 3 45 67
)

// specialPatterns capture a three digit service code followed by six subscriber digits.
var specialPatterns = compile(
	// AAA XXX XXX
	`\+380[\s-]?(800|900)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)(\d)`, // +380 800 123 456
	`0[\s-]?(800|900)[\s-]?(\d)(\d)(\d)[\s-]?(\d)(\d)(\d)`,     // 0 800 123 456

	// AAA XX XX XX
	`\+?380[\s-]?\(?(800|900)\)?[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,  // +380 (800) 12 34 56
	`\+?38[\s-]?\(?0(800|900)\)?[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,  // +38 (0800) 12 34 56
	`0[\s-]?(800|900)[\s-]?(\d)(\d)[\s-]?(\d)(\d)[\s-]?(\d)(\d)`,             // 0 800 12 34 56
)

func compile(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}
