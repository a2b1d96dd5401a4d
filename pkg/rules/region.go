package rules

import (
	"regexp"
	"sort"
	"strings"
)

// Format is a region-specific value format.
type Format struct {
	Pattern *regexp.Regexp
	Message string
}

// Formats maps a lower-case region code to its format.
type Formats map[string]Format

// PostalFormats lists the postal code formats known out of the box.
var PostalFormats = Formats{
	"ch": {
		Pattern: regexp.MustCompile(`^(CH-)?\d{4}$`),
		Message: "Switzerland ZIPs must have exactly 4 digits: e.g. CH-1950 or 1950",
	},
	"fr": {
		Pattern: regexp.MustCompile(`^(F-)?\d{5}$`),
		Message: "France ZIPs must have exactly 5 digits: e.g. F-75012 or 75012",
	},
	"de": {
		Pattern: regexp.MustCompile(`^(D-)?\d{5}$`),
		Message: "Germany ZIPs must have exactly 5 digits: e.g. D-12345 or 12345",
	},
	"nl": {
		Pattern: regexp.MustCompile(`^(NL-)?\d{4}\s*([A-RT-Z][A-Z]|S[BCE-RT-Z])$`),
		Message: "Netherland ZIPs must have exactly 4 digits, followed by 2 letters except SA, SD and SS",
	},
	"us": {
		Pattern: regexp.MustCompile(`^\d{5}(-\d{4})?$`),
		Message: "United States ZIPs must have exactly 5 digits, optionally followed by -1234: e.g. 95046 or 95046-1234",
	},
	"cn": {
		Pattern: regexp.MustCompile(`^\d{6}$`),
		Message: "China postal codes must have exactly 6 digits: e.g. 100000",
	},
	"jp": {
		Pattern: regexp.MustCompile(`^\d{3}-?\d{4}$`),
		Message: "Japan postal codes must have 7 digits: e.g. 100-0001 or 1000001",
	},
}

// Lookup returns the format registered for region, ignoring case and
// surrounding space.
func (f Formats) Lookup(region string) (Format, bool) {
	format, ok := f[strings.ToLower(strings.TrimSpace(region))]
	if !ok || format.Pattern == nil {
		return Format{}, false
	}
	return format, true
}

// Regions returns the registered region codes in sorted order.
func (f Formats) Regions() []string {
	out := make([]string, 0, len(f))
	for code := range f {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// RegionFormat checks value against the format selected by the governing
// field. It passes while the governing field is blank (Prerequisite reports
// that state) and when the region has no registered format.
func RegionFormat(governing string, formats Formats) Rule {
	return Rule{
		Name: "region-format:" + governing,
		Kind: KindCustom,
		Check: func(value string, ctx Context) bool {
			format, ok := formats.Lookup(ctx.Value(governing))
			if !ok {
				return true
			}
			return format.Pattern.MatchString(value)
		},
		Describe: func(_ string, ctx Context) string {
			format, _ := formats.Lookup(ctx.Value(governing))
			return format.Message
		},
	}
}

// Pattern requires value to match re.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return Rule{
		Name: "pattern",
		Kind: KindCustom,
		Check: func(value string, _ Context) bool {
			return re != nil && re.MatchString(value)
		},
		Message: msg,
	}
}
