package field

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Native messages follow the wording browsers use for the equivalent HTML
// constraints.
const (
	MessageRequired = "Please fill out this field."
	MessageSelect   = "Please select an item in the list."
	MessageNumber   = "Please enter a number."
	MessageFormat   = "Please match the requested format."
)

func messageFor(fe validator.FieldError, value string) string {
	count := utf8.RuneCountInString(value)
	switch fe.Tag() {
	case "required":
		return MessageRequired
	case "email":
		return emailMessage(value)
	case "min":
		return fmt.Sprintf("Please lengthen this text to %s characters or more (you are currently using %d characters).", fe.Param(), count)
	case "max":
		return fmt.Sprintf("Please shorten this text to %s characters or less (you are currently using %d characters).", fe.Param(), count)
	case "len":
		return fmt.Sprintf("Please use exactly %s characters (you are currently using %d characters).", fe.Param(), count)
	case "oneof":
		return MessageSelect
	case "numeric", "number":
		return MessageNumber
	default:
		return MessageFormat
	}
}

func emailMessage(value string) string {
	at := strings.Index(value, "@")
	switch {
	case at < 0:
		return fmt.Sprintf("Please include an '@' in the email address. '%s' is missing an '@'.", value)
	case at == 0:
		return fmt.Sprintf("Please enter a part followed by '@'. '%s' is incomplete.", value)
	case at == len(value)-1:
		return fmt.Sprintf("Please enter a part following '@'. '%s' is incomplete.", value)
	default:
		return "Please enter an email address."
	}
}
