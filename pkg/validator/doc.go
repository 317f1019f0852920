// Package validator provides composable validation rules with field-level
// error reporting.
//
// Rules are plain values combined with Apply, which collects every failed
// rule into a ValidationErrors slice instead of stopping at the first one:
//
//	err := validator.Apply(
//	    validator.Required("username", req.Username),
//	    validator.ValidEmail("email", req.Email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, e := range errs {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// PasswordRules expands a PasswordPolicy into one rule per requirement so
// callers can report each unmet requirement separately.
package validator
