// Package validator provides struct tag based validation with detailed error
// reporting. Rules are separated by semicolons and parameters follow a colon:
//
//	type Config struct {
//		FromEmail string `validate:"required;email"`
//		Subject   string `validate:"required;max:200"`
//	}
//
//	if err := validator.ValidateStruct(&cfg); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			for _, e := range verrs {
//				fmt.Println(e.Field, e.Message)
//			}
//		}
//	}
//
// # Built-in Rules
//
//   - required: non-blank strings, non-empty collections, non-zero numbers
//   - email: syntactically valid email address
//   - min / max: string length in runes, collection length or numeric bounds
//
// Custom rules can be added with RegisterValidator. Every ValidationError
// carries a TranslationKey and TranslationValues so messages can be rendered
// through the i18n package.
//
// # Programmatic Rules
//
// The same checks are available as functions returning a Rule, which is useful
// for validating single values outside of a struct:
//
//	rule := validator.ValidEmail("recipient", addr)
//	if !rule.Check() {
//		return rule.Error
//	}
package validator
